// Package mpv drives mpv windows over the JSON IPC protocol. Each window is a
// playback surface: the main window, the muted scrub preview, or the
// audio-only player.
package mpv

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrNotConnected is returned when attempting operations on a disconnected client.
	ErrNotConnected = errors.New("mpv: not connected")
	// ErrSocketNotFound is returned when the socket cannot be dialed.
	ErrSocketNotFound = errors.New("mpv: socket not found - is mpv running with --input-ipc-server?")
	// requestID is a global counter for generating unique request IDs.
	requestID uint64
)

// ipcRequest represents a JSON IPC request to mpv.
type ipcRequest struct {
	Command   []interface{} `json:"command"`
	RequestID uint64        `json:"request_id"`
}

// ipcResponse represents a JSON IPC response from mpv.
type ipcResponse struct {
	Data      interface{} `json:"data"`
	RequestID uint64      `json:"request_id"`
	Error     string      `json:"error"`
	Event     string      `json:"event"`
}

// Client is an mpv IPC client that communicates via Unix socket.
type Client struct {
	socketPath string
	conn       net.Conn
	reader     *bufio.Reader
	mu         sync.Mutex
}

// NewClient creates a new mpv IPC client for socketPath.
func NewClient(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
	}
}

// Connect establishes a connection to the mpv IPC socket.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSocketNotFound, err)
	}

	c.conn = conn
	c.reader = bufio.NewReader(conn)
	return nil
}

// ConnectRetry retries Connect every interval until it succeeds or attempts
// run out. mpv creates its socket shortly after the process starts.
func (c *Client) ConnectRetry(attempts int, interval time.Duration) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = c.Connect(); err == nil {
			return nil
		}
		time.Sleep(interval)
	}
	return err
}

// Close closes the connection to mpv.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return err
}

// IsConnected returns true if the client is connected to mpv.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// GetProperty retrieves the value of an mpv property.
func (c *Client) GetProperty(name string) (interface{}, error) {
	return c.sendCommand("get_property", name)
}

// SetProperty sets the value of an mpv property.
func (c *Client) SetProperty(name string, value interface{}) error {
	_, err := c.sendCommand("set_property", name, value)
	return err
}

// GetTimePos returns the current playback position in seconds.
func (c *Client) GetTimePos() (float64, error) {
	result, err := c.GetProperty("time-pos")
	if err != nil {
		return 0, err
	}
	return toFloat64(result)
}

// Position implements the playback surface read side.
func (c *Client) Position() (float64, error) {
	return c.GetTimePos()
}

// GetDuration returns the total duration of the loaded file in seconds.
// mpv reports an error until the file's metadata is available.
func (c *Client) GetDuration() (float64, error) {
	result, err := c.GetProperty("duration")
	if err != nil {
		return 0, err
	}
	return toFloat64(result)
}

// GetPaused returns true if playback is paused.
func (c *Client) GetPaused() (bool, error) {
	return c.getBool("pause")
}

// Play unpauses playback.
func (c *Client) Play() error {
	return c.SetProperty("pause", false)
}

// Pause pauses playback.
func (c *Client) Pause() error {
	return c.SetProperty("pause", true)
}

// TogglePause flips the pause state.
func (c *Client) TogglePause() error {
	_, err := c.sendCommand("cycle", "pause")
	return err
}

// Seek moves to an absolute position in seconds.
func (c *Client) Seek(seconds float64) error {
	_, err := c.sendCommand("seek", seconds, "absolute+exact")
	return err
}

// SetABLoop makes mpv loop between a and b seconds.
func (c *Client) SetABLoop(a, b float64) error {
	if err := c.SetProperty("ab-loop-a", a); err != nil {
		return err
	}
	return c.SetProperty("ab-loop-b", b)
}

// ClearABLoop removes an A-B loop.
func (c *Client) ClearABLoop() error {
	if err := c.SetProperty("ab-loop-a", "no"); err != nil {
		return err
	}
	return c.SetProperty("ab-loop-b", "no")
}

// LoadFile replaces the playing file.
func (c *Client) LoadFile(path string) error {
	_, err := c.sendCommand("loadfile", path, "replace")
	return err
}

func (c *Client) getBool(name string) (bool, error) {
	result, err := c.GetProperty(name)
	if err != nil {
		return false, err
	}
	v, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("mpv: unexpected %s value type: %T", name, result)
	}
	return v, nil
}

// toFloat64 converts an interface{} to float64.
// JSON numbers from mpv are typically decoded as float64.
func toFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("mpv: unexpected numeric value type: %T", v)
	}
}

// sendCommand sends a JSON IPC command to mpv and returns the result.
// The command is formatted as {"command": [command, args...], "request_id": <id>}
// and sent as newline-terminated JSON over the socket.
func (c *Client) sendCommand(command string, args ...interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}

	cmdArray := make([]interface{}, 0, len(args)+1)
	cmdArray = append(cmdArray, command)
	cmdArray = append(cmdArray, args...)

	reqID := atomic.AddUint64(&requestID, 1)

	data, err := json.Marshal(ipcRequest{
		Command:   cmdArray,
		RequestID: reqID,
	})
	if err != nil {
		return nil, fmt.Errorf("mpv: failed to marshal command: %w", err)
	}

	data = append(data, '\n')
	if _, err := c.conn.Write(data); err != nil {
		return nil, fmt.Errorf("mpv: failed to send command: %w", err)
	}

	// Read response lines until we get our request_id
	for {
		line, err := c.reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("mpv: failed to read response: %w", err)
		}

		var resp ipcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			continue
		}

		// Events carry no request_id; skip them.
		if resp.Event != "" || resp.RequestID != reqID {
			continue
		}
		if resp.Error != "" && resp.Error != "success" {
			return nil, fmt.Errorf("mpv: %s: %s", command, resp.Error)
		}
		return resp.Data, nil
	}
}
