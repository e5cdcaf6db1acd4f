package mpv

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/user/trimview/deps"
)

// Role selects how an mpv window is configured.
type Role int

const (
	// RoleMain is the full-size window used for RAW playback and the
	// trimmed loop.
	RoleMain Role = iota
	// RolePreview is the small muted scrub-preview window.
	RolePreview
	// RoleAudio plays the sound track only.
	RoleAudio
)

func (r Role) String() string {
	switch r {
	case RolePreview:
		return "preview"
	case RoleAudio:
		return "audio"
	default:
		return "main"
	}
}

// LaunchOptions configures a new mpv process.
type LaunchOptions struct {
	Binary    string
	SocketDir string
	// Session keeps the sockets of concurrent trimview processes apart.
	// Empty means the current PID.
	Session string
	// Geometry is passed to --geometry for the preview window.
	Geometry string
	Role     Role
	Path     string
}

// Instance is an mpv process together with its IPC client. Callers keep the
// Instance they launched and release it with Close.
type Instance struct {
	Role   Role
	Cmd    *exec.Cmd
	Client *Client
}

// SocketPath returns the IPC socket used for role by session inside dir.
func SocketPath(dir, session string, role Role) string {
	if session == "" {
		session = strconv.Itoa(os.Getpid())
	}
	return filepath.Join(dir, fmt.Sprintf("trimview-%s-%s.sock", session, role))
}

// Args returns the mpv command line for opts, without the binary.
func (o LaunchOptions) Args() []string {
	args := []string{
		"--input-ipc-server=" + SocketPath(o.SocketDir, o.Session, o.Role),
		"--idle=yes",
		"--keep-open=yes",
	}
	switch o.Role {
	case RolePreview:
		args = append(args, "--force-window=yes", "--mute=yes", "--pause=yes", "--title=trimview preview")
		if o.Geometry != "" {
			args = append(args, "--geometry="+o.Geometry)
		}
	case RoleAudio:
		args = append(args, "--no-video", "--pause=yes", "--loop-file=inf")
	default:
		args = append(args, "--force-window=yes", "--title=trimview")
	}
	if o.Path != "" {
		args = append(args, o.Path)
	}
	return args
}

// Launch starts mpv and connects to its IPC socket. It checks that mpv is
// installed first and kills the process when the socket never appears.
func Launch(opts LaunchOptions) (*Instance, error) {
	if opts.Binary == "" {
		opts.Binary = "mpv"
	}
	if err := deps.CheckMpv(opts.Binary); err != nil {
		return nil, err
	}

	cmd := exec.Command(opts.Binary, opts.Args()...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	client := NewClient(SocketPath(opts.SocketDir, opts.Session, opts.Role))
	if err := client.ConnectRetry(50, 100*time.Millisecond); err != nil {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		return nil, fmt.Errorf("failed to connect to mpv %s window: %w", opts.Role, err)
	}

	return &Instance{Role: opts.Role, Cmd: cmd, Client: client}, nil
}

// Close disconnects and stops the process.
func (i *Instance) Close() error {
	if i == nil {
		return nil
	}
	_ = i.Client.Close()
	if i.Cmd != nil && i.Cmd.Process != nil {
		_ = i.Cmd.Process.Kill()
		_ = i.Cmd.Wait()
	}
	return nil
}
