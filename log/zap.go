package log

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until InitLogger
// runs so packages and tests can log unconditionally.
var Logger = zap.NewNop()

const logFileName = "trimview.log"

var userCacheDir = os.UserCacheDir

// Options controls where log output goes.
type Options struct {
	// Dir is the log directory; empty resolves to <user cache>/trimview.
	Dir string
	// Console adds a stderr core. The TUI owns the terminal, so only
	// non-interactive commands enable it.
	Console bool
	// Verbose lowers the console level to debug.
	Verbose bool
}

// InitLogger builds a JSON file core at debug level and, when requested, a
// console core on stderr.
func InitLogger(opts Options) error {
	logDir, err := ResolveLogDir(opts.Dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(file), zap.DebugLevel),
	}
	if opts.Console {
		level := zap.InfoLevel
		if opts.Verbose {
			level = zap.DebugLevel
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return nil
}

// ResolveLogDir returns dir when set, otherwise <user cache>/trimview, falling
// back to the current directory when no cache dir exists.
func ResolveLogDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir != "" {
		return dir, nil
	}
	cache, err := userCacheDir()
	if err != nil || strings.TrimSpace(cache) == "" {
		return ".", nil
	}
	return filepath.Join(cache, "trimview"), nil
}

// ResolveLogFilePath returns the full path of the log file for dir.
func ResolveLogFilePath(dir string) (string, error) {
	logDir, err := ResolveLogDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(logDir, logFileName), nil
}

// GetLogger returns the process-wide logger.
func GetLogger() *zap.Logger {
	return Logger
}

// Named returns a child logger tagged with a component field.
func Named(component string) *zap.Logger {
	return Logger.With(zap.String("component", component))
}
