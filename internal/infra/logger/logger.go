package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	dirName  = ".fetchcontacts"
	fileName = "fetchcontacts.log"
)

// Config selects where the log file lives. Logs never go to stdout, which carries the export.
type Config struct {
	Root  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// FilePath is where Setup writes for the given root.
func FilePath(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), dirName, "logs", fileName)
}

// Setup opens the log file under root. On failure the global logger discards everything and
// the error is returned for the caller to ignore or report.
func Setup(cfg Config) (func() error, error) {
	path := FilePath(cfg.Root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		reset()
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug)).With("pid", os.Getpid())

	mu.Lock()
	global, logFile, logPath = l, f, path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		global, logFile, logPath = discard(), nil, ""
		return cerr
	}, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

// L returns the process logger; a discarding one until Setup succeeds.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the open log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global, logFile, logPath = discard(), nil, ""
}
