package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xanthek/hackerstories/internal/config"
)

// newLogger returns a discarding logger unless --debug is set, in which
// case records are appended to the debug log. stdout belongs to the TUI.
func newLogger() (*slog.Logger, func()) {
	if !flagDebug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		warn(err)
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		warn(err)
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }
}
