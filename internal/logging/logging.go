// Package logging configures the process-wide slog logger.
//
// All log output goes to stderr: when serving MCP over stdio, stdout carries
// the protocol frames and must stay clean.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default slog logger at the given level.
// Unrecognized levels fall back to info.
func Setup(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	})
	slog.SetDefault(slog.New(handler))
}
