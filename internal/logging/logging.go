// SPDX-License-Identifier: MIT

// Package logging builds the process-wide slog logger from configuration.
package logging

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/transcat/internal/config"
)

// New returns a logger writing to w with the configured level and format.
// Unknown levels fall back to info; config validation rejects them earlier.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// OrDiscard returns l, or a logger that drops everything when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}

	return l
}
