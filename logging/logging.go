// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logging initializes process-wide logging from a resolved settings
// value and provides a thin wrapper around zerolog.Logger with the helpers
// embedding applications need.
//
// The Logger type embeds zerolog.Logger so the full zerolog API (Debug,
// Info, Warn, Error, Fatal, etc.) is available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logging

import (
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MKhiriev/go-server-settings/settings"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes the full
// zerolog API while leaving room for application helpers.
type Logger struct {
	zerolog.Logger
}

var initOnce sync.Once

// Init configures process-wide logging from the resolved settings and
// returns a logger tagged with the given role label (e.g. "server").
//
// When the settings disable logging, Init returns a no-op logger and leaves
// the global zerolog state untouched. Otherwise the global level is derived
// from the mode's verbosity profile (development → debug, production → info)
// exactly once per process; later calls reuse the first profile.
func Init[X any](s *settings.BasicSettings[X], role string) *Logger {
	if !s.EnableLog {
		return Nop()
	}
	initOnce.Do(func() {
		level, err := zerolog.ParseLevel(s.Mode.LogLevel())
		if err != nil {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
	})
	return New(role)
}

// New constructs a *Logger for the given role label. Every entry carries a
// "role" field and a timestamp; output is JSON on stdout. New does not touch
// the global level — use [Init] for that.
func New(role string) *Logger {
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. It is intended for tests
// and for settings that disable logging.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver. The child can be enriched with additional context fields without
// affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger. If no logger has been attached,
// zerolog returns its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
