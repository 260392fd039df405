// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// BasicSettings is the typed root of a settings document. The type parameter
// X receives the contents of the optional [extended] table, so an embedding
// application can carry its own settings next to the server tunables without
// this package knowing their shape (see [Settings] for the common case).
//
// Optional tunables are pointers: nil means the key was absent from every
// source and the server keeps its own default for that knob. Duration-valued
// tunables are whole seconds.
//
// Struct tags:
//   - toml — file key (snake_case, exactly as documented in DefaultTemplate).
//   - env  — variable name for [BasicSettings.OverrideFromEnv], looked up
//     under the caller's prefix (caarlos0/env).
type BasicSettings[X any] struct {
	// Hosts is the ordered list of bind targets. Required: a document
	// without at least one host fails to load.
	Hosts AddressList `toml:"hosts" env:"HOSTS"`

	// Mode selects the log-verbosity profile. Either ModeDevelopment or
	// ModeProduction; it has no other effect in this package.
	Mode Mode `toml:"mode" env:"MODE"`

	// EnableCompression tells the embedding application to compress
	// responses. When false, identity encoding is expected.
	EnableCompression bool `toml:"enable_compression" env:"ENABLE_COMPRESSION"`

	// EnableLog gates logging initialization entirely.
	EnableLog bool `toml:"enable_log" env:"ENABLE_LOG"`

	// Workers is the number of worker threads the server should start.
	// Must be positive when present.
	Workers *int `toml:"workers,omitempty" env:"WORKERS"`

	// Backlog is the requested accept-queue depth.
	Backlog *int `toml:"backlog,omitempty" env:"BACKLOG"`

	// MaxConnections caps concurrent connections across all listeners.
	MaxConnections *int `toml:"max_connections,omitempty" env:"MAX_CONNECTIONS"`

	// MaxConnectionRate caps connections accepted per second, per listener.
	MaxConnectionRate *int `toml:"max_connection_rate,omitempty" env:"MAX_CONNECTION_RATE"`

	// KeepAlive is the idle keep-alive period in seconds. 0 disables
	// keep-alive.
	KeepAlive *int `toml:"keep_alive,omitempty" env:"KEEP_ALIVE"`

	// ClientTimeout is the number of seconds a client gets to transmit its
	// request head. 0 disables the timeout.
	ClientTimeout *int `toml:"client_timeout,omitempty" env:"CLIENT_TIMEOUT"`

	// ClientShutdown is the number of seconds a connection gets to drain
	// while it is being shut down.
	ClientShutdown *int `toml:"client_shutdown,omitempty" env:"CLIENT_SHUTDOWN"`

	// ShutdownTimeout is the number of seconds workers get to finish
	// serving after a stop signal.
	ShutdownTimeout *int `toml:"shutdown_timeout,omitempty" env:"SHUTDOWN_TIMEOUT"`

	// Extended holds the application-specific [extended] table.
	Extended X `toml:"extended,omitempty" envPrefix:"EXTENDED__"`
}

// Settings is a BasicSettings whose extended table is a flat string map,
// which suits applications that only need ad-hoc extra keys.
type Settings = BasicSettings[map[string]string]

// DefaultTemplate is the annotated settings document written by
// [WriteDefault]. Optional tunables are commented out so the server keeps
// its own defaults until they are uncommented.
const DefaultTemplate = `hosts = [
    "0.0.0.0:9000",         # works for both development and deployment
]
mode = "development"        # either "development" or "production"
enable_compression = false  # gate response compression in the embedding app
enable_log = true           # gate logging initialization

# Number of workers the server should start. When the key is absent the
# server keeps its own default (one per logical CPU core).
#workers = 4

# Maximum number of pending connections in the accept queue.
#backlog = 2048

# Maximum number of concurrent connections across all listeners.
#max_connections = 25000

# Maximum number of connections accepted per second, per listener.
#max_connection_rate = 256

# Keep-alive period in seconds for idle connections. 0 disables keep-alive.
#keep_alive = 5

# Seconds a client gets to transmit its request head. 0 disables the timeout.
#client_timeout = 5

# Seconds a connection gets to drain when it is being shut down.
#client_shutdown = 5

# Seconds workers get to finish serving after a stop signal.
#shutdown_timeout = 30

# Application-specific settings live in an optional [extended] table:
#[extended]
#answer = "42"
`

// Default returns a Settings equal to parsing [DefaultTemplate].
func Default() *Settings {
	return DefaultCustom[map[string]string]()
}

// DefaultCustom is [Default] for an extended settings type. The extended
// table is left at its zero value.
func DefaultCustom[X any]() *BasicSettings[X] {
	return &BasicSettings[X]{
		Hosts:     AddressList{{Host: "0.0.0.0", Port: DefaultPort}},
		Mode:      ModeDevelopment,
		EnableLog: true,
	}
}

// WriteDefault writes [DefaultTemplate] to a new file at path. It fails with
// [ErrFileExists] if something already exists there.
func WriteDefault(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(DefaultTemplate); err != nil {
		return err
	}
	return f.Sync()
}
