package settings

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
)

// tomlDocument mirrors the on-disk shape of a settings file. Pointer fields
// distinguish "key absent" from "key set to a zero value", which keeps both
// default application and layered merging honest (an explicit false or 0 in
// a later layer still wins).
type tomlDocument[X any] struct {
	Hosts             []any   `toml:"hosts"`
	Mode              *string `toml:"mode,omitempty"`
	EnableCompression *bool   `toml:"enable_compression,omitempty"`
	EnableLog         *bool   `toml:"enable_log,omitempty"`
	Workers           *int    `toml:"workers,omitempty"`
	Backlog           *int    `toml:"backlog,omitempty"`
	MaxConnections    *int    `toml:"max_connections,omitempty"`
	MaxConnectionRate *int    `toml:"max_connection_rate,omitempty"`
	KeepAlive         *int    `toml:"keep_alive,omitempty"`
	ClientTimeout     *int    `toml:"client_timeout,omitempty"`
	ClientShutdown    *int    `toml:"client_shutdown,omitempty"`
	ShutdownTimeout   *int    `toml:"shutdown_timeout,omitempty"`
	Extended          X       `toml:"extended,omitempty"`
}

// Load reads and parses the settings file at path.
func Load(path string) (*Settings, error) {
	return LoadCustom[map[string]string](path)
}

// LoadCustom is [Load] for an extended settings type.
func LoadCustom[X any](path string) (*BasicSettings[X], error) {
	doc, err := readDocument[X](path)
	if err != nil {
		return nil, err
	}
	return doc.settings()
}

// LoadLayered reads several settings files and merges them in order: a key
// set in a later file overrides the same key from earlier files, absent keys
// fall through. Host lists are replaced whole, never appended.
func LoadLayered(paths ...string) (*Settings, error) {
	return LoadLayeredCustom[map[string]string](paths...)
}

// LoadLayeredCustom is [LoadLayered] for an extended settings type.
func LoadLayeredCustom[X any](paths ...string) (*BasicSettings[X], error) {
	var merged tomlDocument[X]
	for _, path := range paths {
		doc, err := readDocument[X](path)
		if err != nil {
			return nil, err
		}
		// WithoutDereference keeps the override unit at the pointer: any key
		// present in a later file wins, even when it is set to false or 0.
		if err := mergo.Merge(&merged, doc, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("settings: merge %s: %w", path, err)
		}
	}
	return merged.settings()
}

// FromTOML parses a settings document from raw TOML.
func FromTOML[X any](data []byte) (*BasicSettings[X], error) {
	var doc tomlDocument[X]
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("settings: parse toml: %w", err)
	}
	return doc.settings()
}

// FromDefaultTemplate parses [DefaultTemplate].
func FromDefaultTemplate() (*Settings, error) {
	return FromTOML[map[string]string]([]byte(DefaultTemplate))
}

func readDocument[X any](path string) (tomlDocument[X], error) {
	var doc tomlDocument[X]
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("settings: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("settings: parse %s: %w", path, err)
	}
	return doc, nil
}

// settings converts the raw document into a validated BasicSettings,
// applying the documented defaults for absent keys.
func (d *tomlDocument[X]) settings() (*BasicSettings[X], error) {
	s := DefaultCustom[X]()

	hosts, err := parseHostEntries(d.Hosts)
	if err != nil {
		return nil, err
	}
	s.Hosts = hosts

	if d.Mode != nil {
		m, err := ParseMode(*d.Mode)
		if err != nil {
			return nil, err
		}
		s.Mode = m
	}
	if d.EnableCompression != nil {
		s.EnableCompression = *d.EnableCompression
	}
	if d.EnableLog != nil {
		s.EnableLog = *d.EnableLog
	}

	s.Workers = d.Workers
	s.Backlog = d.Backlog
	s.MaxConnections = d.MaxConnections
	s.MaxConnectionRate = d.MaxConnectionRate
	s.KeepAlive = d.KeepAlive
	s.ClientTimeout = d.ClientTimeout
	s.ClientShutdown = d.ClientShutdown
	s.ShutdownTimeout = d.ShutdownTimeout
	s.Extended = d.Extended

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// parseHostEntries accepts the two documented host forms: "host[:port]"
// strings and ["host", port] pairs.
func parseHostEntries(entries []any) (AddressList, error) {
	hosts := make(AddressList, 0, len(entries))
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			a, err := parseAddress(v)
			if err != nil {
				return nil, err
			}
			hosts = append(hosts, a)
		case []any:
			host, okHost := "", false
			port, okPort := int64(0), false
			if len(v) == 2 {
				host, okHost = v[0].(string)
				port, okPort = v[1].(int64)
			}
			if !okHost || !okPort {
				return nil, hostEntryError(entry)
			}
			hosts = append(hosts, Address{Host: host, Port: int(port)})
		default:
			return nil, hostEntryError(entry)
		}
	}
	return hosts, nil
}

func hostEntryError(entry any) error {
	return &InvalidValueError{
		Field:    "hosts",
		Value:    fmt.Sprint(entry),
		Expected: `"host:port" or ["host", port]`,
	}
}

// Marshal renders the settings as TOML. Parsing the output with [FromTOML]
// yields a value equal to the receiver.
func (s *BasicSettings[X]) Marshal() ([]byte, error) {
	doc := tomlDocument[X]{
		Hosts:             make([]any, len(s.Hosts)),
		Mode:              ptr(string(s.Mode)),
		EnableCompression: ptr(s.EnableCompression),
		EnableLog:         ptr(s.EnableLog),
		Workers:           s.Workers,
		Backlog:           s.Backlog,
		MaxConnections:    s.MaxConnections,
		MaxConnectionRate: s.MaxConnectionRate,
		KeepAlive:         s.KeepAlive,
		ClientTimeout:     s.ClientTimeout,
		ClientShutdown:    s.ClientShutdown,
		ShutdownTimeout:   s.ShutdownTimeout,
		Extended:          s.Extended,
	}
	for i, a := range s.Hosts {
		doc.Hosts[i] = a.String()
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("settings: marshal: %w", err)
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }
