package settings

import (
	"net"
	"strconv"
	"strings"
)

// DefaultPort is the port a bare-host entry binds to when no explicit port
// is given.
const DefaultPort = 9000

// Address is a single bind target.
type Address struct {
	Host string
	Port int
}

// String renders the address in host:port form (bracketed for IPv6 hosts).
func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Accepted forms are
// "host:port", "[v6addr]:port", bare "host" (port defaults to DefaultPort),
// and bracketed bare "[v6addr]". On failure the receiver is left unchanged.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := parseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func parseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	invalid := func() error {
		return &InvalidValueError{Field: "hosts", Value: s, Expected: `"host:port" or "host"`}
	}
	if s == "" {
		return Address{}, invalid()
	}
	if host, port, err := net.SplitHostPort(s); err == nil {
		n, err := strconv.Atoi(port)
		if err != nil || host == "" || n < 1 || n > 65535 {
			return Address{}, invalid()
		}
		return Address{Host: host, Port: n}, nil
	}
	// Bare-host forms. Unbracketed IPv6 is rejected because its colons are
	// ambiguous with the port separator.
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return Address{Host: s[1 : len(s)-1], Port: DefaultPort}, nil
	}
	if strings.Contains(s, ":") {
		return Address{}, invalid()
	}
	return Address{Host: s, Port: DefaultPort}, nil
}

// AddressList is an ordered list of bind targets.
type AddressList []Address

// String renders the list in the same comma-separated form UnmarshalText
// accepts.
func (l AddressList) String() string {
	parts := make([]string, len(l))
	for i, a := range l {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is a
// comma-separated list of address entries; the parsed list replaces the
// previous value entirely. On failure the receiver is left unchanged.
func (l *AddressList) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ",")
	parsed := make(AddressList, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		a, err := parseAddress(p)
		if err != nil {
			return err
		}
		parsed = append(parsed, a)
	}
	if len(parsed) == 0 {
		return ErrNoHosts
	}
	*l = parsed
	return nil
}

// Mode selects a log-verbosity profile. It has exactly two values; anything
// else fails to parse. Tokens are lowercase only.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// ParseMode converts a mode token to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDevelopment, ModeProduction:
		return Mode(s), nil
	}
	return "", &InvalidValueError{Field: "mode", Value: s, Expected: `"development" or "production"`}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure the receiver
// is left unchanged.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// LogLevel returns the verbosity profile for the mode: "debug" in
// development, "info" in production.
func (m Mode) LogLevel() string {
	if m == ModeProduction {
		return "info"
	}
	return "debug"
}
