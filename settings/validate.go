// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import "strconv"

// Validate checks the invariants every consumer of a settings value may rely
// on: a non-empty host list with well-formed entries, a positive worker
// count, and non-negative tunables. Loaders call it before returning;
// call it directly only for values constructed in memory.
func (s *BasicSettings[X]) Validate() error {
	if len(s.Hosts) == 0 {
		return ErrNoHosts
	}
	for _, a := range s.Hosts {
		if a.Host == "" || a.Port < 1 || a.Port > 65535 {
			return &InvalidValueError{
				Field:    "hosts",
				Value:    a.String(),
				Expected: "a non-empty host and a port in 1..65535",
			}
		}
	}

	if s.Workers != nil && *s.Workers < 1 {
		return &InvalidValueError{
			Field:    "workers",
			Value:    strconv.Itoa(*s.Workers),
			Expected: "a positive integer",
		}
	}

	nonNegative := map[string]*int{
		"backlog":             s.Backlog,
		"max_connections":     s.MaxConnections,
		"max_connection_rate": s.MaxConnectionRate,
		"keep_alive":          s.KeepAlive,
		"client_timeout":      s.ClientTimeout,
		"client_shutdown":     s.ClientShutdown,
		"shutdown_timeout":    s.ShutdownTimeout,
	}
	for field, v := range nonNegative {
		if v != nil && *v < 0 {
			return &InvalidValueError{
				Field:    field,
				Value:    strconv.Itoa(*v),
				Expected: "a non-negative integer",
			}
		}
	}
	return nil
}
