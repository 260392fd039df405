// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"encoding"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// OverrideField parses value into the field pointed to by field, replacing
// its previous content entirely. The override is atomic: on a parse failure
// the field is left unchanged and an error is returned.
//
// field must be a pointer. Any type implementing encoding.TextUnmarshaler is
// supported — which covers every custom field type in this package and any
// extension type a consumer defines — along with *string, *bool, *int,
// *int64, *uint, *uint64, *float64, *time.Duration, *[]string (comma
// separated, replaced whole), and the optional variants **string, **bool,
// **int.
func OverrideField(field any, value string) error {
	switch f := field.(type) {
	case encoding.TextUnmarshaler:
		return f.UnmarshalText([]byte(value))
	case *string:
		*f = value
	case **string:
		v := value
		*f = &v
	case *bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*f = v
	case **bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*f = &v
	case *int:
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*f = v
	case **int:
		v, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*f = &v
	case *int64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		*f = v
	case *uint:
		v, err := strconv.ParseUint(value, 10, 0)
		if err != nil {
			return err
		}
		*f = uint(v)
	case *uint64:
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		*f = v
	case *float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*f = v
	case *time.Duration:
		v, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*f = v
	case *[]string:
		parts := strings.Split(value, ",")
		parsed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				parsed = append(parsed, p)
			}
		}
		*f = parsed
	default:
		return fmt.Errorf("settings: unsupported override target %T", field)
	}
	return nil
}

// OverrideFieldWithEnvVar replaces the field's value with the content of the
// named environment variable. An unset or empty variable is a no-op and the
// field keeps its previous value; a set-but-unparsable variable yields an
// [*OverrideError] and also leaves the field unchanged.
func OverrideFieldWithEnvVar(field any, varName string) error {
	value, ok := os.LookupEnv(varName)
	if !ok || value == "" {
		return nil
	}
	if err := OverrideField(field, value); err != nil {
		return &OverrideError{Var: varName, Value: value, Err: err}
	}
	return nil
}

// OverrideFromEnv overlays every tagged field of s from environment
// variables under the given prefix, e.g. prefix "APPLICATION__" reads
// APPLICATION__HOSTS, APPLICATION__WORKERS and so on (extended-table fields
// of struct-typed X are reached under APPLICATION__EXTENDED__). Only
// variables that are actually set touch their field.
func (s *BasicSettings[X]) OverrideFromEnv(prefix string) error {
	if err := env.ParseWithOptions(s, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("settings: environment overlay: %w", err)
	}
	return nil
}
