// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideFieldWithEnvVar_UnsetIsNoOp(t *testing.T) {
	// Arrange
	s := Default()
	before := *s

	// Act
	require.NoError(t, OverrideFieldWithEnvVar(&s.Hosts, "OVERRIDE__HOSTS"))
	require.NoError(t, OverrideFieldWithEnvVar(&s.EnableCompression, "OVERRIDE__ENABLE_COMPRESSION"))
	require.NoError(t, OverrideFieldWithEnvVar(&s.Workers, "OVERRIDE__WORKERS"))
	require.NoError(t, OverrideFieldWithEnvVar(&s.Mode, "OVERRIDE__MODE"))

	// Assert
	assert.Equal(t, before, *s)
}

func TestOverrideFieldWithEnvVar_EmptyValueIsNoOp(t *testing.T) {
	s := Default()
	t.Setenv("OVERRIDE__MODE", "")

	require.NoError(t, OverrideFieldWithEnvVar(&s.Mode, "OVERRIDE__MODE"))

	assert.Equal(t, ModeDevelopment, s.Mode)
}

func TestOverrideField_Hosts(t *testing.T) {
	// Arrange
	s := Default()
	s.Hosts = AddressList{{Host: "a", Port: 80}}

	// Act
	err := OverrideField(&s.Hosts, "b:81,c:82")

	// Assert: the sequence is replaced whole, not appended to.
	require.NoError(t, err)
	assert.Equal(t, AddressList{{Host: "b", Port: 81}, {Host: "c", Port: 82}}, s.Hosts)
}

func TestOverrideFieldWithEnvVar_Hosts(t *testing.T) {
	s := Default()
	t.Setenv("OVERRIDE__HOSTS", "0.0.0.0:1234,localhost:2345")

	require.NoError(t, OverrideFieldWithEnvVar(&s.Hosts, "OVERRIDE__HOSTS"))

	assert.Equal(t, AddressList{
		{Host: "0.0.0.0", Port: 1234},
		{Host: "localhost", Port: 2345},
	}, s.Hosts)
}

func TestOverrideFieldWithEnvVar_Mode(t *testing.T) {
	s := Default()
	t.Setenv("OVERRIDE__MODE", "production")

	require.NoError(t, OverrideFieldWithEnvVar(&s.Mode, "OVERRIDE__MODE"))

	assert.Equal(t, ModeProduction, s.Mode)
}

func TestOverrideFieldWithEnvVar_InvalidMode(t *testing.T) {
	s := Default()
	t.Setenv("OVERRIDE__MODE", "sideways")

	err := OverrideFieldWithEnvVar(&s.Mode, "OVERRIDE__MODE")

	var overrideErr *OverrideError
	require.ErrorAs(t, err, &overrideErr)
	assert.Equal(t, "OVERRIDE__MODE", overrideErr.Var)
	assert.Equal(t, "sideways", overrideErr.Value)
	// the field keeps its prior value
	assert.Equal(t, ModeDevelopment, s.Mode)
}

func TestOverrideFieldWithEnvVar_InvalidBool(t *testing.T) {
	s := Default()
	t.Setenv("OVERRIDE__ENABLE_COMPRESSION", "maybe")

	err := OverrideFieldWithEnvVar(&s.EnableCompression, "OVERRIDE__ENABLE_COMPRESSION")

	var overrideErr *OverrideError
	require.ErrorAs(t, err, &overrideErr)
	assert.False(t, s.EnableCompression)
}

func TestOverrideFieldWithEnvVar_Bool(t *testing.T) {
	s := Default()
	t.Setenv("OVERRIDE__ENABLE_COMPRESSION", "true")

	require.NoError(t, OverrideFieldWithEnvVar(&s.EnableCompression, "OVERRIDE__ENABLE_COMPRESSION"))

	assert.True(t, s.EnableCompression)
}

func TestOverrideFieldWithEnvVar_Workers(t *testing.T) {
	s := Default()
	require.Nil(t, s.Workers)
	t.Setenv("OVERRIDE__WORKERS", "42")

	require.NoError(t, OverrideFieldWithEnvVar(&s.Workers, "OVERRIDE__WORKERS"))

	require.NotNil(t, s.Workers)
	assert.Equal(t, 42, *s.Workers)
}

func TestOverrideFieldWithEnvVar_InvalidWorkers(t *testing.T) {
	s := Default()
	t.Setenv("OVERRIDE__WORKERS", "lots")

	err := OverrideFieldWithEnvVar(&s.Workers, "OVERRIDE__WORKERS")

	var overrideErr *OverrideError
	require.ErrorAs(t, err, &overrideErr)
	assert.Nil(t, s.Workers)
}

func TestOverrideField_HostsAtomicity(t *testing.T) {
	// Arrange
	s := Default()
	s.Hosts = AddressList{{Host: "a", Port: 80}}

	// Act: the second entry is malformed, so nothing may change.
	err := OverrideField(&s.Hosts, "b:81,c:notaport")

	// Assert
	assert.Error(t, err)
	assert.Equal(t, AddressList{{Host: "a", Port: 80}}, s.Hosts)
}

func TestOverrideField_UnsupportedTarget(t *testing.T) {
	var ch chan int

	err := OverrideField(&ch, "42")

	assert.Error(t, err)
}

func TestOverrideFromEnv(t *testing.T) {
	// Arrange
	s := Default()
	t.Setenv("APPLICATION__HOSTS", "10.1.2.3:8080")
	t.Setenv("APPLICATION__MODE", "production")
	t.Setenv("APPLICATION__WORKERS", "6")
	t.Setenv("APPLICATION__ENABLE_COMPRESSION", "true")

	// Act
	require.NoError(t, s.OverrideFromEnv("APPLICATION__"))

	// Assert
	assert.Equal(t, AddressList{{Host: "10.1.2.3", Port: 8080}}, s.Hosts)
	assert.Equal(t, ModeProduction, s.Mode)
	require.NotNil(t, s.Workers)
	assert.Equal(t, 6, *s.Workers)
	assert.True(t, s.EnableCompression)
	// variables that are not set leave their fields alone
	assert.True(t, s.EnableLog)
	assert.Nil(t, s.KeepAlive)
}

func TestOverrideFromEnv_InvalidValue(t *testing.T) {
	s := Default()
	t.Setenv("APPLICATION__WORKERS", "many")

	err := s.OverrideFromEnv("APPLICATION__")

	assert.Error(t, err)
}

// rot13Token is a consumer-defined field type; the override operation works
// on it through encoding.TextUnmarshaler with no knowledge of the type.
type rot13Token string

func (r *rot13Token) UnmarshalText(text []byte) error {
	out := make([]byte, len(text))
	for i, c := range text {
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+13)%26
		default:
			out[i] = c
		}
	}
	*r = rot13Token(out)
	return nil
}

type extraFields struct {
	Name  string     `toml:"name" env:"NAME"`
	Token rot13Token `toml:"token" env:"TOKEN"`
}

func TestOverrideField_ExtendedFields(t *testing.T) {
	// Arrange
	s := DefaultCustom[extraFields]()
	s.Extended = extraFields{Name: "before"}
	t.Setenv("OVERRIDE__EXTENDED_NAME", "after")
	t.Setenv("OVERRIDE__EXTENDED_TOKEN", "uryyb")

	// Act
	require.NoError(t, OverrideFieldWithEnvVar(&s.Extended.Name, "OVERRIDE__EXTENDED_NAME"))
	require.NoError(t, OverrideFieldWithEnvVar(&s.Extended.Token, "OVERRIDE__EXTENDED_TOKEN"))

	// Assert
	assert.Equal(t, "after", s.Extended.Name)
	assert.Equal(t, rot13Token("hello"), s.Extended.Token)
}
