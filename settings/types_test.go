package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Address
		wantErr bool
	}{
		{name: "host and port", in: "127.0.0.1:8080", want: Address{Host: "127.0.0.1", Port: 8080}},
		{name: "hostname and port", in: "localhost:9090", want: Address{Host: "localhost", Port: 9090}},
		{name: "bare host", in: "example.org", want: Address{Host: "example.org", Port: DefaultPort}},
		{name: "surrounding whitespace", in: "  a:80 ", want: Address{Host: "a", Port: 80}},
		{name: "ipv6 with port", in: "[::1]:8080", want: Address{Host: "::1", Port: 8080}},
		{name: "bracketed bare ipv6", in: "[::1]", want: Address{Host: "::1", Port: DefaultPort}},
		{name: "empty", in: "", wantErr: true},
		{name: "missing host", in: ":8080", wantErr: true},
		{name: "port zero", in: "a:0", wantErr: true},
		{name: "port too large", in: "a:70000", wantErr: true},
		{name: "port not a number", in: "a:eighty", wantErr: true},
		{name: "unbracketed ipv6", in: "::1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAddress(tt.in)

			if tt.wantErr {
				var invalid *InvalidValueError
				assert.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddress_String(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", Address{Host: "127.0.0.1", Port: 8080}.String())
	assert.Equal(t, "[::1]:8080", Address{Host: "::1", Port: 8080}.String())
}

func TestAddressList_UnmarshalText(t *testing.T) {
	var l AddressList

	require.NoError(t, l.UnmarshalText([]byte("a:80, b:81 ,c")))

	assert.Equal(t, AddressList{
		{Host: "a", Port: 80},
		{Host: "b", Port: 81},
		{Host: "c", Port: DefaultPort},
	}, l)
}

func TestAddressList_UnmarshalTextEmpty(t *testing.T) {
	var l AddressList

	err := l.UnmarshalText([]byte(" , "))

	assert.ErrorIs(t, err, ErrNoHosts)
}

func TestAddressList_StringRoundTrip(t *testing.T) {
	l := AddressList{{Host: "a", Port: 80}, {Host: "b", Port: 81}}

	var parsed AddressList
	require.NoError(t, parsed.UnmarshalText([]byte(l.String())))

	assert.Equal(t, l, parsed)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("development")
	require.NoError(t, err)
	assert.Equal(t, ModeDevelopment, m)

	m, err = ParseMode("production")
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, m)

	_, err = ParseMode("sideways")
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "mode", invalid.Field)

	// the case policy is strict lowercase
	_, err = ParseMode("Development")
	assert.Error(t, err)
}

func TestMode_LogLevel(t *testing.T) {
	assert.Equal(t, "debug", ModeDevelopment.LogLevel())
	assert.Equal(t, "info", ModeProduction.LogLevel())
}
