package guide

import (
	"testing"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerServiceURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		port int
		path string
		want string
	}{
		{
			name: "keeps base path and overrides port",
			base: "https://worker.example.com/gateway/worker",
			port: 31111,
			path: "/?token=abc",
			want: "https://worker.example.com:31111/gateway/worker/?token=abc",
		},
		{
			name: "brackets ipv6 hostname",
			base: "http://[2001:db8::10]:8000/prefix",
			port: 32000,
			path: "/code",
			want: "http://[2001:db8::10]:32000/prefix/code",
		},
		{
			name: "preserves query and fragment",
			base: "https://worker.example.com/base",
			port: 30000,
			path: "/lab/tree?token=abc#section-1",
			want: "https://worker.example.com:30000/base/lab/tree?token=abc#section-1",
		},
		{
			name: "trailing slash on base",
			base: "http://10.0.0.5:9443/",
			port: 8888,
			path: "/lab",
			want: "http://10.0.0.5:8888/lab",
		},
		{
			name: "relative path gets a slash",
			base: "http://10.0.0.5",
			port: 8888,
			path: "lab",
			want: "http://10.0.0.5:8888/lab",
		},
		{
			name: "empty path",
			base: "http://10.0.0.5:9443/api",
			port: 8080,
			path: "",
			want: "http://10.0.0.5:8080/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorkerServiceURL(tt.base, tt.port, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkerServiceURL_Errors(t *testing.T) {
	tests := []struct {
		name string
		base string
		port int
	}{
		{name: "port zero", base: "http://w", port: 0},
		{name: "port too large", base: "http://w", port: 65536},
		{name: "no scheme", base: "worker.example.com", port: 80},
		{name: "not a url", base: "not a url", port: 80},
		{name: "bad escape", base: "http://%zz", port: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WorkerServiceURL(tt.base, tt.port, "/")
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrGuide))
		})
	}
}

func TestParseServicePort(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		want   int
		wantOk bool
	}{
		{name: "int", input: 8888, want: 8888, wantOk: true},
		{name: "int64", input: int64(2222), want: 2222, wantOk: true},
		{name: "numeric string", input: "8888", want: 8888, wantOk: true},
		{name: "padded string", input: "  8888  ", want: 8888, wantOk: true},
		{name: "max port", input: 65535, want: 65535, wantOk: true},
		{name: "zero", input: 0},
		{name: "negative", input: -1},
		{name: "zero string", input: "0"},
		{name: "too large", input: 65536},
		{name: "letters", input: "abc"},
		{name: "empty string", input: ""},
		{name: "nil", input: nil},
		{name: "bool", input: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseServicePort(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
