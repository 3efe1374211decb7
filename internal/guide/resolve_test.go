package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHost(t *testing.T) {
	tests := []struct {
		name    string
		worker  *string
		baseURL *string
		want    string
	}{
		{name: "no worker fields", want: "127.0.0.1"},
		{name: "empty worker name", worker: String(""), want: "127.0.0.1"},
		{name: "base url ignored without worker", baseURL: String("https://10.0.0.5"), want: "127.0.0.1"},
		{name: "worker name only", worker: String("Worker_01"), want: "Worker_01"},
		{name: "empty base url", worker: String("w1"), baseURL: String(""), want: "w1"},
		{name: "url with port and path", worker: String("w2"), baseURL: String("https://10.0.0.5:9443/path"), want: "10.0.0.5"},
		{name: "url hostname lower-cased", worker: String("w2"), baseURL: String("http://Worker.Example.COM"), want: "worker.example.com"},
		{name: "ipv6 literal", worker: String("w2"), baseURL: String("http://[2001:db8::10]:8000/prefix"), want: "2001:db8::10"},
		{name: "url with credentials", worker: String("w2"), baseURL: String("https://u:p@host.internal/"), want: "host.internal"},
		{name: "surrounding whitespace", worker: String("w2"), baseURL: String("  https://10.0.0.9  "), want: "10.0.0.9"},
		{name: "not a url", worker: String("w3"), baseURL: String("not a url"), want: "w3"},
		{name: "bad escape", worker: String("w4"), baseURL: String("http://%zz"), want: "w4"},
		{name: "scheme only", worker: String("w5"), baseURL: String("https://"), want: "w5"},
		{name: "bare host without scheme", worker: String("w6"), baseURL: String("10.0.0.5:9443"), want: "w6"},
		{name: "control character", worker: String("w7"), baseURL: String("http://host\x7f/"), want: "w7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Environment{ID: "e", SSHPort: 22, WorkerServerName: tt.worker, WorkerServerBaseURL: tt.baseURL}
			assert.Equal(t, tt.want, ResolveHost(env))
		})
	}
}

func TestResolveHost_ValidURLIgnoresWorkerName(t *testing.T) {
	for _, name := range []string{"a", "Worker_01", "something-else.local"} {
		env := Environment{WorkerServerName: String(name), WorkerServerBaseURL: String("https://jump.example.com:9443")}
		assert.Equal(t, "jump.example.com", ResolveHost(env))
	}
}

func TestResolveHost_InvalidURLKeepsWorkerNameVerbatim(t *testing.T) {
	for _, name := range []string{"Worker_01", "  spaced  ", "UPPER"} {
		env := Environment{WorkerServerName: String(name), WorkerServerBaseURL: String("::not-a-url")}
		assert.Equal(t, name, ResolveHost(env))
	}
}

func TestUsesBaseURL(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		want bool
	}{
		{name: "no worker", env: Environment{WorkerServerBaseURL: String("https://w1.example.com")}, want: false},
		{name: "no base url", env: Environment{WorkerServerName: String("w1")}, want: false},
		{name: "valid base url", env: Environment{WorkerServerName: String("w1"), WorkerServerBaseURL: String("https://10.0.0.5:9443")}, want: true},
		{name: "relative base url", env: Environment{WorkerServerName: String("w1"), WorkerServerBaseURL: String("not a url")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UsesBaseURL(tt.env))
		})
	}
}
