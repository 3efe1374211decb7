package guide

import (
	"net/url"
	"strings"

	"github.com/lyra-labs/lyra/internal/logger"
)

// LoopbackHost is the jump host used when the environment shares a machine
// with the controlling host, and the final-hop address inside every worker.
const LoopbackHost = "127.0.0.1"

var log = logger.NewEnvLogger("[guide]")

// SetLogger replaces the package logger. Intended for tests.
func SetLogger(l logger.Logger) {
	log = l
}

// ResolveHost returns the address used to reach the worker server that
// hosts env.
//
// Without a worker name the environment is collocated and the loopback
// address is returned. Otherwise the hostname of WorkerServerBaseURL wins
// when that URL parses to something with a host; any other outcome falls
// back to the worker name as given.
func ResolveHost(env Environment) string {
	workerName := value(env.WorkerServerName)
	if workerName == "" {
		return LoopbackHost
	}

	baseURL := value(env.WorkerServerBaseURL)
	if baseURL == "" {
		return workerName
	}

	if host, ok := urlHostname(baseURL); ok {
		return host
	}

	log.Debug("worker base URL %q has no usable hostname, using worker name %q", baseURL, workerName)
	return workerName
}

// urlHostname extracts the hostname from an absolute URL. net/url accepts
// relative references like "not a url" without error, so an empty host is
// treated the same as a parse failure.
func urlHostname(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	host := u.Hostname()
	if host == "" {
		return "", false
	}
	return strings.ToLower(host), true
}

// UsesBaseURL reports whether ResolveHost takes the jump host from env's
// WorkerServerBaseURL rather than from the worker name or loopback.
func UsesBaseURL(env Environment) bool {
	if value(env.WorkerServerName) == "" {
		return false
	}
	_, ok := urlHostname(value(env.WorkerServerBaseURL))
	return ok
}
