package guide

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/spf13/cast"
)

// MaxPort is the highest valid TCP port.
const MaxPort = 65535

// WorkerServiceURL points a worker's base URL at a service published on
// another port of the same worker. The base path is kept and path, which
// may carry a query and fragment, is appended to it.
//
//	WorkerServiceURL("https://w.example.com/gw", 31111, "/?token=abc")
//	// https://w.example.com:31111/gw/?token=abc
func WorkerServiceURL(baseURL string, port int, path string) (string, error) {
	if port <= 0 || port > MaxPort {
		return "", errors.New(errors.ErrGuide,
			fmt.Sprintf("Port %d is out of range", port),
			"Use a port between 1 and 65535.")
	}

	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || base.Scheme == "" || base.Hostname() == "" {
		if err == nil {
			err = fmt.Errorf("missing scheme or host")
		}
		return "", errors.WrapWithCode(err, errors.ErrGuide,
			fmt.Sprintf("Can't use '%s' as a worker base URL", baseURL),
			"Use an absolute URL like https://worker.example.com.")
	}

	ref, err := url.Parse(path)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrGuide,
			fmt.Sprintf("Can't append '%s' to the worker URL", path),
			"Pass a path like /lab?token=abc.")
	}

	out := *base
	// JoinHostPort brackets IPv6 literals.
	out.Host = net.JoinHostPort(base.Hostname(), strconv.Itoa(port))

	suffix := ref.Path
	if suffix != "" && !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	out.Path = strings.TrimRight(base.Path, "/") + suffix
	out.RawPath = ""
	if ref.RawQuery != "" {
		out.RawQuery = ref.RawQuery
	}
	out.Fragment = ref.Fragment
	out.RawFragment = ""

	return out.String(), nil
}

// ParseServicePort reads a port from loosely typed registry data. Integers
// and numeric strings (surrounding whitespace allowed) are accepted; zero,
// negatives, values above MaxPort and anything non-numeric are not.
func ParseServicePort(v interface{}) (int, bool) {
	var port int
	switch t := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		port = n
	default:
		n, err := cast.ToIntE(t)
		if err != nil {
			return 0, false
		}
		port = n
	}

	if port <= 0 || port > MaxPort {
		return 0, false
	}
	return port, true
}
