package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lyra-labs/lyra/internal/guide"
)

func writeSSHConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSSHConfigCheck(t *testing.T) {
	path := writeSSHConfig(t, "Host a\n  HostName a.example.com\n\nHost b\n  HostName b.example.com\n")
	got := (&SSHConfigCheck{Path: path}).Run()
	if got.Status != StatusPass || !strings.Contains(got.Message, "2 host entries") {
		t.Errorf("got %v %q", got.Status, got.Message)
	}

	missing := filepath.Join(t.TempDir(), "config")
	got = (&SSHConfigCheck{Path: missing}).Run()
	if got.Status != StatusPass || !strings.Contains(got.Message, "not present") {
		t.Errorf("missing file: got %v %q", got.Status, got.Message)
	}
}

func TestSSHConflictCheck(t *testing.T) {
	envs := []guide.Environment{
		{ID: "e2", Name: "dev", SSHPort: 2201, ContainerUser: guide.String("alice"), WorkerServerName: guide.String("Worker_01")},
	}

	pasted := writeSSHConfig(t, guide.Build(envs[0]).SSHConfig+"\n")
	if got := (&SSHConflictCheck{Path: pasted, Environments: envs}).Run(); got.Status != StatusPass {
		t.Errorf("pasted block: %v %s", got.Status, got.Message)
	}

	stale := writeSSHConfig(t, "Host lyra-env-dev\n  HostName 127.0.0.1\n  Port 2201\n  User bob\n  ProxyJump lyra-worker-worker-01\n")
	got := (&SSHConflictCheck{Path: stale, Environments: envs}).Run()
	if got.Status != StatusWarn {
		t.Fatalf("status = %v, want warn", got.Status)
	}
	if !strings.Contains(got.Message, "lyra-env-dev (User)") {
		t.Errorf("message = %q", got.Message)
	}

	if got := (&SSHConflictCheck{Path: stale}).Run(); got.Status != StatusPass {
		t.Errorf("no environments: %v %s", got.Status, got.Message)
	}
}
