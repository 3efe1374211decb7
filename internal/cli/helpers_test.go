package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lyra-labs/lyra/internal/i18n"
	"github.com/stretchr/testify/require"
)

const testRegistry = `version: 1
lang: en
environments:
  - id: e1
    name: My Env!
    ssh_port: 2222
  - id: e2
    name: dev
    ssh_port: 2201
    container_user: alice
    worker_server_name: Worker_01
  - id: e3
    name: gpu
    ssh_port: 2202
    worker_server_name: w2
    worker_server_base_url: https://10.0.0.5:9443/gateway
  - id: e4
    name: gpu-b
    ssh_port: 2203
    worker_server_name: w2
    worker_server_base_url: https://10.0.0.5:9443/gateway
`

// useRegistry points the global --config at a temp registry holding
// content (no file when content is empty) and isolates HOME. Global flag
// state is restored after the test.
func useRegistry(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("LYRA_LANG", "")

	path := filepath.Join(dir, ".lyra.yaml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	oldCfg, oldLang, oldMachine := cfgFile, langFlag, machineMode
	cfgFile, langFlag, machineMode = path, "en", false
	t.Cleanup(func() {
		cfgFile, langFlag, machineMode = oldCfg, oldLang, oldMachine
		i18n.SetLang(i18n.LangEnglish)
	})
	return path
}
