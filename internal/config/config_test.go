package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches into dir for the duration of the test and isolates HOME so
// the global registry can't leak in.
func chdir(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.NotNil(t, cfg.Environments)
	assert.Empty(t, cfg.Environments)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
lang: ko
output:
  color: never
environments:
  - id: e1
    name: My Env!
    ssh_port: 2222
  - id: e2
    name: dev
    container_user: alice
    ssh_port: "2201"
    worker_server_name: Worker_01
  - id: e3
    name: gpu
    ssh_port: 2300
    worker_server_name: w2
    worker_server_base_url: https://10.0.0.5:9443/path
  - id: e4
    ssh_port: 2400
    worker_server_name: null
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "ko", cfg.Lang)
	assert.Equal(t, "never", cfg.Output.Color)
	require.Len(t, cfg.Environments, 4)

	e1 := cfg.Environments[0]
	assert.Equal(t, "e1", e1.ID)
	assert.Equal(t, "My Env!", e1.Name)
	assert.Equal(t, 2222, e1.SSHPort)
	assert.Nil(t, e1.ContainerUser)
	assert.Nil(t, e1.WorkerServerName)
	assert.Nil(t, e1.WorkerServerBaseURL)

	e2 := cfg.Environments[1]
	require.NotNil(t, e2.ContainerUser)
	assert.Equal(t, "alice", *e2.ContainerUser)
	assert.Equal(t, 2201, e2.SSHPort, "numeric strings decode as ports")
	require.NotNil(t, e2.WorkerServerName)
	assert.Equal(t, "Worker_01", *e2.WorkerServerName)

	e3 := cfg.Environments[2]
	require.NotNil(t, e3.WorkerServerBaseURL)
	assert.Equal(t, "https://10.0.0.5:9443/path", *e3.WorkerServerBaseURL)
	assert.Equal(t, "10.0.0.5", guide.ResolveHost(e3))

	e4 := cfg.Environments[3]
	assert.False(t, e4.HasWorker())
	assert.Equal(t, "e4", e4.Label())

	assert.NoError(t, Validate(cfg))
}

func TestLoad_Defaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("environments: []\n"), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/.lyra.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config file not found")
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("environments: [\n  - id: e1\n"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind(t *testing.T) {
	t.Run("explicit path exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: 1"), 0644))

		got, err := Find(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("explicit path not found", func(t *testing.T) {
		_, err := Find("/nonexistent/config.yaml")
		assert.Error(t, err)
	})

	t.Run("current directory has config", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("version: 1"), 0644))
		chdir(t, dir)

		got, err := Find("")
		require.NoError(t, err)
		assert.Equal(t, ConfigFileName, filepath.Base(got))
	})

	t.Run("parent directory has config", func(t *testing.T) {
		root := t.TempDir()
		child := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(child, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("version: 1"), 0644))
		chdir(t, child)

		got, err := Find("")
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	})

	t.Run("stops at git root", func(t *testing.T) {
		root := t.TempDir()
		repo := filepath.Join(root, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("version: 1"), 0644))
		chdir(t, repo)

		got, err := Find("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoadOrDefault(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Empty(t, cfg.Environments)
}

func TestLookup(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Environments = []guide.Environment{
		{ID: "e1", Name: "dev", SSHPort: 2201},
		{ID: "dev", Name: "other", SSHPort: 2202},
		{ID: "e3", Name: "gpu", SSHPort: 2203},
	}

	env, ok := cfg.Lookup("e3")
	require.True(t, ok)
	assert.Equal(t, 2203, env.SSHPort)

	env, ok = cfg.Lookup("gpu")
	require.True(t, ok)
	assert.Equal(t, "e3", env.ID)

	env, ok = cfg.Lookup("dev")
	require.True(t, ok)
	assert.Equal(t, "dev", env.ID, "ID match wins over name match")

	_, ok = cfg.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"dev", "e1", "e3"}, cfg.IDs())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Environments = []guide.Environment{{ID: "e1", SSHPort: 2222}}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "future version", mutate: func(c *Config) { c.Version = 99 }, wantErr: "from the future"},
		{name: "unknown lang", mutate: func(c *Config) { c.Lang = "fr" }, wantErr: "Unsupported language"},
		{name: "bad color", mutate: func(c *Config) { c.Output.Color = "rainbow" }, wantErr: "output.color"},
		{
			name:    "duplicate id",
			mutate:  func(c *Config) { c.Environments = append(c.Environments, guide.Environment{ID: "e1", SSHPort: 1}) },
			wantErr: "used more than once",
		},
		{
			name:    "missing id",
			mutate:  func(c *Config) { c.Environments[0].ID = " " },
			wantErr: "Environment #1 is invalid",
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Environments[0].SSHPort = 0 },
			wantErr: "Environment #1 is invalid",
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Environments[0].SSHPort = 70000 },
			wantErr: "Environment #1 is invalid",
		},
		{
			name:    "user with whitespace",
			mutate:  func(c *Config) { c.Environments[0].ContainerUser = guide.String("bad user") },
			wantErr: "Environment #1 is invalid",
		},
		{
			name:    "user with carriage return",
			mutate:  func(c *Config) { c.Environments[0].ContainerUser = guide.String("alice\r") },
			wantErr: "Environment #1 is invalid",
		},
		{
			name:    "worker name with newline",
			mutate:  func(c *Config) { c.Environments[0].WorkerServerName = guide.String("w1\n  ProxyCommand sh") },
			wantErr: "Environment #1 is invalid",
		},
		{
			name:    "worker name with tab",
			mutate:  func(c *Config) { c.Environments[0].WorkerServerName = guide.String("w1\tx") },
			wantErr: "Environment #1 is invalid",
		},
		{
			name:    "worker name with control character",
			mutate:  func(c *Config) { c.Environments[0].WorkerServerName = guide.String("w1\x00") },
			wantErr: "Environment #1 is invalid",
		},
		{
			name:   "plain worker name",
			mutate: func(c *Config) { c.Environments[0].WorkerServerName = guide.String("Worker_01.example.com") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}

	assert.Error(t, Validate(nil))
}

func TestLoad_RejectsInjectedWorkerName(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
environments:
  - id: e1
    ssh_port: 2222
    worker_server_name: "w1\n  ProxyCommand touch /tmp/owned"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker_server_name")
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, ".lyra.yaml"), ExpandTilde("~/.lyra.yaml"))
	assert.Equal(t, "/etc/lyra.yaml", ExpandTilde("/etc/lyra.yaml"))
	assert.Equal(t, "~other/x", ExpandTilde("~other/x"))
	assert.Equal(t, "", ExpandTilde(""))
}
