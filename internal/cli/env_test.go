package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/lyra-labs/lyra/internal/config"
	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvListCommand(t *testing.T) {
	useRegistry(t, testRegistry)

	var buf bytes.Buffer
	require.NoError(t, envListCommand(&buf))

	out := buf.String()
	for _, want := range []string{"ID", "JUMP HOST", "lyra-env-my-env", "Worker_01", "10.0.0.5", "2203"} {
		assert.Contains(t, out, want)
	}
}

func TestEnvListCommand_Empty(t *testing.T) {
	useRegistry(t, "")

	var buf bytes.Buffer
	err := envListCommand(&buf)
	require.Error(t, err, "an explicit --config that doesn't exist is an error")
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	useRegistry(t, "version: 1\n")
	buf.Reset()
	require.NoError(t, envListCommand(&buf))
	assert.Equal(t, "No environments configured\n", buf.String())
}

func TestEnvListCommand_JSON(t *testing.T) {
	useRegistry(t, testRegistry)
	machineMode = true

	var buf bytes.Buffer
	require.NoError(t, envListCommand(&buf))

	var env struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	require.Len(t, env.Data, 4)

	first := env.Data[0]
	assert.Equal(t, "e1", first["id"])
	assert.Equal(t, "127.0.0.1", first["jump_host"])
	assert.Equal(t, "lyra-env-my-env", first["env_alias"])
	assert.NotContains(t, first, "container_user", "unset optional fields are omitted")

	assert.Equal(t, "alice", env.Data[1]["container_user"])
}

func TestEnvAddCommand_CreatesRegistry(t *testing.T) {
	path := useRegistry(t, "")

	var buf bytes.Buffer
	err := envAddCommand(&buf, EnvAddOptions{
		ID:     "e9",
		Name:   "staging",
		Port:   "2209",
		Worker: "worker-09",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Added environment 'e9'")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Environments, 1)

	env := cfg.Environments[0]
	assert.Equal(t, "staging", env.Name)
	assert.Equal(t, 2209, env.SSHPort)
	require.NotNil(t, env.WorkerServerName)
	assert.Equal(t, "worker-09", *env.WorkerServerName)
	assert.Nil(t, env.ContainerUser)
	assert.Nil(t, env.WorkerServerBaseURL)
}

func TestEnvAddCommand_AppendsAndGuides(t *testing.T) {
	useRegistry(t, testRegistry)

	require.NoError(t, envAddCommand(&bytes.Buffer{}, EnvAddOptions{ID: "e5", Name: "ml", Port: "2205", User: "bob"}))

	var buf bytes.Buffer
	require.NoError(t, guideCommand(&buf, "ml", GuideOptions{CommandOnly: true}))
	assert.Equal(t, "ssh -J <host-ssh-user>@127.0.0.1 -p 2205 bob@127.0.0.1\n", buf.String())
}

func TestEnvAddCommand_Errors(t *testing.T) {
	path := useRegistry(t, testRegistry)

	tests := []struct {
		name string
		opts EnvAddOptions
		code string
	}{
		{name: "bad port", opts: EnvAddOptions{ID: "e7", Port: "abc"}, code: errors.ErrEnv},
		{name: "port out of range", opts: EnvAddOptions{ID: "e7", Port: "65536"}, code: errors.ErrEnv},
		{name: "duplicate id", opts: EnvAddOptions{ID: "e1", Port: "2222"}, code: errors.ErrConfig},
		{name: "user with space", opts: EnvAddOptions{ID: "e7", Port: "22", User: "a b"}, code: errors.ErrConfig},
		{name: "worker with newline", opts: EnvAddOptions{ID: "e7", Port: "22", Worker: "w1\nProxyCommand sh"}, code: errors.ErrConfig},
	}

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := envAddCommand(&bytes.Buffer{}, tt.opts)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "failed adds leave the registry untouched")
}

func TestEnvAddOptions_Environment(t *testing.T) {
	env, err := EnvAddOptions{ID: " e1 ", Name: " dev ", Port: " 2201 ", User: "  "}.environment()
	require.NoError(t, err)

	assert.Equal(t, "e1", env.ID)
	assert.Equal(t, "dev", env.Name)
	assert.Equal(t, 2201, env.SSHPort)
	assert.Nil(t, env.ContainerUser, "blank user stays unset")
}

func TestEnvFormText(t *testing.T) {
	en := newEnvFormText(i18n.New(i18n.LangEnglish))
	assert.Equal(t, "Environment ID", en.ID)
	assert.Equal(t, "Worker server name", en.Worker)

	ko := newEnvFormText(i18n.New(i18n.LangKorean))
	assert.Equal(t, "환경 ID", ko.ID)
	assert.Equal(t, "워커 서버 이름", ko.Worker)
	assert.Equal(t, "1 에서 65535 사이의 포트를 입력하세요", ko.PortInvalid)
}

func TestPromptTranslator(t *testing.T) {
	useRegistry(t, "version: 1\nlang: ko\n")

	assert.Equal(t, i18n.LangEnglish, promptTranslator().Lang(), "--lang wins")

	langFlag = ""
	assert.Equal(t, i18n.LangKorean, promptTranslator().Lang(), "registry lang applies to the form")

	useRegistry(t, "")
	langFlag = ""
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "")
	assert.Equal(t, i18n.LangEnglish, promptTranslator().Lang(), "a missing registry falls back to English")
}
