package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/validatedpatterns/reference-api/src/internal/errors"
	"github.com/validatedpatterns/reference-api/src/internal/log"
)

func TestMain(m *testing.M) {
	log.DisableLogs()
	os.Exit(m.Run())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference-api.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestServeCommand_Init(t *testing.T) {
	path := writeConfig(t, "[store]\nseed = false\n")

	cmd := CreateServeCommand()
	require.NoError(t, cmd.Init([]string{"-bind", "127.0.0.1:0"}, &AppContext{ConfigPath: path}))

	assert.Equal(t, "serve", cmd.Name())
	assert.Equal(t, "127.0.0.1:0", cmd.server.Addr())
	assert.Empty(t, cmd.deps.RecordStore().List(), "seeding disabled in config")
}

func TestServeCommand_InitDefaults(t *testing.T) {
	cmd := CreateServeCommand()
	require.NoError(t, cmd.Init(nil, &AppContext{}))

	assert.Equal(t, "0.0.0.0:8080", cmd.server.Addr())
	assert.Len(t, cmd.deps.RecordStore().List(), 2)
}

func TestServeCommand_InitErrors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		err := CreateServeCommand().Init(nil, &AppContext{ConfigPath: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeConfig))
	})

	t.Run("invalid config value", func(t *testing.T) {
		path := writeConfig(t, "[server]\nread_timeout_seconds = 0\n")
		err := CreateServeCommand().Init(nil, &AppContext{ConfigPath: path})
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeValidation))
	})

	t.Run("invalid bind flag", func(t *testing.T) {
		err := CreateServeCommand().Init([]string{"-bind", "no-port"}, &AppContext{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid -bind address")
	})

	t.Run("bind port out of range", func(t *testing.T) {
		err := CreateServeCommand().Init([]string{"-bind", "127.0.0.1:65536"}, &AppContext{})
		require.Error(t, err)
		assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeValidation))
	})
}

func TestServeCommand_VerboseFromConfig(t *testing.T) {
	original := log.IsVerbose()
	defer log.SetVerbose(original)

	path := writeConfig(t, "[general]\nverbose = true\n")
	ctx := &AppContext{ConfigPath: path}

	require.NoError(t, CreateServeCommand().Init(nil, ctx))
	assert.True(t, ctx.Verbose)
	assert.True(t, log.IsVerbose())
}

func TestServeCommand_GracefulShutdown(t *testing.T) {
	cmd := CreateServeCommand()
	require.NoError(t, cmd.Init([]string{"-bind", "127.0.0.1:0"}, &AppContext{}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.serve(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
}

func TestConfigCommand(t *testing.T) {
	path := writeConfig(t, "[server]\nlisten_addr = \"127.0.0.1:9999\"\n")

	cmd := CreateConfigCommand()
	var out bytes.Buffer
	cmd.out = &out

	require.NoError(t, cmd.Init(nil, &AppContext{ConfigPath: path}))
	require.NoError(t, cmd.Run())

	assert.Equal(t, "config", cmd.Name())
	assert.Contains(t, out.String(), "127.0.0.1:9999")
	assert.Contains(t, out.String(), "access_log_format")
	assert.Contains(t, out.String(), "[store]")
}
