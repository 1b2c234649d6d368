package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TASKBOOK_CONFIG_PATH",
		"TASKBOOK_STORE_BACKEND",
		"TASKBOOK_STORE_PATH",
		"TASKBOOK_STORE_ON_LOAD_ERROR",
		"TASKBOOK_LOG_LEVEL",
		"TASKBOOK_LOG_PATH",
		"TASKBOOK_SERVER_HOST",
		"TASKBOOK_SERVER_PORT",
	} {
		t.Setenv(key, "")
	}
	// keep a stray .env in the package directory out of the picture
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "taskbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  backend: sqlite
  path: /var/lib/taskbook/tasks.db
log:
  level: debug
server:
  port: 9090
`), 0o644))

	t.Setenv("TASKBOOK_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "/var/lib/taskbook/tasks.db", cfg.Store.Path)
	assert.Equal(t, "fail", cfg.Store.OnLoadError)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "taskbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  on_load_error: empty\n"), 0o644))
	t.Setenv("TASKBOOK_CONFIG_PATH", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "empty", cfg.Store.OnLoadError)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("TASKBOOK_STORE_PATH=from-dotenv.json\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TASKBOOK_STORE_PATH") })
	require.NoError(t, os.Unsetenv("TASKBOOK_STORE_PATH"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.json", cfg.Store.Path)
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKBOOK_SERVER_PORT", "eighty")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config file")
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = "postgres"
	cfg.Store.Path = " "
	cfg.Store.OnLoadError = "ignore"
	cfg.Log.Level = "trace"
	cfg.Server.Port = 0

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 5)
	assert.Equal(t, "store.backend", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "postgres")
}
