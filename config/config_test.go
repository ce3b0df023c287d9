package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"BOT_TOKEN", "DISCORD_TOKEN", "NITROPING_DATA_DIR", "NITROPING_BOT_NAME",
	"NITROPING_HOST_NAME", "NITROPING_BOOST_EMOJI", "NITROPING_GEM_EMOJI",
	"NITROPING_SUPPORT_URL", "NITROPING_DEVELOPERS", "NITROPING_HOST_URL",
	"LOG_LEVEL", "ENVIRONMENT",
}

// clearEnv blanks every variable the loader reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "abc")

	cfg, err := load(Options{})

	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.DiscordToken)
	assert.Equal(t, "servers", cfg.DataDir)
	assert.Equal(t, "Silent Ember Hosting", cfg.HostName)
	assert.Equal(t, "<a:nitro:1411082919019155456>", cfg.BoostEmoji)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoad_DiscordTokenFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "legacy")

	cfg, err := load(Options{})

	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.DiscordToken)
}

func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)

	_, err := load(Options{EnvFile: filepath.Join(t.TempDir(), ".env")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
	assert.Contains(t, err.Error(), ".env")
}

func TestLoad_TestEnvironmentSkipsTokenCheck(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := load(Options{})

	require.NoError(t, err)
	assert.Empty(t, cfg.DiscordToken)
}

func TestLoad_OfflineSkipsTokenCheck(t *testing.T) {
	clearEnv(t)

	_, err := load(Options{Offline: true})

	require.NoError(t, err)
}

func TestLoad_YAMLThenEnvPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
token: from-file
data_dir: /var/lib/nitroping
host_name: File Host
log_level: debug
`)
	t.Setenv("NITROPING_HOST_NAME", "Env Host")

	cfg, err := load(Options{ConfigFile: path})

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.DiscordToken)
	assert.Equal(t, "/var/lib/nitroping", cfg.DataDir)
	assert.Equal(t, "Env Host", cfg.HostName)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, "NitroPing", cfg.BotName)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("BOT_TOKEN")
	path := writeFile(t, ".env", "BOT_TOKEN=from-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("BOT_TOKEN") })

	cfg, err := load(Options{EnvFile: path})

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.DiscordToken)
}

func TestLoad_BadInputs(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "abc")

	_, err := load(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	_, err = load(Options{ConfigFile: writeFile(t, "bad.yaml", "token: [unterminated")})
	assert.Error(t, err)

	t.Setenv("LOG_LEVEL", "loud")
	_, err = load(Options{})
	assert.Error(t, err)
}

func TestSetTestConfig(t *testing.T) {
	t.Cleanup(ResetConfig)

	cfg := NewTestConfig()
	cfg.HostName = "Test Host"
	SetTestConfig(cfg)

	assert.Same(t, cfg, Get())
}
