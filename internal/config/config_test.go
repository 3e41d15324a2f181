package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TIPSPLIT_HISTORY_PATH",
		"TIPSPLIT_CURRENCY",
		"TIPSPLIT_LOG_LEVEL",
		"TIPSPLIT_DARK_MODE",
		"TIPSPLIT_DEFAULT_TIP",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, 15.0, cfg.DefaultTipPercent)
	assert.False(t, cfg.DarkMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.HistoryPath)
}

func TestLoadReadsTOMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
currency_symbol = "€"
default_tip_percent = 12.5
dark_mode = true
log_level = "debug"
history_path = "/tmp/custom_history.json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "€", cfg.CurrencySymbol)
	assert.Equal(t, 12.5, cfg.DefaultTipPercent)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/custom_history.json", cfg.HistoryPath)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`currency_symbol = "€"`), 0o644))

	t.Setenv("TIPSPLIT_CURRENCY", "£")
	t.Setenv("TIPSPLIT_DARK_MODE", "true")
	t.Setenv("TIPSPLIT_DEFAULT_TIP", "18")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "£", cfg.CurrencySymbol)
	assert.True(t, cfg.DarkMode)
	assert.Equal(t, 18.0, cfg.DefaultTipPercent)
}

func TestLoadInvalidTOMLReturnsError(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvIgnoresUnparsableValues(t *testing.T) {
	clearEnv(t)

	t.Setenv("TIPSPLIT_DARK_MODE", "sometimes")
	t.Setenv("TIPSPLIT_DEFAULT_TIP", "-3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.DarkMode)
	assert.Equal(t, 15.0, cfg.DefaultTipPercent)
}
