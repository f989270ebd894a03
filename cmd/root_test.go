// File: cmd/root_test.go
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/smallworld/internal/config"
)

// TestRootCmd_VersionFlag tests if the --version flag works correctly.
func TestRootCmd_VersionFlag(t *testing.T) {
	out, err := executeCommand(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "smallworld version Alpha")
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "smallworld version Alpha\n", out)
}

// TestRootCmd_NoArgs tests the behavior when no arguments are provided.
func TestRootCmd_NoArgs(t *testing.T) {
	out, err := executeCommand(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Smallworld builds a population of agents")
	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "describe")
}

func TestRootCmd_MissingExplicitConfig(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "describe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize configuration")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger:\n  format: xml\n"), 0o600))

	_, err := executeCommand(t, "--config", path, "describe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "format must be 'console' or 'json'")
}

func TestInitializeConfig(t *testing.T) {
	t.Run("reads an explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("population:\n  size: 33\n"), 0o600))

		v := viper.New()
		config.SetDefaults(v)
		require.NoError(t, initializeConfig(v, path))
		assert.Equal(t, 33, v.GetInt("population.size"))
	})

	t.Run("falls back to defaults without a file", func(t *testing.T) {
		resetForTest(t)
		v := viper.New()
		config.SetDefaults(v)
		require.NoError(t, initializeConfig(v, ""))
		assert.Equal(t, 1000, v.GetInt("population.size"))
	})

	t.Run("reads the home config", func(t *testing.T) {
		resetForTest(t)
		home, err := os.UserHomeDir()
		require.NoError(t, err)
		dir := filepath.Join(home, ".smallworld")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("population:\n  gender_pct: 30\n"), 0o600))

		v := viper.New()
		config.SetDefaults(v)
		require.NoError(t, initializeConfig(v, ""))
		assert.Equal(t, 30, v.GetInt("population.gender_pct"))
	})

	t.Run("environment overrides nested keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("population:\n  size: 33\n"), 0o600))
		t.Setenv("SMALLWORLD_POPULATION_SIZE", "17")

		v := viper.New()
		config.SetDefaults(v)
		require.NoError(t, initializeConfig(v, path))
		cfg, err := config.NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, 17, cfg.Population().Size)
	})
}

func TestGetConfigFromContext(t *testing.T) {
	_, err := getConfigFromContext(context.Background())
	require.Error(t, err)

	cfg := config.NewDefaultConfig()
	ctx := context.WithValue(context.Background(), configKey, config.Interface(cfg))
	got, err := getConfigFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, cfg, got)
}
