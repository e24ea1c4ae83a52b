package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads rc file from package root", func(t *testing.T) {
		tmpDir := t.TempDir()
		rcFile := filepath.Join(tmpDir, ".genryrc.yaml")

		content := `
include: "generators/**/*.genry.*"
exclude: "**/node_modules/**"
loader:
  .ts: "deno run -A"
`
		require.NoError(t, os.WriteFile(rcFile, []byte(content), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(tmpDir, "")

		require.NoError(t, err)
		assert.Equal(t, "generators/**/*.genry.*", cfg.Include)
		assert.Equal(t, "**/node_modules/**", cfg.Exclude)
		assert.Equal(t, "deno run -A", cfg.Loader[".ts"])
	})

	t.Run("returns defaults for missing rc file", func(t *testing.T) {
		loader := NewLoader()
		cfg, err := loader.Load(t.TempDir(), "")

		require.NoError(t, err)
		assert.Equal(t, DefaultInclude, cfg.Include)
		assert.Empty(t, cfg.Exclude)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("GENRY_INCLUDE", "tools/*.genry.*")
		t.Setenv("GENRY_EXCLUDE", "tools/legacy/*")

		loader := NewLoader()
		cfg, err := loader.Load(t.TempDir(), "")

		require.NoError(t, err)
		assert.Equal(t, "tools/*.genry.*", cfg.Include)
		assert.Equal(t, "tools/legacy/*", cfg.Exclude)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("GENRY_INCLUDE", "env/*.genry.*")

		tmpDir := t.TempDir()
		rcFile := filepath.Join(tmpDir, ".genryrc.yaml")
		require.NoError(t, os.WriteFile(rcFile, []byte("include: file/*.genry.*\n"), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(tmpDir, "")

		require.NoError(t, err)
		assert.Equal(t, "env/*.genry.*", cfg.Include)
	})

	t.Run("explicit config file path wins over search", func(t *testing.T) {
		tmpDir := t.TempDir()
		explicit := filepath.Join(tmpDir, "custom.yaml")
		require.NoError(t, os.WriteFile(explicit, []byte("exclude: custom/*\n"), 0o644))

		loader := NewLoader()
		cfg, err := loader.Load(t.TempDir(), explicit)

		require.NoError(t, err)
		assert.Equal(t, "custom/*", cfg.Exclude)
	})

	t.Run("malformed rc file is an error", func(t *testing.T) {
		tmpDir := t.TempDir()
		rcFile := filepath.Join(tmpDir, ".genryrc.yaml")
		require.NoError(t, os.WriteFile(rcFile, []byte("include: [unclosed\n"), 0o644))

		loader := NewLoader()
		_, err := loader.Load(tmpDir, "")
		assert.Error(t, err)
	})
}

func TestConfigWithDefaults(t *testing.T) {
	t.Run("fills empty include", func(t *testing.T) {
		cfg := (&Config{}).WithDefaults()
		assert.Equal(t, DefaultInclude, cfg.Include)
	})

	t.Run("keeps explicit include", func(t *testing.T) {
		cfg := (&Config{Include: "x/*.genry.*"}).WithDefaults()
		assert.Equal(t, "x/*.genry.*", cfg.Include)
	})
}
