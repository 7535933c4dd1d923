package cmdutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupOutputDir(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	viper.Set("markdownoutputdir", tempDir)

	cfg := &BaseCommandConfig{ConfigKey: "reviews"}
	require.NoError(t, SetupOutputDir(cfg))

	assert.Equal(t, filepath.Join(tempDir, "reviews"), cfg.OutputDir)
	info, err := os.Stat(cfg.OutputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSetupOutputDir_ExplicitDir(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	viper.Set("markdownoutputdir", tempDir)

	cfg := &BaseCommandConfig{OutputDir: "custom", ConfigKey: "reviews"}
	require.NoError(t, SetupOutputDir(cfg))

	assert.Equal(t, filepath.Join(tempDir, "custom"), cfg.OutputDir)
}

func TestSetupOutputDir_JSONDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tempDir := t.TempDir()
	viper.Set("markdownoutputdir", filepath.Join(tempDir, "md"))
	viper.Set("jsonoutputdir", filepath.Join(tempDir, "json"))

	cfg := &BaseCommandConfig{ConfigKey: "wheretowatch", WriteJSON: true}
	require.NoError(t, SetupOutputDir(cfg))

	assert.Equal(t, filepath.Join(tempDir, "json", "wheretowatch.json"), cfg.JSONOutput)
	info, err := os.Stat(filepath.Dir(cfg.JSONOutput))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
