package testutil

import (
	"testing"

	"github.com/albertdiaaz/letterfin/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	OverwriteFiles    bool
	DownloadAvatars   bool
	LetterboxdBaseURL string
	Country           string
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		OverwriteFiles:    config.OverwriteFiles,
		DownloadAvatars:   config.DownloadAvatars,
		LetterboxdBaseURL: config.LetterboxdBaseURL,
		Country:           config.Country,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.OverwriteFiles = state.OverwriteFiles
	config.DownloadAvatars = state.DownloadAvatars
	config.LetterboxdBaseURL = state.LetterboxdBaseURL
	config.Country = state.Country
}

// SetTestConfig sets up a test configuration with common defaults.
// It saves the current state and restores it when the test completes.
func SetTestConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()

	viper.Reset()

	config.OverwriteFiles = true
	config.DownloadAvatars = false
	config.LetterboxdBaseURL = "https://letterboxd.com"
	config.Country = "USA"

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset; a previously-unset key stays set.
	})
}

// SetupDatasetteDB configures a temporary Datasette database for E2E tests
// and returns its path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("test.db")

	SetViperValue(t, "datasette.enabled", true)
	SetViperValue(t, "datasette.mode", "local")
	SetViperValue(t, "datasette.dbfile", dbPath)

	return dbPath
}

// SetupE2EMarkdownOutput points the markdown output directory at the test
// environment root.
func SetupE2EMarkdownOutput(t *testing.T, env *TestEnv) {
	t.Helper()

	SetViperValue(t, "markdownoutputdir", env.RootDir())
}
