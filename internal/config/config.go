package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing output files should be overwritten
	OverwriteFiles bool
	// DownloadAvatars controls whether reviewer profile images are downloaded locally
	DownloadAvatars bool
	// LetterboxdBaseURL is the base URL of the Letterboxd site
	LetterboxdBaseURL string
	// Country is the ISO 3166-1 alpha-3 country code used for availability lookups
	Country string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)
	viper.SetDefault("letterboxd.baseurl", "https://letterboxd.com")
	viper.SetDefault("letterboxd.country", "USA")

	// Get values from viper
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	LetterboxdBaseURL = viper.GetString("letterboxd.baseurl")
	Country = viper.GetString("letterboxd.country")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetDownloadAvatars sets the DownloadAvatars flag
func SetDownloadAvatars(download bool) {
	DownloadAvatars = download
}
