package wheretowatch

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/spf13/viper"

	"github.com/albertdiaaz/letterfin/internal/cmdutil"
	"github.com/albertdiaaz/letterfin/internal/config"
	"github.com/albertdiaaz/letterfin/internal/letterboxd"
)

// Package-level variables shared by the pipeline stages
var (
	imdbID    string
	country   string
	cmdConfig *cmdutil.BaseCommandConfig
	// Referenced by the output writers
	outputDir  string
	writeJSON  bool
	jsonOutput string
	overwrite  bool
)

var fetchAvailabilityFunc = FetchAvailability

// FetchAvailabilityWithParams runs the availability pipeline with explicit
// parameters. This is the entry point used by the Kong CLI layer.
func FetchAvailabilityWithParams(
	imdbIDParam, countryParam, outputDirParam string,
	writeJSONFlag bool,
	jsonOutputPath string,
	overwriteFlag bool,
) error {
	imdbID = imdbIDParam

	country = countryParam
	if country == "" {
		country = viper.GetString("letterboxd.country")
	}
	if country == "" {
		country = "USA"
	}

	cmdConfig = &cmdutil.BaseCommandConfig{
		OutputDir:  outputDirParam,
		ConfigKey:  "wheretowatch",
		WriteJSON:  writeJSONFlag,
		JSONOutput: jsonOutputPath,
		Overwrite:  overwriteFlag,
	}

	if err := cmdutil.SetupOutputDir(cmdConfig); err != nil {
		return err
	}

	outputDir = cmdConfig.OutputDir
	writeJSON = cmdConfig.WriteJSON
	jsonOutput = cmdConfig.JSONOutput
	overwrite = cmdConfig.Overwrite

	return fetchAvailabilityFunc()
}

// FetchAvailability resolves the film behind the configured IMDB ID, fetches
// its streaming availability and writes the services to every enabled output.
func FetchAvailability() error {
	if overwrite != config.OverwriteFiles {
		slog.Warn("Overwrite flag mismatch, using global value",
			"local", overwrite, "global", config.OverwriteFiles)
		overwrite = config.OverwriteFiles
	}

	slog.Info("Fetching availability", "imdb_id", imdbID, "country", country)

	client := letterboxd.NewClient(viper.GetString("letterboxd.baseurl"))

	filmPath, err := client.ResolveFilmPath(imdbID)
	if err != nil {
		return fmt.Errorf("failed to resolve film for %s: %w", imdbID, err)
	}

	filmID, err := client.FilmID(filmPath)
	if err != nil {
		return fmt.Errorf("failed to fetch film ID: %w", err)
	}
	slog.Info("Resolved film", "imdb_id", imdbID, "film_path", filmPath, "film_id", filmID)

	payload, err := client.AvailabilityJSON(filmID, country)
	if err != nil {
		return fmt.Errorf("failed to fetch availability: %w", err)
	}

	services, err := ParseServices(payload)
	if err != nil {
		return err
	}

	movie := MovieAvailability{
		ImdbID:   imdbID,
		FilmPath: filmPath,
		FilmSlug: path.Base(filmPath),
		FilmID:   filmID,
		Country:  country,
		Services: services,
	}

	slog.Info("Extracted availability", "film", movie.FilmSlug, "categories", len(movie.Services))

	printServices(movie)

	if err := writeServicesToMarkdown(movie, outputDir); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}

	if writeJSON {
		if err := writeServicesToJSON(movie, jsonOutput); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	}

	if err := writeServicesToDatasette(movie); err != nil {
		return fmt.Errorf("failed to write to Datasette: %w", err)
	}

	return nil
}
