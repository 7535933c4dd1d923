package reviews

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
	cmdConfig *cmdutil.BaseCommandConfig
	// Referenced by the output writers
	outputDir  string
	writeJSON  bool
	jsonOutput string
	overwrite  bool
	// Avatar download options
	downloadAvatars bool
)

var fetchReviewsFunc = FetchReviews

// FetchReviewsWithParams runs the review pipeline with explicit parameters.
// This is the entry point used by the Kong CLI layer.
func FetchReviewsWithParams(
	imdbIDParam, outputDirParam string,
	writeJSONFlag bool,
	jsonOutputPath string,
	overwriteFlag bool,
	downloadAvatarsFlag bool,
) error {
	imdbID = imdbIDParam
	downloadAvatars = downloadAvatarsFlag

	cmdConfig = &cmdutil.BaseCommandConfig{
		OutputDir:  outputDirParam,
		ConfigKey:  "reviews",
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

	return fetchReviewsFunc()
}

// FetchReviews resolves the film behind the configured IMDB ID, fetches its
// review page and writes the extracted reviews to every enabled output.
func FetchReviews() error {
	if overwrite != config.OverwriteFiles {
		slog.Warn("Overwrite flag mismatch, using global value",
			"local", overwrite, "global", config.OverwriteFiles)
		overwrite = config.OverwriteFiles
	}

	slog.Info("Fetching reviews", "imdb_id", imdbID)

	client := letterboxd.NewClient(viper.GetString("letterboxd.baseurl"))

	filmPath, err := client.ResolveFilmPath(imdbID)
	if err != nil {
		return fmt.Errorf("failed to resolve film for %s: %w", imdbID, err)
	}
	slog.Info("Resolved film", "imdb_id", imdbID, "film_path", filmPath)

	html, err := client.ReviewsHTML(filmPath)
	if err != nil {
		return fmt.Errorf("failed to fetch reviews page: %w", err)
	}

	extracted, err := ExtractReviews(html, client.BaseURL())
	if err != nil {
		return err
	}

	movie := MovieReviews{
		ImdbID:   imdbID,
		FilmPath: filmPath,
		FilmSlug: path.Base(filmPath),
		Reviews:  extracted,
	}

	slog.Info("Extracted reviews", "film", movie.FilmSlug, "count", len(movie.Reviews))

	printReviews(movie)

	if downloadAvatars || config.DownloadAvatars {
		downloadReviewerAvatars(movie)
	}

	if err := writeReviewsToMarkdown(movie, outputDir); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}

	if writeJSON {
		if err := writeReviewsToJSON(movie, jsonOutput); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	}

	if err := writeReviewsToDatasette(movie); err != nil {
		return fmt.Errorf("failed to write to Datasette: %w", err)
	}

	return nil
}
