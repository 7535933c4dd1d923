package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/albertdiaaz/letterfin/cmd/reviews"
	"github.com/albertdiaaz/letterfin/cmd/wheretowatch"
	"github.com/albertdiaaz/letterfin/internal/config"
)

var (
	fetchReviews      = reviews.FetchReviewsWithParams
	fetchAvailability = wheretowatch.FetchAvailabilityWithParams
)

// CLI represents the complete command structure for the letterfin application
type CLI struct {
	// Global flags
	Overwrite       bool `help:"Overwrite existing markdown files when processing"`
	DownloadAvatars bool `help:"Download reviewer avatar images into the attachments directory"`

	// Datasette flags
	Datasette   bool   `help:"Enable Datasette output" default:"true"`
	DatasetteDB string `help:"Path to SQLite database file" default:"./letterfin.db"`

	Fetch FetchCmd `cmd:"" help:"Fetch movie data from Letterboxd"`
}

// FetchCmd represents the fetch command and its subcommands
type FetchCmd struct {
	Reviews      ReviewsCmd      `cmd:"" help:"Fetch the reviews of a movie"`
	WhereToWatch WhereToWatchCmd `cmd:"" name:"wheretowatch" help:"Fetch the streaming availability of a movie"`
	Movie        MovieCmd        `cmd:"" help:"Fetch both reviews and streaming availability"`
}

// ReviewsCmd represents the fetch reviews command
type ReviewsCmd struct {
	ImdbID     string `short:"i" name:"imdb-id" help:"IMDB ID of the movie (e.g. tt1375666)"`
	Output     string `short:"o" help:"Subdirectory under markdown output directory for review notes" default:"reviews"`
	JSON       bool   `help:"Write data to JSON format"`
	JSONOutput string `help:"Path to JSON output file (defaults to json/reviews.json)"`
}

// WhereToWatchCmd represents the fetch wheretowatch command
type WhereToWatchCmd struct {
	ImdbID     string `short:"i" name:"imdb-id" help:"IMDB ID of the movie (e.g. tt1375666)"`
	Country    string `short:"c" help:"Country code in ISO 3166-1 alpha-3 format (defaults to letterboxd.country in config)"`
	Output     string `short:"o" help:"Subdirectory under markdown output directory for availability notes" default:"wheretowatch"`
	JSON       bool   `help:"Write data to JSON format"`
	JSONOutput string `help:"Path to JSON output file (defaults to json/wheretowatch.json)"`
}

// MovieCmd represents the fetch movie command
type MovieCmd struct {
	ImdbID  string `short:"i" name:"imdb-id" help:"IMDB ID of the movie (e.g. tt1375666)"`
	Country string `short:"c" help:"Country code in ISO 3166-1 alpha-3 format (defaults to letterboxd.country in config)"`
	JSON    bool   `help:"Write data to JSON format"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("letterfin"),
		kong.Description("A tool to fetch movie reviews and streaming availability from Letterboxd."),
		kong.UsageOnError(),
	)

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	// Datasette defaults
	viper.SetDefault("datasette.enabled", true)
	viper.SetDefault("datasette.dbfile", "./letterfin.db")

	// Enable environment variable support
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
			os.Exit(0)
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)
	config.SetDownloadAvatars(cli.DownloadAvatars)

	// Update datasette config
	viper.Set("datasette.enabled", cli.Datasette)
	viper.Set("datasette.dbfile", cli.DatasetteDB)
}

// resolveImdbID falls back to the config file when no flag was given.
func resolveImdbID(flagValue string) (string, error) {
	imdbID := flagValue
	if imdbID == "" {
		imdbID = viper.GetString("letterboxd.imdbid")
	}
	if imdbID == "" {
		return "", fmt.Errorf("IMDB ID is required (provide via --imdb-id flag or letterboxd.imdbid in config)")
	}
	return imdbID, nil
}

// Run methods for each command

func (r *ReviewsCmd) Run() error {
	imdbID, err := resolveImdbID(r.ImdbID)
	if err != nil {
		return err
	}

	return fetchReviews(imdbID, r.Output, r.JSON, r.JSONOutput, false, config.DownloadAvatars)
}

func (w *WhereToWatchCmd) Run() error {
	imdbID, err := resolveImdbID(w.ImdbID)
	if err != nil {
		return err
	}

	return fetchAvailability(imdbID, w.Country, w.Output, w.JSON, w.JSONOutput, false)
}

func (m *MovieCmd) Run() error {
	imdbID, err := resolveImdbID(m.ImdbID)
	if err != nil {
		return err
	}

	if err := fetchReviews(imdbID, "reviews", m.JSON, "", false, config.DownloadAvatars); err != nil {
		return err
	}

	return fetchAvailability(imdbID, m.Country, "wheretowatch", m.JSON, "", false)
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
