package wheretowatch

import (
	"log/slog"

	"github.com/albertdiaaz/letterfin/internal/fileutil"
)

// writeServicesToJSON dumps the extracted availability to a JSON file.
func writeServicesToJSON(movie MovieAvailability, filename string) error {
	written, err := fileutil.WriteJSONFile(movie, filename, overwrite)
	if err != nil {
		return err
	}
	if !written {
		slog.Info("JSON file already exists, skipping", "filename", filename)
		return nil
	}
	slog.Info("Wrote JSON file", "filename", filename, "categories", len(movie.Services))
	return nil
}
