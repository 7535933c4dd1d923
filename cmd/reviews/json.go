package reviews

import (
	"log/slog"

	"github.com/albertdiaaz/letterfin/internal/fileutil"
)

// writeReviewsToJSON dumps the extracted reviews to a JSON file.
func writeReviewsToJSON(movie MovieReviews, filename string) error {
	written, err := fileutil.WriteJSONFile(movie, filename, overwrite)
	if err != nil {
		return err
	}
	if !written {
		slog.Info("JSON file already exists, skipping", "filename", filename)
		return nil
	}
	slog.Info("Wrote JSON file", "filename", filename, "reviews", len(movie.Reviews))
	return nil
}
