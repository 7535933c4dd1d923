package wheretowatch

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/albertdiaaz/letterfin/internal/fileutil"
)

// writeServicesToMarkdown writes one availability note per film, with a
// table per category.
func writeServicesToMarkdown(movie MovieAvailability, directory string) error {
	filename := fmt.Sprintf("%s - availability.md", fileutil.SanitizeFilename(movie.FilmSlug))
	notePath := filepath.Join(directory, filename)

	mb := fileutil.NewMarkdownBuilder().
		AddTitle(movie.FilmSlug).
		AddType("availability").
		AddField("imdb_id", movie.ImdbID).
		AddField("letterboxd_path", movie.FilmPath).
		AddField("letterboxd_id", movie.FilmID).
		AddField("country", movie.Country).
		AddTags("letterfin/availability")

	mb.AddHeading(1, fmt.Sprintf("Where to watch %s", movie.FilmSlug))

	if len(movie.Services) == 0 {
		mb.AddParagraph(fmt.Sprintf("No streaming services found for %s.", movie.Country))
	}

	for _, category := range categoryOrder {
		services, ok := movie.Services[category]
		if !ok {
			continue
		}

		mb.AddHeading(2, categoryHeadings[category])
		mb.AddTableHeader("Service", "Format", "Price")
		for _, service := range services {
			mb.AddTableRow(service.Name, service.Format, formatPrice(service))
		}
		mb.EndTable()
	}

	written, err := fileutil.WriteFileWithOverwrite(notePath, []byte(mb.Build()), 0644, overwrite)
	if err != nil {
		return err
	}
	if !written {
		slog.Info("File already exists, skipping", "path", notePath)
		return nil
	}

	slog.Info("Wrote markdown note", "path", notePath, "categories", len(movie.Services))
	return nil
}

func formatPrice(service StreamingService) string {
	if service.Price == nil {
		return ""
	}
	return fmt.Sprintf("%.2f %s", *service.Price, service.Currency)
}
