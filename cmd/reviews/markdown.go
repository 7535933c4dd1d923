package reviews

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/albertdiaaz/letterfin/internal/fileutil"
)

const reviewsTemplate = `---
title: {{.FilmSlug}}
type: reviews
imdb_id: {{.ImdbID}}
letterboxd_path: {{.FilmPath}}
review_count: {{len .Reviews}}
tags:
  - letterfin/reviews
---

# Reviews for {{.FilmSlug}}
{{range .Reviews}}
## {{if .User}}{{.User}}{{else}}unknown{{end}}
{{if .UserImage}}
![avatar]({{.UserImage}})
{{- end}}
{{- if .Rating}}
**Rating**: {{.Rating}} / 5
{{- end}}
{{- if .ReviewDate}}
**Date**: {{.ReviewDate}}
{{- end}}
{{- if .LikesCount}}
**Likes**: {{.LikesCount}}
{{- end}}
{{- if .ContainsSpoilers}}

> [!warning] Contains spoilers
{{- end}}

{{.ReviewText}}
{{end}}`

// writeReviewsToMarkdown writes one note per film containing all of its
// extracted reviews.
func writeReviewsToMarkdown(movie MovieReviews, directory string) error {
	filename := fmt.Sprintf("%s - reviews.md", fileutil.SanitizeFilename(movie.FilmSlug))
	notePath := filepath.Join(directory, filename)

	tmpl, err := template.New("reviews").Parse(reviewsTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, movie); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	written, err := fileutil.WriteFileWithOverwrite(notePath, buf.Bytes(), 0644, overwrite)
	if err != nil {
		return err
	}
	if !written {
		slog.Info("File already exists, skipping", "path", notePath)
		return nil
	}

	slog.Info("Wrote markdown note", "path", notePath, "reviews", len(movie.Reviews))
	return nil
}
