package reviews

import "github.com/albertdiaaz/letterfin/internal/cmdutil"

const reviewsSchema = `
CREATE TABLE IF NOT EXISTS reviews (
	imdb_id TEXT,
	film_slug TEXT,
	user TEXT,
	user_image TEXT,
	review_date TEXT,
	review_text TEXT,
	rating TEXT,
	likes_count INTEGER,
	contains_spoilers INTEGER
)`

// writeReviewsToDatasette batch-inserts the reviews into the configured
// Datasette destination. A no-op when datasette.enabled is unset.
func writeReviewsToDatasette(movie MovieReviews) error {
	return cmdutil.WriteToDatastore(movie.Reviews, reviewsSchema, "reviews", "reviews",
		func(r Review) map[string]any {
			row := map[string]any{
				"imdb_id":           movie.ImdbID,
				"film_slug":         movie.FilmSlug,
				"user":              r.User,
				"user_image":        r.UserImage,
				"review_date":       r.ReviewDate,
				"review_text":       r.ReviewText,
				"rating":            r.Rating,
				"likes_count":       nil,
				"contains_spoilers": boolToInt(r.ContainsSpoilers),
			}
			if r.LikesCount != nil {
				row["likes_count"] = *r.LikesCount
			}
			return row
		})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
