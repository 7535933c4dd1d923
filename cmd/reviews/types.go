package reviews

// Review is a single review scraped from a film's review page.
type Review struct {
	User             string `json:"user"`                  // profile path segment, slashes stripped
	UserImage        string `json:"user_image,omitempty"`  // absolute avatar URL
	ReviewDate       string `json:"review_date,omitempty"` // "02 Jan 2006" when parseable
	ReviewText       string `json:"review_text"`           // whitespace-collapsed, spoiler-gated
	Rating           string `json:"rating,omitempty"`      // "0.0".."5.0" in half steps, "" when unrated
	LikesCount       *int   `json:"likes_count,omitempty"` // nil when the page carries no count
	ContainsSpoilers bool   `json:"contains_spoilers"`
}

// MovieReviews bundles the reviews of one film together with the lookup
// metadata needed for output filenames and frontmatter.
type MovieReviews struct {
	ImdbID   string   `json:"imdb_id"`
	FilmPath string   `json:"film_path"` // site-internal path, e.g. "/film/inception"
	FilmSlug string   `json:"film_slug"` // last path segment
	Reviews  []Review `json:"reviews"`
}
