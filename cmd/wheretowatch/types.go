package wheretowatch

// StreamingService is a single availability entry for a film.
type StreamingService struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon,omitempty"`
	Locale   string   `json:"locale,omitempty"`
	ViewURL  string   `json:"view_url,omitempty"`
	Format   string   `json:"format,omitempty"`
	Type     string   `json:"type,omitempty"`
	Price    *float64 `json:"price,omitempty"` // nil when the source has no usable price
	Currency string   `json:"currency,omitempty"`
}

// MovieAvailability bundles the per-category service lists with the lookup
// metadata needed for output filenames and frontmatter. Only the categories
// present in the source payload appear in Services.
type MovieAvailability struct {
	ImdbID   string                        `json:"imdb_id"`
	FilmPath string                        `json:"film_path"`
	FilmSlug string                        `json:"film_slug"`
	FilmID   int                           `json:"film_id"`
	Country  string                        `json:"country"`
	Services map[string][]StreamingService `json:"services"`
}

// categoryOrder is the presentation order for availability categories.
var categoryOrder = []string{"stream", "rent", "buy"}
