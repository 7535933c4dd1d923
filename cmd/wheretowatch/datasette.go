package wheretowatch

import "github.com/albertdiaaz/letterfin/internal/cmdutil"

const servicesSchema = `
CREATE TABLE IF NOT EXISTS streaming_services (
	imdb_id TEXT,
	film_slug TEXT,
	country TEXT,
	category TEXT,
	name TEXT,
	icon TEXT,
	locale TEXT,
	view_url TEXT,
	format TEXT,
	type TEXT,
	price REAL,
	currency TEXT
)`

// serviceRow is one flattened availability entry for the datastore.
type serviceRow struct {
	category string
	service  StreamingService
}

// writeServicesToDatasette flattens the per-category service lists and
// batch-inserts them into the configured Datasette destination.
func writeServicesToDatasette(movie MovieAvailability) error {
	var rows []serviceRow
	for _, category := range categoryOrder {
		for _, service := range movie.Services[category] {
			rows = append(rows, serviceRow{category: category, service: service})
		}
	}

	return cmdutil.WriteToDatastore(rows, servicesSchema, "streaming_services", "streaming services",
		func(r serviceRow) map[string]any {
			row := map[string]any{
				"imdb_id":   movie.ImdbID,
				"film_slug": movie.FilmSlug,
				"country":   movie.Country,
				"category":  r.category,
				"name":      r.service.Name,
				"icon":      r.service.Icon,
				"locale":    r.service.Locale,
				"view_url":  r.service.ViewURL,
				"format":    r.service.Format,
				"type":      r.service.Type,
				"price":     nil,
				"currency":  r.service.Currency,
			}
			if r.service.Price != nil {
				row["price"] = *r.service.Price
			}
			return row
		})
}
