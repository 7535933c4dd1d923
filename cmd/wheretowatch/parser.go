package wheretowatch

import (
	"encoding/json"

	"github.com/albertdiaaz/letterfin/internal/errors"
)

// serviceData mirrors the wire shape of one availability entry.
type serviceData struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Locale   string   `json:"locale"`
	ViewURL  string   `json:"viewUrl"`
	Format   string   `json:"format"`
	Type     string   `json:"type"`
	Price    *float64 `json:"price"`
	Currency string   `json:"currency"`
}

// ParseServices extracts the per-category streaming services from the
// availability payload. Categories absent from the payload are simply
// omitted from the result; a payload that cannot be decoded at all is a
// ParseError.
func ParseServices(jsonContent string) (map[string][]StreamingService, error) {
	var payload struct {
		Best map[string][]serviceData `json:"best"`
	}
	if err := json.Unmarshal([]byte(jsonContent), &payload); err != nil {
		return nil, errors.NewParseError("could not parse streaming services data", err)
	}

	result := map[string][]StreamingService{}
	for _, category := range categoryOrder {
		entries, ok := payload.Best[category]
		if !ok {
			continue
		}
		services := make([]StreamingService, len(entries))
		for i, entry := range entries {
			services[i] = parseService(entry)
		}
		result[category] = services
	}

	return result, nil
}

// parseService maps one wire entry to a StreamingService. A missing or
// zero price means "no price", not "free".
func parseService(data serviceData) StreamingService {
	price := data.Price
	if price != nil && *price == 0 {
		price = nil
	}
	return StreamingService{
		Name:     data.Name,
		Icon:     data.Icon,
		Locale:   data.Locale,
		ViewURL:  data.ViewURL,
		Format:   data.Format,
		Type:     data.Type,
		Price:    price,
		Currency: data.Currency,
	}
}
