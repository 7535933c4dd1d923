package wheretowatch

import (
	"fmt"

	"github.com/albertdiaaz/letterfin/internal/render"
)

var categoryHeadings = map[string]string{
	"stream": "Available on streaming platforms",
	"rent":   "Available for rent",
	"buy":    "Available for purchase",
}

// printServices renders the availability to the terminal, one section per
// category in fixed order.
func printServices(movie MovieAvailability) {
	fmt.Println(render.Header(fmt.Sprintf("Streaming availability: %s (%s)", movie.FilmSlug, movie.Country)))

	if len(movie.Services) == 0 {
		fmt.Println(render.Muted("No streaming services found"))
		return
	}

	for _, category := range categoryOrder {
		services, ok := movie.Services[category]
		if !ok {
			continue
		}
		fmt.Println(render.KeyValue(categoryHeadings[category], ""))
		for _, service := range services {
			fmt.Println(render.Bullet(formatService(service)))
		}
		fmt.Println(render.Divider())
	}
}

// formatService renders one service line; priced entries show the amount.
func formatService(service StreamingService) string {
	if service.Price != nil {
		return fmt.Sprintf("%s: %.2f%s (%s)", service.Name, *service.Price, service.Currency, service.Format)
	}
	return fmt.Sprintf("%s (%s)", service.Name, service.Format)
}
