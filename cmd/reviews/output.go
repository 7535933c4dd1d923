package reviews

import (
	"fmt"
	"strconv"

	"github.com/albertdiaaz/letterfin/internal/render"
)

// printReviews renders the extracted reviews to the terminal.
func printReviews(movie MovieReviews) {
	fmt.Println(render.Header(fmt.Sprintf("Reviews: %s", movie.FilmSlug)))

	if len(movie.Reviews) == 0 {
		fmt.Println(render.Muted("No reviews found"))
		return
	}

	for _, review := range movie.Reviews {
		fmt.Println(render.KeyValue("User", review.User))
		if review.Rating != "" {
			fmt.Println(render.KeyValue("Rating", review.Rating))
		} else {
			fmt.Println(render.KeyValue("Rating", render.Muted("unrated")))
		}
		if review.ReviewDate != "" {
			fmt.Println(render.KeyValue("Date", review.ReviewDate))
		}
		if review.ContainsSpoilers {
			fmt.Println(render.SpoilerWarning())
		}
		fmt.Println(render.KeyValue("Review", review.ReviewText))
		if review.LikesCount != nil {
			fmt.Println(render.KeyValue("Likes", strconv.Itoa(*review.LikesCount)))
		}
		fmt.Println(render.Divider())
	}
}
