package reviews

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/albertdiaaz/letterfin/internal/errors"
)

// ISO timestamps on the review page usually carry an offset, but older
// markup has offset-less forms.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ExtractReviews parses a film's review page into ordered Review records.
// A page without review blocks yields an empty slice. Field-level problems
// inside a block (missing avatar, unparseable date, malformed like count)
// degrade that field to its zero value and never abort the parse.
func ExtractReviews(html, baseURL string) ([]Review, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.NewParseError("could not parse reviews page", err)
	}

	reviews := []Review{}

	doc.Find("li.film-detail").Each(func(_ int, block *goquery.Selection) {
		content := block.Find("div.film-detail-content").First()
		if content.Length() == 0 {
			return
		}

		avatar := block.Find("a.avatar").First()

		text, spoilers := extractSpoilerText(content.Find("div.body-text").First())

		reviews = append(reviews, Review{
			User:             extractUser(avatar),
			UserImage:        extractUserImage(avatar, baseURL),
			ReviewDate:       extractReviewDate(content.Find("div.attribution-block").First()),
			ReviewText:       text,
			Rating:           extractRating(content.Find("div.attribution-block").First()),
			LikesCount:       extractLikesCount(content),
			ContainsSpoilers: spoilers,
		})
	})

	return reviews, nil
}

func extractUser(avatar *goquery.Selection) string {
	href, ok := avatar.Attr("href")
	if !ok {
		return ""
	}
	return strings.Trim(href, "/")
}

// extractUserImage returns the absolute URL of the reviewer's avatar.
// Root-relative image paths are resolved against the site base URL.
func extractUserImage(avatar *goquery.Selection, baseURL string) string {
	src, ok := avatar.Find("img").First().Attr("src")
	if !ok {
		return ""
	}
	if strings.HasPrefix(src, "/") {
		return strings.TrimRight(baseURL, "/") + src
	}
	return src
}

// extractRating reads the star rating from the attribution block.
// The rated-N class token is authoritative (N half-stars); counting the
// star glyphs is the fallback for markup without it. An empty string means
// the reviewer left no rating, which is not the same as rating "0.0".
func extractRating(attribution *goquery.Selection) string {
	span := attribution.Find("span.rating").First()
	if span.Length() == 0 {
		return ""
	}

	if class, ok := span.Attr("class"); ok {
		for _, token := range strings.Fields(class) {
			if n, found := strings.CutPrefix(token, "rated-"); found {
				if halfStars, err := strconv.Atoi(n); err == nil {
					return fmt.Sprintf("%.1f", float64(halfStars)/2)
				}
			}
		}
	}

	stars := strings.TrimSpace(span.Text())
	if stars == "" {
		return ""
	}

	rating := float64(strings.Count(stars, "★"))
	if strings.Contains(stars, "½") {
		rating += 0.5
	}
	return fmt.Sprintf("%.1f", rating)
}

// extractReviewDate prefers the machine-readable time element and falls
// back to whatever the date span shows.
func extractReviewDate(attribution *goquery.Selection) string {
	span := attribution.Find("span._nobr").First()
	if span.Length() == 0 {
		return ""
	}

	if datetime, ok := span.Find("time").First().Attr("datetime"); ok {
		normalized := strings.ReplaceAll(datetime, "Z", "+00:00")
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, normalized); err == nil {
				return t.Format("02 Jan 2006")
			}
		}
	}

	return strings.TrimSpace(span.Text())
}

func extractLikesCount(content *goquery.Selection) *int {
	count, ok := content.Find("p.like-link-target").First().Attr("data-count")
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return nil
	}
	return &n
}

// extractSpoilerText returns the review body and whether it is gated
// behind a spoiler warning. Flagged reviews take their text exclusively
// from the hidden-spoilers container so the warning boilerplate never
// leaks into the record.
func extractSpoilerText(body *goquery.Selection) (string, bool) {
	if body.Length() == 0 {
		return "", false
	}

	spoilers := body.Find("p.contains-spoilers").Length() > 0

	var paragraphs *goquery.Selection
	if spoilers {
		paragraphs = body.Find("div.hidden-spoilers p")
	} else {
		paragraphs = body.Find("p")
	}

	parts := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		parts = append(parts, p.Text())
	})

	return cleanReviewText(strings.Join(parts, " ")), spoilers
}

// cleanReviewText collapses whitespace runs to single spaces, then turns
// any literal <br> markup that survived text extraction into newlines.
func cleanReviewText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return strings.ReplaceAll(text, "<br>", "\n")
}
