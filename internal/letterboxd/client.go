// Package letterboxd fetches raw review markup and availability payloads
// from the Letterboxd site. It is a plain request/response collaborator:
// no retries, no caching, no rate limiting. Resolution is an explicit
// two-step pipeline (ResolveFilmPath then the fetchers); callers memoize
// the resolved path if they need it more than once.
package letterboxd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/albertdiaaz/letterfin/internal/errors"
)

// DefaultBaseURL is the production Letterboxd site.
const DefaultBaseURL = "https://letterboxd.com"

// Client issues the HTTP requests against a Letterboxd instance.
type Client struct {
	baseURL string

	// httpClient follows redirects normally; redirectClient stops at the
	// first response so the 302 Location of the IMDB lookup can be read.
	httpClient     *http.Client
	redirectClient *http.Client
}

// NewClient creates a client for the given base URL.
// An empty baseURL selects the production site.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		redirectClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// BaseURL returns the base URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveFilmPath resolves an IMDB ID to the site-internal film path.
// Letterboxd answers /imdb/<id>/ with a 302 redirect whose Location header
// is the film page path (e.g. "/film/inception/").
func (c *Client) ResolveFilmPath(imdbID string) (string, error) {
	if strings.TrimSpace(imdbID) == "" {
		return "", fmt.Errorf("imdb ID is required")
	}

	lookupURL := fmt.Sprintf("%s/imdb/%s/", c.baseURL, url.PathEscape(imdbID))
	resp, err := c.redirectClient.Get(lookupURL)
	if err != nil {
		return "", fmt.Errorf("failed to resolve IMDB ID %s: %w", imdbID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return "", errors.NewLookupError(resp.StatusCode, fmt.Sprintf("expected 302 redirect for IMDB ID %s", imdbID))
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", errors.NewLookupError(0, "Location header not found in response")
	}

	return strings.TrimRight(location, "/"), nil
}

// ReviewsHTML fetches the HTML of the film's reviews page, ordered by activity.
func (c *Client) ReviewsHTML(filmPath string) (string, error) {
	reviewsURL := c.resolve(strings.TrimRight(filmPath, "/") + "/reviews/by/activity/")
	return c.getText(reviewsURL)
}

// FilmID fetches Letterboxd's internal numeric ID for a film.
func (c *Client) FilmID(filmPath string) (int, error) {
	jsonURL := c.resolve(strings.TrimRight(filmPath, "/") + "/json/")

	body, err := c.getText(jsonURL)
	if err != nil {
		return 0, err
	}

	var payload struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return 0, fmt.Errorf("could not extract Letterboxd ID: %w", err)
	}
	if payload.ID == 0 {
		return 0, fmt.Errorf("could not extract Letterboxd ID: no id field in response")
	}

	return payload.ID, nil
}

// AvailabilityJSON fetches the streaming availability payload for a film.
// country is an ISO 3166-1 alpha-3 code.
func (c *Client) AvailabilityJSON(filmID int, country string) (string, error) {
	params := url.Values{}
	params.Add("filmId", fmt.Sprintf("%d", filmID))
	params.Add("locale", country)

	return c.getText(c.baseURL + "/s/film-availability?" + params.Encode())
}

// resolve turns a site path into an absolute URL; absolute URLs pass through.
func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) getText(fullURL string) (string, error) {
	resp, err := c.httpClient.Get(fullURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", fullURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("letterboxd returned status code %d for %s. Response: %s", resp.StatusCode, fullURL, string(body))
	}

	return string(body), nil
}
