//go:build integration

package reviews

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/albertdiaaz/letterfin/internal/testutil"
)

const e2eReviewsPage = `<html><body><ul>
<li class="film-detail">
	<a class="avatar" href="/davidehrlich/"><img src="/avatar/abc.jpg"></a>
	<div class="film-detail-content">
		<div class="attribution-block">
			<span class="rating rated-9">★★★★½</span>
			<span class="_nobr"><time datetime="2024-03-15T10:30:00Z">15 Mar 2024</time></span>
		</div>
		<div class="body-text"><p>A heist movie about grief.</p></div>
		<p class="like-link-target" data-count="42"></p>
	</div>
</li>
<li class="film-detail">
	<a class="avatar" href="/spoilery/"></a>
	<div class="film-detail-content">
		<div class="attribution-block"></div>
		<div class="body-text">
			<p class="contains-spoilers">This review may contain spoilers.</p>
			<div class="hidden-spoilers"><p>The top never falls.</p></div>
		</div>
	</div>
</li>
</ul></body></html>`

func TestFetchReviewsE2E(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/imdb/tt1375666/":
			w.Header().Set("Location", "/film/inception/")
			w.WriteHeader(http.StatusFound)
		case "/film/inception/reviews/by/activity/":
			_, _ = w.Write([]byte(e2eReviewsPage))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	testutil.SetViperValue(t, "letterboxd.baseurl", server.URL)
	dbPath := testutil.SetupDatasetteDB(t, env)

	prevImdbID := imdbID
	prevOutputDir := outputDir
	prevOverwrite := overwrite
	prevWriteJSON := writeJSON
	prevJSONOutput := jsonOutput
	prevDownloadAvatars := downloadAvatars
	imdbID = "tt1375666"
	outputDir = env.Path("output")
	overwrite = true
	writeJSON = true
	jsonOutput = env.Path("json", "reviews.json")
	downloadAvatars = false
	t.Cleanup(func() {
		imdbID = prevImdbID
		outputDir = prevOutputDir
		overwrite = prevOverwrite
		writeJSON = prevWriteJSON
		jsonOutput = prevJSONOutput
		downloadAvatars = prevDownloadAvatars
	})

	env.MkdirAll("output")

	require.NoError(t, FetchReviews())

	env.RequireFileExists("output/inception - reviews.md")
	env.RequireFileExists("json/reviews.json")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM reviews").Scan(&count))
	require.Equal(t, 2, count)

	var user, rating string
	var likes sql.NullInt64
	require.NoError(t, db.QueryRow(`
		SELECT user, rating, likes_count
		FROM reviews
		WHERE user = 'davidehrlich'
	`).Scan(&user, &rating, &likes))
	assert.Equal(t, "4.5", rating)
	require.True(t, likes.Valid)
	assert.EqualValues(t, 42, likes.Int64)

	var spoilerText string
	var spoilerFlag int
	require.NoError(t, db.QueryRow(`
		SELECT review_text, contains_spoilers
		FROM reviews
		WHERE user = 'spoilery'
	`).Scan(&spoilerText, &spoilerFlag))
	assert.Equal(t, "The top never falls.", spoilerText)
	assert.Equal(t, 1, spoilerFlag)
}
