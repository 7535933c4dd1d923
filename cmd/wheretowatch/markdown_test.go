package wheretowatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertdiaaz/letterfin/internal/frontmatter"
	"github.com/albertdiaaz/letterfin/internal/testutil"
)

func sampleAvailability() MovieAvailability {
	price := 3.99
	return MovieAvailability{
		ImdbID:   "tt1375666",
		FilmPath: "/film/inception",
		FilmSlug: "inception",
		FilmID:   24064,
		Country:  "USA",
		Services: map[string][]StreamingService{
			"stream": {
				{Name: "Netflix", Format: "4K", Type: "subscription"},
			},
			"rent": {
				{Name: "Apple TV", Format: "HD", Price: &price, Currency: "USD"},
			},
		},
	}
}

func TestWriteServicesToMarkdown(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)

	prevOverwrite := overwrite
	overwrite = true
	t.Cleanup(func() { overwrite = prevOverwrite })

	require.NoError(t, writeServicesToMarkdown(sampleAvailability(), env.RootDir()))

	content := env.ReadFile("inception - availability.md")

	note, err := frontmatter.ParseMarkdown(content)
	require.NoError(t, err)

	assert.Equal(t, "inception", note.GetString("title"))
	assert.Equal(t, "availability", note.GetString("type"))
	assert.Equal(t, "tt1375666", note.GetString("imdb_id"))
	assert.Equal(t, 24064, note.GetInt("letterboxd_id"))
	assert.Equal(t, "USA", note.GetString("country"))

	assert.Contains(t, note.Body, "## Available on streaming platforms")
	assert.Contains(t, note.Body, "| Netflix | 4K |")
	assert.Contains(t, note.Body, "## Available for rent")
	assert.Contains(t, note.Body, "| Apple TV | HD | 3.99 USD |")
	// No buy category in the sample, so no purchase section
	assert.NotContains(t, note.Body, "Available for purchase")
}

func TestWriteServicesToMarkdown_EmptyAvailability(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)

	prevOverwrite := overwrite
	overwrite = true
	t.Cleanup(func() { overwrite = prevOverwrite })

	movie := sampleAvailability()
	movie.Services = map[string][]StreamingService{}

	require.NoError(t, writeServicesToMarkdown(movie, env.RootDir()))

	content := env.ReadFileString("inception - availability.md")
	assert.Contains(t, content, "No streaming services found for USA.")
}

func TestWriteServicesToMarkdown_Golden(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)

	prevOverwrite := overwrite
	overwrite = true
	t.Cleanup(func() { overwrite = prevOverwrite })

	require.NoError(t, writeServicesToMarkdown(sampleAvailability(), env.RootDir()))

	golden := testutil.NewGoldenHelper(t)
	golden.AssertGoldenString("availability.md", env.ReadFileString("inception - availability.md"))
}

func TestWriteServicesToMarkdown_RespectsOverwritePolicy(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)

	env.WriteFileString("inception - availability.md", "existing content")

	prevOverwrite := overwrite
	overwrite = false
	t.Cleanup(func() { overwrite = prevOverwrite })

	require.NoError(t, writeServicesToMarkdown(sampleAvailability(), env.RootDir()))
	assert.Equal(t, "existing content", env.ReadFileString("inception - availability.md"))
}
