package fileutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownBuilderFrontmatter(t *testing.T) {
	doc := NewMarkdownBuilder().
		AddTitle("Inception").
		AddType("reviews").
		AddField("imdb_id", "tt1375666").
		AddField("review_count", 3).
		AddStringArray("reviewers", []string{"alice", "bob"}).
		AddTags("letterboxd", "reviews").
		Build()

	assert.True(t, strings.HasPrefix(doc, "---\n"))
	assert.Contains(t, doc, "title: \"Inception\"\n")
	assert.Contains(t, doc, "type: reviews\n")
	assert.Contains(t, doc, "imdb_id: \"tt1375666\"\n")
	assert.Contains(t, doc, "review_count: 3\n")
	assert.Contains(t, doc, "reviewers:\n  - \"alice\"\n  - \"bob\"\n")
	assert.Contains(t, doc, "tags:\n  - letterboxd\n  - reviews\n")
}

func TestMarkdownBuilderOmitsZeroValues(t *testing.T) {
	doc := NewMarkdownBuilder().
		AddField("empty", "").
		AddField("zero", 0).
		AddStringArray("none", nil).
		Build()

	assert.NotContains(t, doc, "empty")
	assert.NotContains(t, doc, "zero")
	assert.NotContains(t, doc, "none")
}

func TestMarkdownBuilderContent(t *testing.T) {
	doc := NewMarkdownBuilder().
		AddHeading(2, "Stream").
		AddParagraph("Available on these services.").
		AddImage("https://example.com/poster.jpg").
		AddExternalLink("Letterboxd", "https://letterboxd.com/film/inception/").
		Build()

	assert.Contains(t, doc, "## Stream\n\n")
	assert.Contains(t, doc, "Available on these services.\n\n")
	assert.Contains(t, doc, "![](https://example.com/poster.jpg)\n\n")
	assert.Contains(t, doc, "[Letterboxd](https://letterboxd.com/film/inception/)\n\n")
}

func TestMarkdownBuilderTable(t *testing.T) {
	doc := NewMarkdownBuilder().
		AddTableHeader("Service", "Price").
		AddTableRow("Netflix", "").
		AddTableRow("Apple|TV", "3.99 USD").
		EndTable().
		Build()

	assert.Contains(t, doc, "| Service | Price |\n| --- | --- |\n")
	assert.Contains(t, doc, "| Netflix |  |\n")
	// Pipes in cell values are escaped so the table stays intact
	assert.Contains(t, doc, "| Apple\\|TV | 3.99 USD |\n")
}
