package fileutil

import (
	"fmt"
	"strings"
)

// MarkdownBuilder helps construct markdown notes with YAML frontmatter
type MarkdownBuilder struct {
	frontmatter    strings.Builder
	content        strings.Builder
	hasFrontmatter bool
}

// NewMarkdownBuilder creates a new markdown builder
func NewMarkdownBuilder() *MarkdownBuilder {
	mb := &MarkdownBuilder{}
	mb.frontmatter.WriteString("---\n")
	mb.hasFrontmatter = true
	return mb
}

// AddTitle adds a title field to the frontmatter
func (mb *MarkdownBuilder) AddTitle(title string) *MarkdownBuilder {
	fmt.Fprintf(&mb.frontmatter, "title: \"%s\"\n", title)
	return mb
}

// AddType adds a type field to the frontmatter
func (mb *MarkdownBuilder) AddType(noteType string) *MarkdownBuilder {
	fmt.Fprintf(&mb.frontmatter, "type: %s\n", noteType)
	return mb
}

// AddField adds a simple key-value field to the frontmatter.
// Zero values are omitted so notes stay free of empty keys.
func (mb *MarkdownBuilder) AddField(key string, value interface{}) *MarkdownBuilder {
	switch v := value.(type) {
	case string:
		if v != "" {
			fmt.Fprintf(&mb.frontmatter, "%s: \"%s\"\n", key, v)
		}
	case int:
		if v != 0 {
			fmt.Fprintf(&mb.frontmatter, "%s: %d\n", key, v)
		}
	case float64:
		if v > 0 {
			fmt.Fprintf(&mb.frontmatter, "%s: %.2f\n", key, v)
		}
	case bool:
		fmt.Fprintf(&mb.frontmatter, "%s: %t\n", key, v)
	}
	return mb
}

// AddStringArray adds an array of strings to the frontmatter
func (mb *MarkdownBuilder) AddStringArray(key string, values []string) *MarkdownBuilder {
	if len(values) == 0 {
		return mb
	}

	mb.frontmatter.WriteString(key + ":\n")
	for _, value := range values {
		if value != "" {
			fmt.Fprintf(&mb.frontmatter, "  - \"%s\"\n", strings.TrimSpace(value))
		}
	}
	return mb
}

// AddTags adds a list of tags to the frontmatter
func (mb *MarkdownBuilder) AddTags(tags ...string) *MarkdownBuilder {
	if len(tags) == 0 {
		return mb
	}

	mb.frontmatter.WriteString("tags:\n")
	for _, tag := range tags {
		if tag != "" {
			fmt.Fprintf(&mb.frontmatter, "  - %s\n", tag)
		}
	}
	return mb
}

// AddHeading adds a section heading to the content
func (mb *MarkdownBuilder) AddHeading(level int, text string) *MarkdownBuilder {
	if text == "" {
		return mb
	}

	fmt.Fprintf(&mb.content, "%s %s\n\n", strings.Repeat("#", level), text)
	return mb
}

// AddParagraph adds a paragraph of text to the content
func (mb *MarkdownBuilder) AddParagraph(text string) *MarkdownBuilder {
	if text == "" {
		return mb
	}

	mb.content.WriteString(text)
	mb.content.WriteString("\n\n")
	return mb
}

// AddImage adds an image to the content
func (mb *MarkdownBuilder) AddImage(imageURL string) *MarkdownBuilder {
	if imageURL == "" {
		return mb
	}

	fmt.Fprintf(&mb.content, "![](%s)\n\n", imageURL)
	return mb
}

// AddExternalLink adds an external link to the content
func (mb *MarkdownBuilder) AddExternalLink(title, url string) *MarkdownBuilder {
	if url == "" {
		return mb
	}

	fmt.Fprintf(&mb.content, "[%s](%s)\n\n", title, url)
	return mb
}

// AddTableHeader starts a markdown table with the given column names
func (mb *MarkdownBuilder) AddTableHeader(columns ...string) *MarkdownBuilder {
	if len(columns) == 0 {
		return mb
	}

	mb.content.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	separators := make([]string, len(columns))
	for i := range separators {
		separators[i] = "---"
	}
	mb.content.WriteString("| " + strings.Join(separators, " | ") + " |\n")
	return mb
}

// AddTableRow adds a row to the current markdown table
func (mb *MarkdownBuilder) AddTableRow(cells ...string) *MarkdownBuilder {
	if len(cells) == 0 {
		return mb
	}

	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = strings.ReplaceAll(cell, "|", "\\|")
	}
	mb.content.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
	return mb
}

// EndTable terminates a markdown table with a blank line
func (mb *MarkdownBuilder) EndTable() *MarkdownBuilder {
	mb.content.WriteString("\n")
	return mb
}

// Build returns the complete markdown document as a string
func (mb *MarkdownBuilder) Build() string {
	if !mb.hasFrontmatter {
		return mb.content.String()
	}

	var doc strings.Builder
	doc.WriteString(mb.frontmatter.String())
	doc.WriteString("---\n\n")
	doc.WriteString(mb.content.String())

	return doc.String()
}
