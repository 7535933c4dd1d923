// Package frontmatter parses markdown notes with YAML frontmatter.
package frontmatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParsedNote represents a parsed markdown note with YAML frontmatter.
type ParsedNote struct {
	// Frontmatter is the raw YAML frontmatter as a map
	Frontmatter map[string]any
	// Body is the content after the frontmatter
	Body string
}

// ParseMarkdown parses markdown content with YAML frontmatter.
// Returns the parsed frontmatter and body, or an error if the format is invalid.
func ParseMarkdown(content []byte) (*ParsedNote, error) {
	trimmed := bytes.TrimSpace(content)
	if !bytes.HasPrefix(trimmed, []byte("---")) {
		return nil, fmt.Errorf("invalid markdown format: missing opening frontmatter delimiter")
	}

	parts := bytes.SplitN(trimmed, []byte("---"), 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid markdown format: missing closing frontmatter delimiter")
	}

	var fm map[string]any
	if err := yaml.Unmarshal(parts[1], &fm); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	return &ParsedNote{
		Frontmatter: fm,
		Body:        strings.TrimSpace(string(parts[2])),
	}, nil
}

// GetInt retrieves an integer value from frontmatter by key.
// Returns 0 if the key doesn't exist or the value is not convertible to int.
func (p *ParsedNote) GetInt(key string) int {
	switch v := p.Frontmatter[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

// GetString retrieves a string value from frontmatter by key.
// Returns empty string if the key doesn't exist or the value is not a string.
func (p *ParsedNote) GetString(key string) string {
	if s, ok := p.Frontmatter[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// GetStringSlice retrieves a list of strings from frontmatter by key.
// Non-string entries are skipped.
func (p *ParsedNote) GetStringSlice(key string) []string {
	raw, ok := p.Frontmatter[key].([]any)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
