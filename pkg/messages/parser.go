package messages

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser turns the content of a messages file into a nested template map.
type Parser interface {
	// Parse processes the given content string and returns a nested map keyed
	// by template key segments.
	Parse(ctx context.Context, content string) (map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the extension is not supported.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
