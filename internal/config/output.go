package config

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsidebars/internal/foundation/normalization"
)

// OutputFormat selects how generated sidebars are encoded.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	FormatTS   OutputFormat = "ts"
)

var outputFormats = normalization.New("output.format", map[string]OutputFormat{
	"json":       FormatJSON,
	"yaml":       FormatYAML,
	"yml":        FormatYAML,
	"ts":         FormatTS,
	"typescript": FormatTS,
}, FormatJSON)

// ParseOutputFormat parses a user supplied format, e.g. from a CLI flag.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormats.Parse(raw)
}

// OutputFormats lists accepted format names.
func OutputFormats() []string { return outputFormats.ValidKeys() }

func (f OutputFormat) orDefault() OutputFormat {
	if f == "" {
		return FormatJSON
	}
	return f
}

func formatFromPath(path string) OutputFormat {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return FormatJSON
	}
	return outputFormats.Normalize(ext)
}
