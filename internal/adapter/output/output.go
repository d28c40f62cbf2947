// Package output provides output formatters for results.
package output

import (
	"io"

	"pitui/internal/model"
)

// Formatter formats results for output.
type Formatter interface {
	// Format writes formatted results to the writer.
	Format(w io.Writer, results []model.Result) error
	// FormatSingle writes one result without collection wrapping.
	FormatSingle(w io.Writer, r *model.Result) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// Valid reports whether the format type is recognized.
func (f FormatType) Valid() bool {
	switch f {
	case FormatPlain, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatYAML:
		return NewYAMLFormatter()
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter()
	}
}
