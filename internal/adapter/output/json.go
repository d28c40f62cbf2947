package output

import (
	"encoding/json"
	"io"

	"pitui/internal/model"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes results as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, results []model.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// FormatSingle writes a single result as JSON.
func (f *JSONFormatter) FormatSingle(w io.Writer, r *model.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
