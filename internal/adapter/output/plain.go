package output

import (
	"fmt"
	"io"

	"pitui/internal/model"
)

// PlainFormatter writes bare values, one per line.
type PlainFormatter struct{}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// Format writes results as plain text.
func (f *PlainFormatter) Format(w io.Writer, results []model.Result) error {
	for _, r := range results {
		if err := f.FormatSingle(w, &r); err != nil {
			return err
		}
	}
	return nil
}

// FormatSingle writes one bare value.
func (f *PlainFormatter) FormatSingle(w io.Writer, r *model.Result) error {
	_, err := fmt.Fprintln(w, r.Value)
	return err
}
