package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"pitui/internal/model"
)

// YAMLFormatter formats results as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes results as a YAML sequence.
func (f *YAMLFormatter) Format(w io.Writer, results []model.Result) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// FormatSingle writes one result as a YAML mapping.
func (f *YAMLFormatter) FormatSingle(w io.Writer, r *model.Result) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
