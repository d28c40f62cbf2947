package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pitui/internal/model"
)

func testResults() []model.Result {
	now := time.Now()
	return []model.Result{
		{
			ID:        "01JABCDEF0000000000000001",
			Digits:    5,
			Value:     "3.14159",
			Timestamp: now.Add(-5 * time.Minute).Unix(),
		},
		{
			ID:        "01JABCDEF0000000000000002",
			Digits:    0,
			Value:     "3",
			Timestamp: now.Add(-2 * time.Hour).Unix(),
		},
	}
}

func TestPlainFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewPlainFormatter()
	err := formatter.Format(&buf, testResults())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "3.14159", lines[0])
	assert.Equal(t, "3", lines[1])
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewJSONFormatter()
	err := formatter.Format(&buf, testResults())
	require.NoError(t, err)

	var decoded []model.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 5, decoded[0].Digits)
	assert.Equal(t, "3.14159", decoded[0].Value)
}

func TestPlainFormatter_FormatSingle(t *testing.T) {
	var buf bytes.Buffer
	results := testResults()

	formatter := NewPlainFormatter()
	err := formatter.FormatSingle(&buf, &results[0])
	require.NoError(t, err)

	assert.Equal(t, "3.14159\n", buf.String())
}

func TestYAMLFormatter_FormatSingle(t *testing.T) {
	var buf bytes.Buffer
	results := testResults()

	formatter := NewYAMLFormatter()
	err := formatter.FormatSingle(&buf, &results[0])
	require.NoError(t, err)

	// A single result is a mapping, not a one-element sequence
	var decoded model.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "3.14159", decoded.Value)
}

func TestJSONFormatter_FormatSingle(t *testing.T) {
	var buf bytes.Buffer
	results := testResults()

	formatter := NewJSONFormatter()
	err := formatter.FormatSingle(&buf, &results[0])
	require.NoError(t, err)

	var decoded model.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "3.14159", decoded.Value)
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	formatter := NewYAMLFormatter()
	err := formatter.Format(&buf, testResults())
	require.NoError(t, err)

	var decoded []model.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "3", decoded[1].Value)
}

func TestFormatType_Valid(t *testing.T) {
	assert.True(t, FormatPlain.Valid())
	assert.True(t, FormatJSON.Valid())
	assert.True(t, FormatYAML.Valid())
	assert.False(t, FormatType("dmenu").Valid())
	assert.False(t, FormatType("").Valid())
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain))
	// Unknown formats fall back to plain
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatType("bogus")))
}
