package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	r, err := NewResult(5, "3.14159")
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Len(t, r.ID, 26) // ULID string length
	assert.Equal(t, 5, r.Digits)
	assert.Equal(t, "3.14159", r.Value)
	assert.InDelta(t, time.Now().Unix(), r.Timestamp, 2)
}

func TestNewResult_UniqueIDs(t *testing.T) {
	a, err := NewResult(1, "3.1")
	require.NoError(t, err)
	b, err := NewResult(1, "3.1")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestResult_Caption(t *testing.T) {
	tests := []struct {
		digits int
		want   string
	}{
		{0, "π to 0 decimal places"},
		{1, "π to the 1st decimal place"},
		{2, "π to the 2nd decimal place"},
		{3, "π to the 3rd decimal place"},
		{5, "π to the 5th decimal place"},
		{42, "π to the 42nd decimal place"},
		{100, "π to the 100th decimal place"},
	}

	for _, tt := range tests {
		r := Result{Digits: tt.digits}
		assert.Equal(t, tt.want, r.Caption())
	}
}

func TestResult_RelativeTime(t *testing.T) {
	r := Result{Timestamp: time.Now().Add(-2 * time.Hour).Unix()}
	assert.Contains(t, r.RelativeTime(), "2 hours ago")
}
