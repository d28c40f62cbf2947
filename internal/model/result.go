// Package model defines the core data structures for pitui.
package model

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// Result represents one successful precision lookup: π formatted to a
// requested number of fractional digits. Results live only in the session
// history; they are never written to disk.
type Result struct {
	ID        string `json:"id" yaml:"id"`
	Digits    int    `json:"digits" yaml:"digits"`
	Value     string `json:"value" yaml:"value"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
}

// NewResult creates a Result with a generated ULID and the current time.
func NewResult(digits int, value string) (Result, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return Result{
		ID:        id.String(),
		Digits:    digits,
		Value:     value,
		Timestamp: time.Now().Unix(),
	}, nil
}

// Caption returns a human-readable description of the precision.
// Examples: "π to 0 decimal places", "π to the 5th decimal place".
func (r Result) Caption() string {
	if r.Digits == 0 {
		return "π to 0 decimal places"
	}
	return fmt.Sprintf("π to the %s decimal place", humanize.Ordinal(r.Digits))
}

// RelativeTime returns a human-readable relative time string.
// Examples: "now", "5 minutes ago", "2 hours ago".
func (r Result) RelativeTime() string {
	return humanize.Time(time.Unix(r.Timestamp, 0))
}
