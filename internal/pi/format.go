// Package pi provides validation and fixed-point formatting of π.
//
// The value formatted is math.Pi, the float64 nearest the mathematical
// constant. Its exact decimal expansion has 48 fractional digits; requesting
// more yields zero padding rather than further true digits of π. That
// matches the reference behavior and is intentional.
package pi

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"pitui/internal/model"
)

// MaxDigits is the largest accepted fractional digit count.
const MaxDigits = 100

// User-facing messages, surfaced verbatim in the UI and CLI.
const (
	MsgEmptyInput    = "Please enter a number."
	MsgInvalidDigits = "Please enter a whole number between 0 and 100."
)

// Validation errors.
var (
	ErrEmptyInput    = errors.New("input is empty")
	ErrInvalidDigits = errors.New("input must be a whole number between 0 and 100")
)

// ParseDigits validates raw user input and returns the digit count.
// Input is trimmed first: whitespace-only input counts as empty. The rest
// parses as a number and is then checked for integrality and range, so
// integer-valued numerics like "5.0" and "1e2" are accepted while "5.5"
// and anything non-numeric or outside [0, MaxDigits] is rejected.
func ParseDigits(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrEmptyInput
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, ErrInvalidDigits
	}
	// NaN fails the integrality check, infinities fail the range check
	if f != math.Trunc(f) || f < 0 || f > MaxDigits {
		return 0, ErrInvalidDigits
	}

	return int(f), nil
}

// Format renders π with exactly n fractional digits using fixed-point
// rounding. Format(0) returns "3".
func Format(n int) string {
	return strconv.FormatFloat(math.Pi, 'f', n, 64)
}

// Evaluate runs the full submission pipeline: validate raw input, format π,
// and wrap the outcome in a Result.
func Evaluate(raw string) (model.Result, error) {
	n, err := ParseDigits(raw)
	if err != nil {
		return model.Result{}, err
	}
	return model.NewResult(n, Format(n))
}

// Message maps a validation error to its user-facing text.
// Unknown errors fall back to the invalid-digits message.
func Message(err error) string {
	if errors.Is(err, ErrEmptyInput) {
		return MsgEmptyInput
	}
	return MsgInvalidDigits
}
