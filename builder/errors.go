// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// errors.go - sentinel errors and the ParseError type.
//
// Error policy:
//   • Sentinels are package-level and never carry formatted parameters.
//   • Context is attached with %w so callers branch with errors.Is.
//   • Parse failures are always *ParseError, which unwraps to ErrParse and
//     to the specific cause (ErrMalformedLine, ErrBadRate, ...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter is below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrParse is the umbrella sentinel carried by every *ParseError.
var ErrParse = errors.New("builder: parse error")

// ErrMalformedLine indicates a line that does not follow the node description grammar.
var ErrMalformedLine = errors.New("builder: malformed line")

// ErrBadRate indicates a reward rate that is not a non-negative integer.
var ErrBadRate = errors.New("builder: rate is not a non-negative integer")

// ErrDuplicateNode indicates the same node was described twice.
var ErrDuplicateNode = errors.New("builder: duplicate node")

// ParseError reports a malformed graph description.
//
// Line is 1-based; zero means the failure concerns the description as a
// whole (dangling references and a missing start node are only detectable
// once every line was read).
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", ErrParse.Error(), e.Err)
	}
	return fmt.Sprintf("%s: line %d %q: %v", ErrParse.Error(), e.Line, e.Text, e.Err)
}

// Unwrap exposes both ErrParse and the specific cause to errors.Is.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

func parseErrorf(line int, text string, kind error, format string, args ...any) error {
	return &ParseError{Line: line, Text: text, Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))}
}
