// Package errors provides error handling for rnokpp.
//
// This package re-exports github.com/cockroachdb/errors so that every
// package wraps, annotates and inspects errors the same way:
//
//	// Wrap with context
//	if err != nil {
//	    return errors.Wrapf(err, "analyze %s", masked)
//	}
//
//	// Add hints for users; the CLI prints them under the error
//	return errors.WithHint(err, "identifiers are exactly 10 digits")
//
//	// Check errors
//	if errors.Is(err, rnokpp.ErrInvalidFormat) {
//	    // handle malformed input
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Mark  = crdb.Mark
)

// User-facing hints and details
var (
	WithHint   = crdb.WithHint
	WithHintf  = crdb.WithHintf
	WithDetail = crdb.WithDetail
)

// Inspection
var (
	Is          = crdb.Is
	GetAllHints = crdb.GetAllHints
)

// ErrInvalidRequest marks input that a caller (CLI flag, tool argument)
// supplied in a form we cannot use. Domain packages mark their own
// sentinels with it so that surfaces can classify failures uniformly.
var ErrInvalidRequest = New("invalid request")

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidRequest)
}

// UserMessage renders an error for terminal output: the message on the
// first line, followed by one "hint:" line per attached hint.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(err.Error())
	for _, hint := range GetAllHints(err) {
		b.WriteString("\n  hint: ")
		b.WriteString(hint)
	}
	return b.String()
}
