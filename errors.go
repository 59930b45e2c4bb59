package djazzle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soccer99/djazzle/internal/render"
	"github.com/soccer99/djazzle/internal/types"
)

// ErrClientClosed is returned by Defer after Close.
var ErrClientClosed = errors.New("client is closed")

// The error taxonomy. Every error is raised synchronously at the
// offending call or at the execution trigger; nothing is downgraded to
// a partial result, and compilation is all-or-nothing.
type (
	// InconsistentColumnsError reports a bulk-insert row whose column
	// set differs from row 0.
	InconsistentColumnsError = types.InconsistentColumnsError
	// UnsupportedFeatureError reports a clause the dialect lacks,
	// detected before any SQL text is rendered.
	UnsupportedFeatureError = render.UnsupportedFeatureError
)

// ConstructionError indicates a builder call that is invalid for the
// statement kind, detected immediately; it never reaches compilation.
type ConstructionError struct {
	Op     string // builder method, e.g. "Returning"
	Reason string
}

func (e ConstructionError) Error() string {
	return fmt.Sprintf("%s(): %s", e.Op, e.Reason)
}

// UnknownColumnError indicates a reference to a column (or table) the
// bound schema does not declare.
type UnknownColumnError struct {
	Table  string
	Column string
}

func (e UnknownColumnError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("table %q not found in schema", e.Table)
	}
	return fmt.Sprintf("column %q not found in table %q", e.Column, e.Table)
}

// TypeMismatchError indicates an insert/update value whose literal kind
// is outside the column's accepted type set. Row is the zero-based row
// index for bulk inserts and -1 otherwise.
type TypeMismatchError struct {
	Column   string
	Expected []string
	Actual   string
	Row      int
}

func (e TypeMismatchError) Error() string {
	msg := fmt.Sprintf("column %q: expected %s, got %s",
		e.Column, strings.Join(e.Expected, " or "), e.Actual)
	if e.Row >= 0 {
		msg += fmt.Sprintf(" (row %d)", e.Row)
	}
	return msg
}

// ConventionMismatchError indicates the blocking convention was invoked
// against a non-blocking collaborator, or vice versa. No database
// operation is performed.
type ConventionMismatchError struct {
	Want ConnKind
	Got  ConnKind
}

func (e ConventionMismatchError) Error() string {
	return fmt.Sprintf("calling convention requires a %s connection, got %s", e.Want, e.Got)
}

// DuplicateColumnError indicates an unqualified result column collision
// surfaced by strict materialization.
type DuplicateColumnError struct {
	Column string
}

func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("result column %q appears more than once; qualify the projection or accept last-wins mapping", e.Column)
}
