// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrBoard indicates a storage invariant violation on the board:
	// bad dimensions, an out-of-grid cell or an occupied target cell.
	ErrBoard = errors.New("board error")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPromotion indicates a promotion was requested with nothing pending.
	ErrNoPromotion = errors.New("no piece to be promoted")

	// ErrMatchOver indicates a move was attempted after checkmate.
	ErrMatchOver = errors.New("match is over")

	// ErrInvalidSquare indicates malformed or out-of-range algebraic coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrNoKing indicates a colour has no king on the board.
	ErrNoKing = errors.New("no king on the board")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Kind classifies an error so callers can branch without reading messages.
type Kind int

const (
	KindUnknown    Kind = iota
	KindStructural      // Board storage invariant violated
	KindRule            // Chess rule violated; state unchanged
	KindState           // Operation not valid in the current match state
	KindFormat          // Bad coordinate text or value at the boundary
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindRule:
		return "rule"
	case KindState:
		return "state"
	case KindFormat:
		return "format"
	}
	return "unknown"
}

// KindOf reports the kind of err by inspecting the sentinel it wraps.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrBoard), errors.Is(err, ErrNoKing):
		return KindStructural
	case errors.Is(err, ErrIllegalMove):
		return KindRule
	case errors.Is(err, ErrNoPromotion), errors.Is(err, ErrMatchOver):
		return KindState
	case errors.Is(err, ErrInvalidSquare), errors.Is(err, ErrInvalidConfig):
		return KindFormat
	}
	return KindUnknown
}

// BoardError wraps a storage failure with the cell that caused it.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type BoardError struct {
	Err    error  // The underlying error
	Row    int    // Row of the offending cell (-1 if not applicable)
	Column int    // Column of the offending cell (-1 if not applicable)
	Reason string // Human-readable reason
}

// Error returns a formatted error message including the cell if known.
func (e *BoardError) Error() string {
	var parts []string

	if e.Row >= 0 && e.Column >= 0 {
		parts = append(parts, fmt.Sprintf("cell (%d, %d)", e.Row, e.Column))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	if context == "" {
		return "board error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *BoardError) Unwrap() error {
	return e.Err
}

// MoveError wraps a rejected move with its coordinates and reason.
type MoveError struct {
	Err    error  // The underlying error
	Source string // Source square in algebraic form (if known)
	Target string // Target square in algebraic form (if known)
	Reason string // Human-readable reason
}

// Error returns a formatted error message with move context.
func (e *MoveError) Error() string {
	var parts []string

	switch {
	case e.Source != "" && e.Target != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.Source, e.Target))
	case e.Source != "":
		parts = append(parts, fmt.Sprintf("square %s", e.Source))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
