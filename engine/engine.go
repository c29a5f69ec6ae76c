// Package engine selects and drives the two regex backends used by rematch.
//
// Two interchangeable engines exist:
//   - Simple: the coregex linear-time engine (NFA/lazy DFA). Guaranteed
//     O(m*n) execution, no support for backreferences or lookaround.
//   - Backtracking: the regexp2 engine. Full backreference and lookaround
//     support, no worst-case time bound unless a match timeout is set.
//
// Build chooses an engine automatically: a single-pass classifier sniffs the
// pattern for constructs only the backtracking engine can express, and a
// failed Simple compile falls back to Backtracking. BuildWithKind compiles
// with exactly the requested engine.
//
// Engines are immutable once built and safe for concurrent use.
package engine

// Span identifies a substring of the subject text by byte offsets.
// The substring is text[Start:End]. An unmatched capture group is
// reported as Span{-1, -1}.
type Span struct {
	Start int
	End   int
}

// Matched reports whether the span refers to actual matched text, as
// opposed to the unmatched-group placeholder.
func (s Span) Matched() bool {
	return s.Start >= 0
}

// Kind identifies which backend an engine is built on.
type Kind uint8

const (
	// Simple is the linear-time engine. No backreferences or lookaround.
	Simple Kind = iota

	// Backtracking is the full-featured engine. Supports backreferences
	// and lookaround at the cost of unbounded worst-case time.
	Backtracking
)

// String returns a human-readable engine name.
func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Backtracking:
		return "backtracking"
	}
	return "unknown"
}

// Engine is the common execution surface of the two backends.
//
// All offsets reported through this interface are byte offsets into the
// subject text, and every offset coincides with a boundary reported by the
// backend itself; callers never need to adjust them and can slice the
// subject directly without risk of splitting a multi-byte character.
//
// The error return carries per-call execution failures of the backtracking
// engine (match timeout, internal error). The simple engine never fails at
// match time and always returns a nil error.
type Engine interface {
	// Kind identifies the backend this engine is built on.
	Kind() Kind

	// IsMatch reports whether the pattern matches anywhere in text.
	IsMatch(text string) (bool, error)

	// Find returns the span of the leftmost match, or nil if there is none.
	Find(text string) (*Span, error)

	// Captures returns the spans of the leftmost match and all capture
	// groups. Index 0 is the entire match. Unmatched groups are {-1, -1}.
	// A nil slice with a nil error means no match.
	Captures(text string) ([]Span, error)

	// FindAll returns the spans of all successive non-overlapping matches.
	// If n > 0, at most n matches are returned.
	FindAll(text string, n int) ([]Span, error)

	// Replace returns text with every match replaced by repl. The
	// replacement template syntax is backend-native and passed through
	// unmodified.
	Replace(text, repl string) (string, error)

	// SubexpNames returns capture group names in group-number order.
	// Index 0 is always "". Unnamed groups are "". The slice is shared
	// and must not be modified.
	SubexpNames() []string
}
