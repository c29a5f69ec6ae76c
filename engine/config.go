package engine

import "time"

// Config holds compile options. Each field maps onto a native option of
// one or both backends; fields a backend has no knob for are ignored by
// that backend.
//
// Config is a comparable value and participates in the pattern cache key
// when non-default, so it must never carry pointers or slices.
type Config struct {
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive bool

	// IgnoreWhitespace enables free-spacing pattern syntax, where
	// unescaped whitespace in the pattern is ignored and # starts a
	// comment. Only the backtracking engine supports this; the simple
	// engine rejects it with ErrUnsupportedConfig.
	IgnoreWhitespace bool

	// Multiline makes ^ and $ match at line boundaries.
	Multiline bool

	// UnicodeMode makes the character classes of the backtracking engine
	// (\d, \w, \s) Unicode-aware. The simple engine is UTF-8 native and
	// keeps its usual semantics regardless.
	UnicodeMode bool

	// SizeLimit caps the compiled program size of the simple engine,
	// measured in program instructions. Zero means no limit. The
	// backtracking engine has no equivalent knob and ignores it.
	SizeLimit int

	// DFASizeLimit caps the number of states the simple engine's lazy DFA
	// may cache. Zero keeps the backend default. Ignored by the
	// backtracking engine.
	DFASizeLimit int

	// BacktrackLimit caps the execution time of a single call on the
	// backtracking engine; an exceeded limit aborts the call with an
	// ExecError. Zero means no limit. Ignored by the simple engine,
	// whose execution time is linear by construction.
	BacktrackLimit time.Duration
}

// flagPrefix renders the flags the simple engine understands as an inline
// flag group, to be prepended to the pattern.
func (c Config) flagPrefix() string {
	if !c.CaseInsensitive && !c.Multiline {
		return ""
	}
	flags := []byte{'(', '?'}
	if c.CaseInsensitive {
		flags = append(flags, 'i')
	}
	if c.Multiline {
		flags = append(flags, 'm')
	}
	return string(append(flags, ')'))
}
