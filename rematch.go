// Package rematch is a dual-engine regex compilation front end.
//
// rematch pairs two matching backends behind one API:
//   - a linear-time engine (coregex) for patterns it can express
//   - a backtracking engine (regexp2) for backreferences and lookaround
//
// A single-pass classifier routes each pattern to the right engine, and
// compiled patterns are cached in a concurrent registry keyed by pattern
// text and compile options, so repeated convenience calls never recompile.
//
// Basic usage:
//
//	// Compile once, use everywhere
//	p, err := rematch.Compile(`(?<year>\d{4})-(?<month>\d{2})`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, _ := p.Search("released 2024-06")
//	year, _ := m.GroupByName("year") // "2024"
//
//	// Or go through the package-level convenience API
//	ok, _ := rematch.IsSearch(`\d+`, "hello 123") // true
//
// Match vs. search:
//
// Search finds the pattern anywhere in the text; Match requires it to
// start at offset 0. The anchored form is served by a second automaton
// derived once per pattern, so neither semantics pays for the other:
//
//	p, _ := rematch.Compile(`a+`)
//	p.IsSearch("baa") // true
//	p.IsMatch("baa")  // false
//
// Backreferences and lookaround route to the backtracking engine
// transparently:
//
//	p, _ := rematch.Compile(`(\w+) \1`)
//	p.Kind() // rematch.Backtracking
//
// All exported types are immutable after construction and safe for
// concurrent use.
package rematch

import (
	"github.com/coregx/rematch/engine"
)

// Config holds compile options. See the engine package for field
// documentation. The zero value is the default configuration.
type Config = engine.Config

// Span identifies a substring of the subject text by byte offsets.
type Span = engine.Span

// Backend identifies one of the two matching engines.
type Backend = engine.Kind

// The two available backends.
const (
	Simple       = engine.Simple
	Backtracking = engine.Backtracking
)

// Compile compiles a pattern through the default registry, selecting the
// engine automatically. An optional Config may be supplied; at most the
// first one is used. The returned handle is shared: concurrent and
// repeated calls with the same pattern and config yield the same *Pattern.
func Compile(pattern string, config ...Config) (*Pattern, error) {
	return defaultRegistry.Compile(pattern, config...)
}

// MustCompile is like Compile but panics if the pattern cannot be
// compiled. It simplifies safe initialization of global variables.
func MustCompile(pattern string, config ...Config) *Pattern {
	p, err := Compile(pattern, config...)
	if err != nil {
		panic("rematch: Compile(`" + pattern + "`): " + err.Error())
	}
	return p
}

// CompileWithBackend compiles a pattern with exactly the requested
// backend, bypassing the classifier. Patterns or options the backend does
// not support fail with a *engine.CompileError.
func CompileWithBackend(pattern string, kind Backend, config ...Config) (*Pattern, error) {
	return defaultRegistry.CompileWithBackend(pattern, kind, config...)
}

// IsMatch reports whether the pattern matches text starting at offset 0,
// compiling and caching the pattern as needed.
func IsMatch(pattern, text string, config ...Config) (bool, error) {
	return defaultRegistry.IsMatch(pattern, text, config...)
}

// IsSearch reports whether the pattern occurs anywhere in text, compiling
// and caching the pattern as needed.
func IsSearch(pattern, text string, config ...Config) (bool, error) {
	return defaultRegistry.IsSearch(pattern, text, config...)
}

// Search returns capture spans for the leftmost occurrence of the pattern
// in text, or nil if there is none. The pattern is compiled and cached as
// needed. For the anchored equivalent use DefaultRegistry().Match or
// Pattern.Match.
func Search(pattern, text string, config ...Config) (*Match, error) {
	return defaultRegistry.Search(pattern, text, config...)
}

// Find returns the span of the leftmost match of the pattern in text, or
// nil if there is none.
func Find(pattern, text string, config ...Config) (*Span, error) {
	return defaultRegistry.Find(pattern, text, config...)
}

// FindAll returns all non-overlapping matched substrings, leftmost to
// rightmost. If n > 0, at most n matches are returned.
func FindAll(pattern, text string, n int, config ...Config) ([]string, error) {
	return defaultRegistry.FindAll(pattern, text, n, config...)
}

// Sub returns text with every match of the pattern replaced by repl.
// The replacement template syntax is backend-native and passed through
// unmodified.
func Sub(pattern, text, repl string, config ...Config) (string, error) {
	return defaultRegistry.Sub(pattern, text, repl, config...)
}
