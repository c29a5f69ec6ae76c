package rematch

import (
	"errors"
	"fmt"

	"github.com/coregx/rematch/engine"
)

// Group access errors
var (
	// ErrGroupNotFound indicates a group index beyond the captured count
	ErrGroupNotFound = errors.New("group not found")

	// ErrUndefinedGroupName indicates a group name the pattern does not
	// declare
	ErrUndefinedGroupName = errors.New("undefined group name")
)

// Match holds the result of a successful match.
//
// Span 0 is the whole match; spans 1..N are the capture groups in group
// number order. A capture group that did not participate in the match has
// the span {-1, -1}, distinct from a group that matched the empty string.
// Spans are byte offsets into the subject text, reported by the backend;
// they are computed once and never recomputed.
//
// A Match is immutable and safe for concurrent use.
type Match struct {
	text  string
	spans []engine.Span
	names map[string]int
}

// Start returns the byte offset where the whole match begins.
func (m *Match) Start() int {
	return m.spans[0].Start
}

// End returns the byte offset just past the whole match.
func (m *Match) End() int {
	return m.spans[0].End
}

// Span returns the span of group i. Group 0 is the whole match. Fails
// with ErrGroupNotFound if i exceeds the captured count.
func (m *Match) Span(i int) (Span, error) {
	if i < 0 || i >= len(m.spans) {
		return Span{}, fmt.Errorf("group %d: %w", i, ErrGroupNotFound)
	}
	return m.spans[i], nil
}

// Group returns the substring captured by group i, or "" if the group did
// not participate in the match. Group 0 is the whole match. Fails with
// ErrGroupNotFound if i exceeds the captured count. Use Matched to
// distinguish an unmatched group from an empty capture.
func (m *Match) Group(i int) (string, error) {
	span, err := m.Span(i)
	if err != nil {
		return "", err
	}
	if !span.Matched() {
		return "", nil
	}
	return m.text[span.Start:span.End], nil
}

// GroupByName returns the substring captured by the named group,
// resolving the name through the pattern's name table. Fails with
// ErrUndefinedGroupName if the pattern declares no such group.
func (m *Match) GroupByName(name string) (string, error) {
	i, ok := m.names[name]
	if !ok {
		return "", fmt.Errorf("group %q: %w", name, ErrUndefinedGroupName)
	}
	return m.Group(i)
}

// Matched reports whether group i participated in the match. Out-of-range
// indices report false.
func (m *Match) Matched(i int) bool {
	return i >= 0 && i < len(m.spans) && m.spans[i].Matched()
}

// Groups returns the substrings captured by groups 1..N. Groups that did
// not participate in the match are "".
func (m *Match) Groups() []string {
	out := make([]string, len(m.spans)-1)
	for i, span := range m.spans[1:] {
		if span.Matched() {
			out[i] = m.text[span.Start:span.End]
		}
	}
	return out
}

// NumGroups returns the number of capture groups in the match, not
// counting the whole match.
func (m *Match) NumGroups() int {
	return len(m.spans) - 1
}
