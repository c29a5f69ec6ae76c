package rematch

import (
	"strings"
	"sync"

	"github.com/coregx/rematch/engine"
)

// Pattern is a compiled regex handle exposing both search-anywhere and
// match-at-start semantics.
//
// The handle pairs two automata. The search automaton is compiled from the
// pattern as written. The match automaton answers "does it match at offset
// 0" and is derived once, on first use, by rewriting the pattern as
// \A(?:pattern); if the pattern already begins with a literal \A, or a
// literal ^ outside Multiline, the search automaton is reused directly.
// The \A form is used rather than ^ so the anchored variant stays a
// start-of-text anchor under Multiline.
//
// The anchor-prefix check is a literal-prefix heuristic: a pattern that is
// semantically anchored without a leading literal anchor is compiled
// twice. Correctness holds either way; only the optimization is missed.
//
// A Pattern is immutable and safe for concurrent use. Handles obtained
// from a Registry are shared; never rely on handle identity.
type Pattern struct {
	source string
	cfg    engine.Config
	search engine.Engine
	names  map[string]int

	matchOnce sync.Once
	match     engine.Engine
	matchErr  error
}

func newPattern(pattern string, cfg Config) (*Pattern, error) {
	eng, err := engine.Build(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return wrapEngine(pattern, cfg, eng), nil
}

func newPatternWithKind(pattern string, cfg Config, kind Backend) (*Pattern, error) {
	eng, err := engine.BuildWithKind(pattern, cfg, kind)
	if err != nil {
		return nil, err
	}
	return wrapEngine(pattern, cfg, eng), nil
}

func wrapEngine(pattern string, cfg Config, eng engine.Engine) *Pattern {
	p := &Pattern{
		source: pattern,
		cfg:    cfg,
		search: eng,
		names:  nameTable(eng.SubexpNames()),
	}
	if hasStartAnchor(pattern, cfg) {
		p.match = eng
	}
	return p
}

// hasStartAnchor reports whether the pattern literally begins with a
// start-of-text anchor. Under Multiline a leading ^ anchors to line
// starts, not text start, so only \A qualifies there.
func hasStartAnchor(pattern string, cfg Config) bool {
	if strings.HasPrefix(pattern, `\A`) {
		return true
	}
	return !cfg.Multiline && strings.HasPrefix(pattern, "^")
}

// nameTable maps group names to indices, first declaration wins on
// duplicates.
func nameTable(names []string) map[string]int {
	table := make(map[string]int)
	for i, name := range names {
		if name == "" {
			continue
		}
		if _, ok := table[name]; !ok {
			table[name] = i
		}
	}
	return table
}

// matcher returns the anchored automaton, deriving it on first use. The
// derived automaton is forced onto the same backend as the search
// automaton so both halves of the handle share semantics.
func (p *Pattern) matcher() (engine.Engine, error) {
	p.matchOnce.Do(func() {
		if p.match != nil {
			return
		}
		p.match, p.matchErr = engine.BuildWithKind(`\A(?:`+p.source+`)`, p.cfg, p.search.Kind())
	})
	return p.match, p.matchErr
}

// IsSearch reports whether the pattern occurs anywhere in text.
func (p *Pattern) IsSearch(text string) (bool, error) {
	return p.search.IsMatch(text)
}

// IsMatch reports whether the pattern matches text starting at offset 0.
func (p *Pattern) IsMatch(text string) (bool, error) {
	m, err := p.matcher()
	if err != nil {
		return false, err
	}
	return m.IsMatch(text)
}

// Match returns capture spans for a match starting at offset 0, or nil if
// the pattern does not match there.
func (p *Pattern) Match(text string) (*Match, error) {
	m, err := p.matcher()
	if err != nil {
		return nil, err
	}
	spans, err := m.Captures(text)
	if err != nil || spans == nil {
		return nil, err
	}
	return &Match{text: text, spans: spans, names: p.names}, nil
}

// Search returns capture spans for the leftmost occurrence of the pattern
// in text, or nil if there is none.
func (p *Pattern) Search(text string) (*Match, error) {
	spans, err := p.search.Captures(text)
	if err != nil || spans == nil {
		return nil, err
	}
	return &Match{text: text, spans: spans, names: p.names}, nil
}

// Find returns the span of the leftmost match in text, or nil if there is
// none.
func (p *Pattern) Find(text string) (*Span, error) {
	return p.search.Find(text)
}

// FindAll returns all non-overlapping matched substrings, leftmost to
// rightmost. If n > 0, at most n matches are returned. Returns nil if
// there are no matches.
func (p *Pattern) FindAll(text string, n int) ([]string, error) {
	if n == 0 {
		return nil, nil
	}
	spans, err := p.search.FindAll(text, n)
	if err != nil || spans == nil {
		return nil, err
	}
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = text[s.Start:s.End]
	}
	return out, nil
}

// Sub returns text with every match of the pattern replaced by repl. The
// replacement template syntax ($1, ${name}, ...) is backend-native and
// passed through unmodified.
func (p *Pattern) Sub(text, repl string) (string, error) {
	return p.search.Replace(text, repl)
}

// Split slices text into the substrings between matches of the pattern.
//
// The count determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last is the unsplit remainder.
//	n == 0: the result is nil.
//	n < 0: all substrings.
func (p *Pattern) Split(text string, n int) ([]string, error) {
	if n == 0 {
		return nil, nil
	}

	spans, err := p.search.FindAll(text, -1)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return []string{text}, nil
	}

	numSplits := len(spans) + 1
	if n > 0 && n < numSplits {
		numSplits = n
	}
	result := make([]string, 0, numSplits)

	lastEnd := 0
	for _, s := range spans {
		if n > 0 && len(result) >= n-1 {
			break
		}
		result = append(result, text[lastEnd:s.Start])
		lastEnd = s.End
	}
	result = append(result, text[lastEnd:])
	return result, nil
}

// String returns the source text used to compile the pattern.
func (p *Pattern) String() string {
	return p.source
}

// Kind identifies the backend the search automaton was compiled on.
func (p *Pattern) Kind() Backend {
	return p.search.Kind()
}

// GroupNames returns capture group names in group-number order. Index 0 is
// always "". Unnamed groups are "". The slice is shared and must not be
// modified.
func (p *Pattern) GroupNames() []string {
	return p.search.SubexpNames()
}

// GroupIndex returns the span index of the named capture group. When a
// name is declared more than once, the first declaration wins.
func (p *Pattern) GroupIndex(name string) (int, bool) {
	i, ok := p.names[name]
	return i, ok
}

// NumGroups returns the number of capture groups, not counting the whole
// match.
func (p *Pattern) NumGroups() int {
	return len(p.search.SubexpNames()) - 1
}
