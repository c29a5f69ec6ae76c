package engine

import (
	"github.com/coregx/coregex"
)

// simpleEngine adapts the coregex linear-time engine. coregex reports byte
// offsets natively and never fails at match time, so the error returns are
// always nil.
type simpleEngine struct {
	re    *coregex.Regex
	names []string
}

func (e *simpleEngine) Kind() Kind {
	return Simple
}

func (e *simpleEngine) IsMatch(text string) (bool, error) {
	return e.re.MatchString(text), nil
}

func (e *simpleEngine) Find(text string) (*Span, error) {
	loc := e.re.FindStringIndex(text)
	if loc == nil {
		return nil, nil
	}
	return &Span{Start: loc[0], End: loc[1]}, nil
}

func (e *simpleEngine) Captures(text string) ([]Span, error) {
	idx := e.re.FindStringSubmatchIndex(text)
	if idx == nil {
		return nil, nil
	}
	spans := make([]Span, 0, len(idx)/2)
	for i := 0; i+1 < len(idx); i += 2 {
		spans = append(spans, Span{Start: idx[i], End: idx[i+1]})
	}
	return spans, nil
}

func (e *simpleEngine) FindAll(text string, n int) ([]Span, error) {
	locs := e.re.FindAllStringIndex(text, n)
	if locs == nil {
		return nil, nil
	}
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans, nil
}

func (e *simpleEngine) Replace(text, repl string) (string, error) {
	return e.re.ReplaceAllString(text, repl), nil
}

func (e *simpleEngine) SubexpNames() []string {
	return e.names
}
