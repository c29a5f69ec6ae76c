package engine

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// backtrackEngine adapts the regexp2 backtracking engine.
//
// regexp2 reports offsets in runes, not bytes. Every span crossing this
// adapter is converted to byte offsets by walking the subject text along
// rune boundaries (see runes.go), so converted offsets still coincide with
// backend-reported boundaries and never split a multi-byte character.
//
// Group numbering is backend-native: following its .NET lineage, regexp2
// numbers unnamed groups before named ones when a pattern mixes both.
type backtrackEngine struct {
	re    *regexp2.Regexp
	names []string
}

func (e *backtrackEngine) Kind() Kind {
	return Backtracking
}

func (e *backtrackEngine) IsMatch(text string) (bool, error) {
	ok, err := e.re.MatchString(text)
	if err != nil {
		return false, &ExecError{Kind: Backtracking, Err: err}
	}
	return ok, nil
}

func (e *backtrackEngine) Find(text string) (*Span, error) {
	m, err := e.re.FindStringMatch(text)
	if err != nil {
		return nil, &ExecError{Kind: Backtracking, Err: err}
	}
	if m == nil {
		return nil, nil
	}
	spans := runeSpansToBytes(text, []Span{{Start: m.Index, End: m.Index + m.Length}})
	return &spans[0], nil
}

func (e *backtrackEngine) Captures(text string) ([]Span, error) {
	m, err := e.re.FindStringMatch(text)
	if err != nil {
		return nil, &ExecError{Kind: Backtracking, Err: err}
	}
	if m == nil {
		return nil, nil
	}
	groups := m.Groups()
	spans := make([]Span, len(groups))
	for i := range groups {
		g := &groups[i]
		if len(g.Captures) == 0 {
			spans[i] = Span{Start: -1, End: -1}
			continue
		}
		spans[i] = Span{Start: g.Index, End: g.Index + g.Length}
	}
	return runeSpansToBytes(text, spans), nil
}

func (e *backtrackEngine) FindAll(text string, n int) ([]Span, error) {
	m, err := e.re.FindStringMatch(text)
	if err != nil {
		return nil, &ExecError{Kind: Backtracking, Err: err}
	}
	var spans []Span
	prevEnd := -1
	for m != nil {
		start, end := m.Index, m.Index+m.Length
		// The backend reports an empty match right after every non-empty
		// match; the simple engine suppresses those. Skip them so FindAll
		// semantics do not depend on engine routing.
		if start != end || start != prevEnd {
			spans = append(spans, Span{Start: start, End: end})
			prevEnd = end
			if n > 0 && len(spans) >= n {
				break
			}
		}
		m, err = e.re.FindNextMatch(m)
		if err != nil {
			return nil, &ExecError{Kind: Backtracking, Err: err}
		}
	}
	if spans == nil {
		return nil, nil
	}
	return runeSpansToBytes(text, spans), nil
}

func (e *backtrackEngine) Replace(text, repl string) (string, error) {
	out, err := e.re.Replace(text, repl, -1, -1)
	if err != nil {
		return "", &ExecError{Kind: Backtracking, Err: err}
	}
	return out, nil
}

func (e *backtrackEngine) SubexpNames() []string {
	return e.names
}

// backtrackSubexpNames normalizes regexp2's group tables to the
// stdlib-style name slice: index 0 is "", unnamed groups are "".
func backtrackSubexpNames(re *regexp2.Regexp) []string {
	nums := re.GetGroupNumbers()
	names := make([]string, len(nums))
	for i, num := range nums {
		if num == 0 {
			continue
		}
		name := re.GroupNameFromNumber(num)
		if name != strconv.Itoa(num) {
			names[i] = name
		}
	}
	return names
}
