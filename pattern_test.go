package rematch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestMatchSearchDuality checks that for patterns without a literal start
// anchor, Match is exactly Search restricted to matches at offset 0.
func TestMatchSearchDuality(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
	}{
		{`a+`, "aaa"},
		{`a+`, "baa"},
		{`a+`, "bbb"},
		{`\d+`, "42 apples"},
		{`\d+`, "about 42"},
		{`(\w+)@(\w+)`, "user@example"},
		{`(\w+)@(\w+)`, " user@example"},
		// backtracking-only constructs
		{`(a)\1`, "aab"},
		{`(a)\1`, "baa"},
		{`foo(?=bar)`, "foobar"},
		{`foo(?=bar)`, "xfoobar"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			p := MustCompile(tt.pattern)

			got, err := p.IsMatch(tt.text)
			if err != nil {
				t.Fatalf("IsMatch failed: %v", err)
			}

			m, err := p.Search(tt.text)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			want := m != nil && m.Start() == 0

			if got != want {
				t.Errorf("IsMatch = %v, but Search-at-0 = %v", got, want)
			}

			// Match and IsMatch must agree with each other too.
			am, err := p.Match(tt.text)
			if err != nil {
				t.Fatalf("Match failed: %v", err)
			}
			if (am != nil) != got {
				t.Errorf("Match = %v, but IsMatch = %v", am, got)
			}
			if am != nil && am.Start() != 0 {
				t.Errorf("Match started at %d, want 0", am.Start())
			}
		})
	}
}

func TestAnchoredPatternReusesAutomaton(t *testing.T) {
	tests := []struct {
		pattern string
		cfg     Config
		reused  bool
	}{
		{`^abc`, Config{}, true},
		{`\Aabc`, Config{}, true},
		{`abc`, Config{}, false},
		{`a^bc`, Config{}, false},
		// under Multiline a leading ^ is a line anchor, not text start
		{`^abc`, Config{Multiline: true}, false},
		{`\Aabc`, Config{Multiline: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := newPattern(tt.pattern, tt.cfg)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			eng, err := p.matcher()
			if err != nil {
				t.Fatalf("matcher failed: %v", err)
			}
			if reused := eng == p.search; reused != tt.reused {
				t.Errorf("anchored automaton reused = %v, want %v", reused, tt.reused)
			}
		})
	}
}

func TestMatchUnderMultiline(t *testing.T) {
	// The derived anchor must stay a start-of-text anchor even when ^
	// floats to line starts.
	p := MustCompile(`world`, Config{Multiline: true})

	if ok, _ := p.IsSearch("hello\nworld"); !ok {
		t.Error("IsSearch = false, want true")
	}
	if ok, _ := p.IsMatch("hello\nworld"); ok {
		t.Error("IsMatch = true for a match at a line start, want false")
	}
	if ok, _ := p.IsMatch("world\nhello"); !ok {
		t.Error("IsMatch = false for a match at text start, want true")
	}

	// Same for a literally line-anchored pattern.
	lp := MustCompile(`^world`, Config{Multiline: true})
	if ok, _ := lp.IsSearch("hello\nworld"); !ok {
		t.Error("^world IsSearch = false, want true")
	}
	if ok, _ := lp.IsMatch("hello\nworld"); ok {
		t.Error("^world IsMatch = true, want false")
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		n       int
		want    []string
	}{
		{`a|b`, "abab", -1, []string{"a", "b", "a", "b"}},
		{`\d+`, "1 22 333", -1, []string{"1", "22", "333"}},
		{`\d+`, "1 22 333", 2, []string{"1", "22"}},
		{`\d+`, "no digits", -1, nil},
		{`\d+`, "1 22", 0, nil},
		{`(a)\1`, "aa aa", -1, []string{"aa", "aa"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			got, err := p.FindAll(tt.text, tt.n)
			if err != nil {
				t.Fatalf("FindAll failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindAll mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFind(t *testing.T) {
	p := MustCompile(`\d+`)

	span, err := p.Find("age: 42")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if span == nil || span.Start != 5 || span.End != 7 {
		t.Errorf("Find = %v, want {5 7}", span)
	}

	span, err = p.Find("no digits")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if span != nil {
		t.Errorf("Find = %v, want nil", span)
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		repl    string
		want    string
	}{
		{`a|b`, "abab", "X", "XXXX"},
		{`(\w+)@(\w+)`, "mail user@example now", "$2", "mail example now"},
		{`\d+`, "no digits", "X", "no digits"},
		{`(a)\1`, "aabaa", "-", "-b-"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			got, err := p.Sub(tt.text, tt.repl)
			if err != nil {
				t.Fatalf("Sub failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Sub = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		n       int
		want    []string
	}{
		{`,`, "a,b,c", -1, []string{"a", "b", "c"}},
		{`,`, "a,b,c", 2, []string{"a", "b,c"}},
		{`,`, "a,b,c", 0, nil},
		{`,`, "abc", -1, []string{"abc"}},
		{`\s+`, "a b  c", -1, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			p := MustCompile(tt.pattern)
			got, err := p.Split(tt.text, tt.n)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatternAccessors(t *testing.T) {
	p := MustCompile(`(?<year>\d{4})-(\d{2})`)

	if p.String() != `(?<year>\d{4})-(\d{2})` {
		t.Errorf("String = %q", p.String())
	}
	if p.Kind() != Simple {
		t.Errorf("Kind = %s, want %s", p.Kind(), Simple)
	}
	if p.NumGroups() != 2 {
		t.Errorf("NumGroups = %d, want 2", p.NumGroups())
	}
	if diff := cmp.Diff([]string{"", "year", ""}, p.GroupNames()); diff != "" {
		t.Errorf("GroupNames mismatch (-want +got):\n%s", diff)
	}
	if i, ok := p.GroupIndex("year"); !ok || i != 1 {
		t.Errorf("GroupIndex(year) = %d, %v; want 1, true", i, ok)
	}
	if _, ok := p.GroupIndex("month"); ok {
		t.Error("GroupIndex(month) = true, want false")
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile of invalid pattern did not panic")
		}
	}()
	MustCompile(`[invalid`)
}
