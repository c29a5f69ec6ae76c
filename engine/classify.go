package engine

// NeedsBacktracking reports whether the pattern uses constructs only the
// backtracking engine can express: a backreference (backslash followed by a
// digit 1-9) or lookaround ((?=, (?!, (?<=, (?<!).
//
// This is a heuristic single forward scan over the pattern bytes, not a
// parser: any other escaped character simply consumes the following byte
// without deeper interpretation, so unusual escape sequences can misfire.
// It runs once per distinct pattern text, never per match.
//
// Named groups ((?<name>...)) do not trigger: after (?< only = and !
// indicate lookbehind.
func NeedsBacktracking(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if i+1 < len(pattern) {
				if c := pattern[i+1]; c >= '1' && c <= '9' {
					return true
				}
				i++
			}
		case '(':
			if i+2 < len(pattern) && pattern[i+1] == '?' {
				switch pattern[i+2] {
				case '=', '!':
					return true
				case '<':
					if i+3 < len(pattern) && (pattern[i+3] == '=' || pattern[i+3] == '!') {
						return true
					}
				}
			}
		}
	}
	return false
}
