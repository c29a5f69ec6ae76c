package rematch

// Escape returns a pattern that matches the literal text s and nothing
// else, with every metacharacter of either backend escaped. The result is
// valid for both backends, so it can be escaped before the engine choice
// is known.
//
// The escape set is the union of both backends' metacharacters; # is
// included so the result cannot open a comment in free-spacing mode.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isMeta(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isMeta(s[i]) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isMeta reports whether c is a metacharacter in either backend's syntax.
func isMeta(c byte) bool {
	const special = `\.+*?()|[]{}^$#&-~`
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
