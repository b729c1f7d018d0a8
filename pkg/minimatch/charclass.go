package minimatch

import (
	"regexp"
	"strings"
)

// parseClass is the character-class collaborator spec section 6 describes
// as a black box: given a fragment starting with `[`, it returns the regex
// source for the bracket expression, whether it needs unicode-aware
// matching, how many bytes of the fragment it consumed, and whether the
// result is "magic" (always true for a valid class). consumed == 0 means
// "this isn't a class after all, treat `[` as a literal bracket" — the
// teacher's own fallback for `[abc` (no closing bracket) and `[z-a]`-style
// invalid ranges (matcher.go:517-555).
//
// A `]` occurring immediately after `[`, `[^`, or `[!` loses its special
// meaning and is literal content, per POSIX.2 2.8.3.2 — the same rule the
// teacher enforces inline.
func parseClass(pattern string, start int) (src string, needsUnicode bool, consumed int, isMagic bool) {
	if start >= len(pattern) || pattern[start] != '[' {
		return "", false, 0, false
	}

	i := start + 1
	negated := false
	if i < len(pattern) && (pattern[i] == '!' || pattern[i] == '^') {
		negated = true
		i++
	}

	bodyStart := i
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}

	for i < len(pattern) && pattern[i] != ']' {
		if pattern[i] == '[' && i+1 < len(pattern) && pattern[i+1] == ':' {
			if end := strings.Index(pattern[i:], ":]"); end >= 0 {
				i += end + 2
				continue
			}
		}
		if pattern[i] == '\\' && i+1 < len(pattern) {
			i += 2
			continue
		}
		i++
	}

	if i >= len(pattern) {
		// never closed: not a class.
		return "", false, 0, false
	}

	body := pattern[bodyStart:i]
	var candidate string
	if negated {
		candidate = "[^" + body + "]"
	} else {
		candidate = "[" + body + "]"
	}

	if _, err := regexp.Compile(candidate); err != nil {
		// "[z-a]" and friends: not a valid class, fall back to literal.
		return "", false, 0, false
	}

	return candidate, needsNonASCII(body), i + 1 - start, true
}

func needsNonASCII(s string) bool {
	for _, r := range s {
		if r > 0x7f {
			return true
		}
	}
	return false
}
