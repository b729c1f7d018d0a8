package minimatch

import (
	"strings"
	"unicode/utf8"
)

// reSpecials is the teacher's character set (matcher.go:99) plus `|`: the
// characters that must be backslash-escaped to appear literally in a Go
// regexp.
const reSpecials = "().*{}+?[]^$\\!|"

func needsRegexEscape(r rune) bool {
	return r < 0x80 && strings.ContainsRune(reSpecials, r)
}

// compileAtom is the glob-atom compiler of spec section 4.4: it turns one
// literal fragment (a run of pattern text outside any extglob syntax that the
// parser collected into a Part.Str; it may hold `*`, `?`, `[...]` and
// backslash escapes) into regex source. noEmptyStar requests the
// "at least one character" form of `*` (spec: used when the entire segment
// is exactly `*`, so it can't match an empty path part).
func compileAtom(fragment string, noEmptyStar bool) (re string, body string, hasMagic bool, needsUnicode bool) {
	var out strings.Builder
	n := len(fragment)

	for i := 0; i < n; {
		switch fragment[i] {
		case '\\':
			if i+1 < n {
				r, size := utf8.DecodeRuneInString(fragment[i+1:])
				if needsRegexEscape(r) {
					out.WriteByte('\\')
				}
				out.WriteRune(r)
				i += 1 + size
			} else {
				out.WriteString(`\\`)
				i++
			}
			continue

		case '*':
			if noEmptyStar {
				out.WriteString("[^/]+?")
			} else {
				out.WriteString("[^/]*?")
			}
			hasMagic = true
			i++
			continue

		case '?':
			out.WriteString("[^/]")
			hasMagic = true
			i++
			continue

		case '[':
			src, needsUni, consumed, isMagic := parseClass(fragment, i)
			if consumed == 0 {
				out.WriteString(`\[`)
				i++
				continue
			}
			out.WriteString(src)
			hasMagic = hasMagic || isMagic
			needsUnicode = needsUnicode || needsUni
			i += consumed
			continue

		default:
			r, size := utf8.DecodeRuneInString(fragment[i:])
			if needsRegexEscape(r) {
				out.WriteByte('\\')
			}
			out.WriteRune(r)
			i += size
			continue
		}
	}

	return out.String(), unescape(fragment), hasMagic, needsUnicode
}
