package minimatch

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// maxPatternLen guards against pathological input the way the teacher's old
// flat parser did (matcher.go's `len(pattern) > 64*1024` check).
const maxPatternLen = 64 * 1024

// ErrPatternTooLong is returned by Parse when a single segment exceeds
// maxPatternLen bytes.
var ErrPatternTooLong = errors.New("pattern is too long")

// Parse consumes a single-segment glob pattern and produces its Node tree.
// Apart from the length guard (a segment longer than maxPatternLen bytes
// returns a wrapped ErrPatternTooLong), it is total: every input string,
// however malformed, produces some tree (see spec section 7 — error
// handling by graceful degradation).
func Parse(pattern string, opts Options) (*Node, error) {
	if len(pattern) > maxPatternLen {
		return nil, errors.Wrapf(ErrPatternTooLong, "segment of length %d", len(pattern))
	}

	root := &Node{kind: KindLiteral, opts: opts}
	scanLiteral(root, pattern, 0, opts, false)
	return root, nil
}

// scanLiteral accumulates characters into cur.parts until it runs out of
// input (stop == 0) or, when inBranch is true, hits an unescaped `|` or `)`
// belonging to the extglob this literal is a branch of (stop is that rune,
// and next is the index just past it).
//
// Bracket-class literals are tracked via inClass so operators inside them
// never trigger extglob parsing; a class opening with `^` or `!` allows an
// immediately-following `]` to be literal content rather than the closer.
func scanLiteral(cur *Node, pattern string, i int, opts Options, inBranch bool) (next int, stop byte) {
	n := len(pattern)
	var scratch []byte
	escaping := false
	inClass := false
	classStart := -1

	flush := func() {
		if len(scratch) > 0 {
			cur.parts = append(cur.parts, strPart(string(scratch)))
			scratch = nil
		}
	}

	for i < n {
		r, size := utf8.DecodeRuneInString(pattern[i:])

		if escaping {
			scratch = append(scratch, pattern[i:i+size]...)
			i += size
			escaping = false
			continue
		}

		if inClass {
			switch r {
			case '\\':
				scratch = append(scratch, '\\')
				i += size
				escaping = true
				continue
			case ']':
				effStart := classStart + 1
				if effStart < n {
					nr, nsz := utf8.DecodeRuneInString(pattern[effStart:])
					if nr == '^' || nr == '!' {
						effStart += nsz
					}
				}
				if i == effStart {
					// a ] right after [ (or [^, [!) is literal content.
					scratch = append(scratch, ']')
					i += size
					continue
				}
				inClass = false
				scratch = append(scratch, ']')
				i += size
				continue
			default:
				scratch = append(scratch, pattern[i:i+size]...)
				i += size
				continue
			}
		}

		switch r {
		case '\\':
			scratch = append(scratch, '\\')
			i += size
			escaping = true
			continue

		case '[':
			inClass = true
			classStart = i
			scratch = append(scratch, '[')
			i += size
			continue

		case '!', '?', '+', '*', '@':
			if !opts.NoExt && i+size < n && pattern[i+size] == '(' {
				flush()
				i = parseExtglob(cur, pattern, i, byte(r), i+size+1, opts)
				continue
			}
			scratch = append(scratch, byte(r))
			i += size
			continue

		case ')':
			if inBranch {
				flush()
				return i + size, ')'
			}
			scratch = append(scratch, ')')
			i += size
			continue

		case '|':
			if inBranch {
				flush()
				return i + size, '|'
			}
			scratch = append(scratch, '|')
			i += size
			continue

		default:
			scratch = append(scratch, pattern[i:i+size]...)
			i += size
			continue
		}
	}

	flush()
	return i, 0
}

// parseExtglob parses the branch list of an extglob opened at pattern[opPos]
// (the operator char) whose `(` sits at opPos+1. i is the index just past
// that `(`. It returns the cursor position just past the closing `)`, or
// len(pattern) if the extglob was never closed (in which case it has been
// downgraded to a Literal in place).
func parseExtglob(parent *Node, pattern string, opPos int, op byte, i int, opts Options) int {
	ext := &Node{
		kind:        KindExtglob,
		op:          op,
		parent:      parent,
		parentIndex: len(parent.parts),
		srcStart:    opPos,
		hasMagic:    triTrue, // extglob nodes are born magic (spec section 3)
	}
	parent.parts = append(parent.parts, nodePart(ext))

	if op == '!' {
		root := ext.Root()
		root.negs = append(root.negs, ext)
	}

	for {
		branch := &Node{kind: KindLiteral, parent: ext, parentIndex: len(ext.parts)}
		next, stop := scanLiteral(branch, pattern, i, opts, true)

		if stop == 0 {
			downgradeUnterminated(ext, pattern)
			return next
		}

		priorBranches := len(ext.parts)
		emptyBranch := len(branch.parts) == 0
		ext.parts = append(ext.parts, nodePart(branch))

		if stop == ')' {
			if priorBranches == 0 && emptyBranch {
				ext.emptyExt = true
			}
			return next
		}

		// stop == '|': keep accumulating branches.
		i = next
	}
}

// downgradeUnterminated turns an extglob that never found its closing `)`
// into a Literal node whose single part is the raw source text starting at
// the operator character, per spec section 4.1.
func downgradeUnterminated(ext *Node, pattern string) {
	raw := pattern[ext.srcStart:]
	ext.kind = KindLiteral
	ext.op = 0
	ext.emptyExt = false
	ext.hasMagic = triUnknown
	ext.parts = []Part{strPart(raw)}
}
