package minimatch

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is the public façade's output: either an exact literal string or a
// compiled regex carrying its source and the canonical glob it came from, per
// spec section 4.5.
type Pattern struct {
	// Literal is set when the compiled pattern needs no regex at all — the
	// segment matches only by exact string equality.
	Literal string
	IsExact bool

	Re   *regexp.Regexp
	Src  string
	Glob string
}

// ToPattern runs the tail-splice pass (idempotent) and the emission pass
// over root, then decides between a literal and a compiled regex per spec
// section 4.5.
func ToPattern(root *Node, opts Options) (Pattern, error) {
	spliceNegations(root)

	glob := root.String()
	re, body, hasMagic, needsUnicode := root.emit()

	anyMagic := hasMagic || root.hasMagic.value()
	if opts.NoCase && !opts.NoCaseMagicOnly && strings.ToUpper(glob) != strings.ToLower(glob) {
		anyMagic = true
	}

	if !anyMagic {
		return Pattern{Literal: body, IsExact: true, Glob: glob}, nil
	}

	reFlags := ""
	if opts.NoCase {
		reFlags += "i"
	}
	if needsUnicode {
		// Go's regexp is unicode-aware by default; there's no separate
		// opt-in flag to add, but the record is kept for parity with the
		// spec's (src, glob) sidecar metadata.
		_ = needsUnicode
	}

	var src string
	if reFlags != "" {
		src = "(?" + reFlags + ":^" + re + "$)"
	} else {
		src = "^" + re + "$"
	}

	compiled, err := regexp.Compile(src)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "compiling pattern %q", glob)
	}

	return Pattern{Re: compiled, Src: re, Glob: glob}, nil
}

// String reconstructs the canonical source text of n: for a literal, the
// concatenation of its parts' string forms; for an extglob, `op(a|b|...)`.
func (n *Node) String() string {
	if n.cachedStr != nil {
		return *n.cachedStr
	}

	var b strings.Builder
	if n.kind == KindExtglob {
		b.WriteByte(n.op)
		b.WriteByte('(')
		for i, part := range n.parts {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(part.Node.String())
		}
		b.WriteByte(')')
	} else {
		for _, part := range n.parts {
			if part.isNode() {
				b.WriteString(part.Node.String())
			} else {
				b.WriteString(part.Str)
			}
		}
	}

	s := b.String()
	n.cachedStr = &s
	return s
}

// ToJSON produces the debug structure spec section 4.5 describes: literals
// as an array of child representations, extglobs as [op, branch...], with
// start/end markers spliced in for nodes holding that classification.
func (n *Node) ToJSON() interface{} {
	var body []interface{}

	if n.kind == KindExtglob {
		body = append(body, string(n.op))
		for _, part := range n.parts {
			body = append(body, part.Node.ToJSON())
		}
	} else {
		for _, part := range n.parts {
			if part.isNode() {
				body = append(body, part.Node.ToJSON())
			} else {
				body = append(body, part.Str)
			}
		}
	}

	out := make([]interface{}, 0, len(body)+2)
	if n.kind == KindLiteral && n.IsStart() {
		out = append(out, []interface{}{})
	}
	out = append(out, body...)
	if (n.parent == nil || n.isNegation()) && n.IsEnd() {
		out = append(out, map[string]interface{}{})
	}
	return out
}
