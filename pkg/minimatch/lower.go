package minimatch

import (
	"regexp"
	"strings"
)

// IsStart reports whether n occupies the leading position of its segment.
// Negated extglobs don't consume leading position — a run of `!(...)`
// nodes before n doesn't disqualify it from being "at the start".
func (n *Node) IsStart() bool {
	if n.parent == nil {
		return true
	}
	if n.parent.kind == KindExtglob {
		// branches of an extglob all start wherever the extglob itself
		// starts — they're alternatives, not a sequence.
		return n.parent.IsStart()
	}
	if !n.parent.IsStart() {
		return false
	}
	if n.parentIndex == 0 {
		return true
	}
	for i := 0; i < n.parentIndex; i++ {
		part := n.parent.parts[i]
		if !part.isNode() || !part.Node.isNegation() {
			return false
		}
	}
	return true
}

// IsEnd reports whether n occupies the trailing position of its segment.
// Every node whose direct parent is a negated extglob is unconditionally
// "at the end" — that's what lets the tail-splice pass's `(?:$|/)` anchor
// land correctly, though it means IsEnd can't be repurposed for anything
// else inside a `!(...)` body. A literal node (such as an extglob branch)
// ends wherever its parent ends.
func (n *Node) IsEnd() bool {
	if n.parent == nil {
		return true
	}
	if n.parent.isNegation() {
		return true
	}
	if !n.parent.IsEnd() {
		return false
	}
	if n.kind == KindLiteral {
		return true
	}
	return n.parentIndex == len(n.parent.parts)-1
}

// emit is the recursive regex-lowering pass of spec section 4.3. Results
// are memoized: the tree must not be mutated again once emit has run once
// anywhere in it.
func (n *Node) emit() (re string, body string, hasMagic bool, needsUnicode bool) {
	if n.cachedRe != nil {
		return *n.cachedRe, *n.cachedBody, *n.cachedHasMagic, *n.cachedUnicode
	}

	if n.kind == KindExtglob {
		re, body, hasMagic, needsUnicode = n.emitExtglob()
	} else {
		re, body, hasMagic, needsUnicode = n.emitLiteral()
	}

	n.memoize(re, body, hasMagic, needsUnicode)
	return re, body, hasMagic, needsUnicode
}

func (n *Node) emitLiteral() (string, string, bool, bool) {
	var reB, bodyB strings.Builder
	hasMagic := false
	needsUnicode := false

	noEmptyStar := len(n.parts) == 1 && !n.parts[0].isNode() &&
		n.parts[0].Str == "*" && n.IsStart() && n.IsEnd()

	for _, part := range n.parts {
		var are, abody string
		var amagic, auni bool
		if part.isNode() {
			are, abody, amagic, auni = part.Node.emit()
		} else {
			are, abody, amagic, auni = compileAtom(part.Str, noEmptyStar)
		}
		reB.WriteString(are)
		bodyB.WriteString(abody)
		hasMagic = hasMagic || amagic
		needsUnicode = needsUnicode || auni
	}

	re := reB.String()
	body := bodyB.String()

	if n.IsStart() && len(n.parts) > 0 && !n.parts[0].isNode() {
		re = startGuard(body, re, n.Root().opts.Dot) + re
	}

	if n.IsEnd() && n.parent != nil && n.parent.isNegation() && n.Root().filledNegs {
		re += `(?:$|\/)`
	}

	return re, body, hasMagic, needsUnicode
}

func (n *Node) emitExtglob() (string, string, bool, bool) {
	// Degenerate case (spec section 4.3): a non-`!` extglob spanning the
	// whole segment with an empty body re-emits as its own literal source,
	// e.g. `*()` becomes the three-character literal string "*()" rather
	// than being re-interpreted by the glob-atom compiler (which would read
	// its own `*`/`?` as magic again). The canonical source must be
	// materialized before the node's kind is mutated (spec section 9, open
	// question 3) since String() inspects kind to decide how to render.
	if n.op != '!' && n.emptyExt && n.IsStart() && n.IsEnd() {
		src := n.String()
		n.kind = KindLiteral
		n.op = 0
		n.parts = []Part{strPart(src)}
		return regexp.QuoteMeta(src), src, false, false
	}

	branchRes := make([]string, len(n.parts))
	needsUnicode := false
	for i, bp := range n.parts {
		bre, _, _, buni := bp.Node.emit()
		branchRes[i] = bre
		needsUnicode = needsUnicode || buni
	}
	joined := strings.Join(branchRes, "|")

	noDotGuard := ""
	if n.IsStart() && !n.Root().opts.Dot {
		noDotGuard = `(?!\.)`
	}

	var re string
	switch n.op {
	case '@':
		re = "(?:" + joined + ")"
	case '?':
		re = "(?:" + joined + ")?"
	case '+':
		re = "(?:" + joined + ")+"
	case '*':
		re = "(?:" + joined + ")*"
	case '!':
		if n.emptyExt {
			// `!()` matches any non-empty segment.
			re = noDotGuard + "[^/]+"
		} else {
			re = "(?:(?!(?:" + joined + "))" + noDotGuard + "[^/]*?)"
		}
	}

	return re, "", true, needsUnicode
}

// startGuard computes the leading dot/traversal guard of spec section 4.3.
// literalText is the concatenated unescaped literal text of the node
// this guard is for — a literal "." or ".." segment is never guarded, since
// bare-dot traversal must still be matchable.
func startGuard(literalText string, re string, dot bool) string {
	if literalText == "." || literalText == ".." {
		return ""
	}
	if !mightLeadWithDot(re) {
		return ""
	}
	if dot {
		return `(?!\.\.?(?:$|/))`
	}
	return `(?!\.)`
}

// mightLeadWithDot reports whether re's first matched character could be a
// literal or wildcard-matched `.`. An escaped `\.` begins with a backslash,
// not a bare `.`, so it does NOT count as dot-leading here — a pattern that
// literally starts with `.` (e.g. `.gitignore`) must stay unguarded, per the
// bare-dot/dot-dot exemption this guard exists to preserve.
func mightLeadWithDot(re string) bool {
	if re == "" {
		return false
	}
	switch re[0] {
	case '.', '[', '(':
		return true
	}
	return false
}

func (n *Node) memoize(re, body string, hasMagic, needsUnicode bool) {
	n.cachedRe = &re
	n.cachedBody = &body
	n.cachedHasMagic = &hasMagic
	n.cachedUnicode = &needsUnicode
	if hasMagic {
		n.hasMagic = triTrue
	} else if n.hasMagic == triUnknown {
		n.hasMagic = triFalse
	}
	n.needsUnicode = n.needsUnicode || needsUnicode
}
