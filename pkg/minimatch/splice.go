package minimatch

// spliceNegations runs the mandatory tail-splice pass described in spec
// section 4.2. It must run exactly once, before the first emission: for
// every negated extglob anywhere in the tree, it copies whatever text
// follows that negation — within its own branch, then within each
// enclosing literal ancestor in turn, all the way to the root — into every
// branch of the negation itself. A negative lookahead only asserts at one
// position; to bound what it rejects it needs the full remainder that its
// body would otherwise have matched, which is exactly the material that
// follows it in the segment.
//
// Extglob ancestors contribute nothing directly (their parts are
// alternative branches, not a sequential run of siblings) but the walk
// passes through them rather than stopping, since the real textual
// continuation of a branch lives above its own enclosing extglob.
func spliceNegations(root *Node) {
	if root.filledNegs {
		return
	}
	for _, neg := range root.negs {
		spliceOne(neg)
	}
	root.filledNegs = true
}

func spliceOne(neg *Node) {
	p := neg
	pp := neg.parent

	for pp != nil {
		if pp.kind == KindLiteral {
			for i := p.parentIndex + 1; i < len(pp.parts); i++ {
				appendCloneToEveryBranch(neg, pp.parts[i])
			}
		}
		p = pp
		pp = pp.parent
	}
}

func appendCloneToEveryBranch(neg *Node, src Part) {
	for _, branchPart := range neg.parts {
		branch := branchPart.Node
		idx := len(branch.parts)
		if src.isNode() {
			branch.parts = append(branch.parts, nodePart(src.Node.clone(branch, idx)))
		} else {
			branch.parts = append(branch.parts, strPart(src.Str))
		}
	}
}
