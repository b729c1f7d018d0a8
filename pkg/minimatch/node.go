package minimatch

// Kind tags a Node as either a plain literal run or an extglob operator.
type Kind int

const (
	KindLiteral Kind = iota
	KindExtglob
)

// tri is a tri-state boolean: unknown, or known true/false. Collapsing this
// to a plain bool loses the "not yet computed" state that the façade relies
// on to decide whether a pattern needs a regex at all.
type tri int

const (
	triUnknown tri = iota
	triTrue
	triFalse
)

func (t tri) known() bool { return t != triUnknown }
func (t tri) value() bool { return t == triTrue }

// Part is one element of a Node's parts list: either a literal string
// fragment or a child Node. Exactly one of the two is set.
type Part struct {
	Str  string
	Node *Node
}

func strPart(s string) Part { return Part{Str: s} }
func nodePart(n *Node) Part { return Part{Node: n} }

func (p Part) isNode() bool { return p.Node != nil }

// Node is one node of the parse tree described in spec section 3. A
// Literal node's parts are a concatenation of string fragments and
// Extglob children; an Extglob node's parts are its `|`-separated
// alternative branches, each itself a Literal node.
type Node struct {
	kind Kind
	op   byte // meaningful only when kind == KindExtglob: one of !?+*@

	parent      *Node
	parentIndex int

	parts []Part

	hasMagic tri
	emptyExt bool

	needsUnicode bool

	// srcStart records the byte offset of this extglob's operator
	// character in the original pattern, so an unterminated extglob can be
	// downgraded to the literal source text it came from.
	srcStart int

	// cached outputs, memoized after the first emission (cachedStr after the
	// first String call). Nil until then; the tree must not be mutated after
	// emit() has run.
	cachedRe       *string
	cachedBody     *string
	cachedHasMagic *bool
	cachedUnicode  *bool
	cachedStr      *string

	// root-only fields, reached through the parent chain from any node.
	opts       Options
	negs       []*Node
	filledNegs bool
}

// Root walks the parent chain up to the tree's root node.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

func (n *Node) isNegation() bool {
	return n.kind == KindExtglob && n.op == '!'
}

// clone deep-copies a subtree for splicing into a negation's branches. The
// copy gets a fresh parent/parentIndex at the call site; memoized caches are
// never copied since the source they were computed from differs.
func (n *Node) clone(newParent *Node, newIndex int) *Node {
	cp := &Node{
		kind:        n.kind,
		op:          n.op,
		parent:      newParent,
		parentIndex: newIndex,
		emptyExt:    n.emptyExt,
		hasMagic:    n.hasMagic,
		srcStart:    n.srcStart,
	}
	cp.parts = make([]Part, len(n.parts))
	for i, p := range n.parts {
		if p.isNode() {
			cp.parts[i] = nodePart(p.Node.clone(cp, i))
		} else {
			cp.parts[i] = strPart(p.Str)
		}
	}
	return cp
}
