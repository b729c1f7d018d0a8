package minimatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpliceAppendsTailIntoEveryBranch(t *testing.T) {
	root, err := Parse("a@(i|w!(x|y)z|j)b", Options{})
	assert.NoError(t, err)

	ext := root.parts[1].Node
	middle := ext.parts[1].Node
	neg := middle.parts[1].Node

	spliceNegations(root)
	assert.True(t, root.filledNegs)

	// the neg's own sibling "z" then the root's sibling "b" land in every
	// branch, in that order, without disturbing the original tree shape.
	for _, bp := range neg.parts {
		branch := bp.Node
		assert.Len(t, branch.parts, 3)
		assert.Equal(t, "z", branch.parts[1].Str)
		assert.Equal(t, "b", branch.parts[2].Str)
	}

	// original siblings remain untouched in their normal position.
	assert.Equal(t, "z", middle.parts[2].Str)
	assert.Equal(t, "b", root.parts[2].Str)
}

func TestSpliceIsIdempotent(t *testing.T) {
	root, err := Parse("!(a)b", Options{})
	assert.NoError(t, err)

	spliceNegations(root)
	neg := root.parts[0].Node
	firstLen := len(neg.parts[0].Node.parts)

	spliceNegations(root)
	assert.Equal(t, firstLen, len(neg.parts[0].Node.parts))
}

func TestSpliceNoTailIsNoOp(t *testing.T) {
	root, err := Parse("!(a)", Options{})
	assert.NoError(t, err)

	neg := root.parts[0].Node
	branchLen := len(neg.parts[0].Node.parts)

	spliceNegations(root)
	assert.Equal(t, branchLen, len(neg.parts[0].Node.parts))
}
