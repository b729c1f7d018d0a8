package minimatch_test

import (
	"testing"

	"github.com/haliax/globc/pkg/minimatch"
	"github.com/stretchr/testify/assert"
)

func TestBraceExpansion(t *testing.T) {
	r := minimatch.BraceExpansion("file-{a,b,c}.jpg")

	assert.ElementsMatch(t, r, []string{
		"file-a.jpg", "file-b.jpg", "file-c.jpg",
	})
}

func TestBraceExpansionNested(t *testing.T) {
	r := minimatch.BraceExpansion("a{b,c{d,e}f}g")

	assert.ElementsMatch(t, r, []string{
		"abg", "acdfg", "acefg",
	})
}
