package minimatch_test

import (
	"testing"

	"github.com/haliax/globc/pkg/minimatch"
	"github.com/stretchr/testify/assert"
)

func TestMatchStringBasicStar(t *testing.T) {
	ok, err := minimatch.MatchString("src/main.go", "src/*.go", minimatch.Options{})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchStringGlobStar(t *testing.T) {
	ok, err := minimatch.MatchString("a/b/x/y/c", "a/**/c", minimatch.Options{})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchStringNegation(t *testing.T) {
	mm, err := minimatch.NewMinimatch("!*.js", minimatch.Options{})
	assert.NoError(t, err)
	assert.False(t, mm.Match("main.js", false))
	assert.True(t, mm.Match("main.go", false))
}

func TestMatchStringExtglobAcrossSegment(t *testing.T) {
	ok, err := minimatch.MatchString("build/output.min.js", "build/!(output.min).js", minimatch.Options{})
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = minimatch.MatchString("build/bundle.js", "build/!(output.min).js", minimatch.Options{})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchStringMatchBase(t *testing.T) {
	ok, err := minimatch.MatchString("/xyz/123/acb", "a?b", minimatch.Options{MatchBase: true})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchSliceAppliesNoNull(t *testing.T) {
	result := minimatch.Match([]string{"a.txt", "b.txt"}, "*.js", minimatch.Options{NoNull: true})
	assert.Equal(t, []string{"*.js"}, result)

	result = minimatch.Match([]string{"a.txt", "b.txt"}, "*.js", minimatch.Options{})
	assert.Empty(t, result)
}

func TestMakeReCompilesCombinedPattern(t *testing.T) {
	mm, err := minimatch.NewMinimatch("a/{b,c}", minimatch.Options{})
	assert.NoError(t, err)

	re, err := mm.MakeRe()
	assert.NoError(t, err)
	assert.True(t, re.MatchString("a/b"))
	assert.True(t, re.MatchString("a/c"))
	assert.False(t, re.MatchString("a/d"))
}
