package minimatch

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func compileRe(t *testing.T, pattern string, opts Options) *regexp.Regexp {
	t.Helper()
	root, err := Parse(pattern, opts)
	assert.NoError(t, err)
	spliceNegations(root)
	re, _, _, _ := root.emit()
	compiled, err := regexp.Compile("^" + re + "$")
	assert.NoError(t, err)
	return compiled
}

func TestEmitSimpleStar(t *testing.T) {
	re := compileRe(t, "*.js", Options{})
	assert.True(t, re.MatchString("foo.js"))
	assert.False(t, re.MatchString(".foo.js"))
}

func TestEmitDotOptionAllowsLeadingDot(t *testing.T) {
	re := compileRe(t, "*.js", Options{Dot: true})
	assert.True(t, re.MatchString(".foo.js"))
}

func TestEmitBareDotLiteralAlwaysMatches(t *testing.T) {
	re := compileRe(t, ".", Options{})
	assert.True(t, re.MatchString("."))
}

func TestEmitNegatedExtglobExcludesMatch(t *testing.T) {
	re := compileRe(t, "!(foo)", Options{})
	assert.False(t, re.MatchString("foo"))
	assert.True(t, re.MatchString("bar"))
}

func TestEmitQuestionExtglob(t *testing.T) {
	re := compileRe(t, "?(a|b)c", Options{})
	assert.True(t, re.MatchString("c"))
	assert.True(t, re.MatchString("ac"))
	assert.True(t, re.MatchString("bc"))
	assert.False(t, re.MatchString("abc"))
}

func TestEmitPlusExtglob(t *testing.T) {
	re := compileRe(t, "+(ab)", Options{})
	assert.True(t, re.MatchString("ab"))
	assert.True(t, re.MatchString("abab"))
	assert.False(t, re.MatchString(""))
}

func TestEmitTailSplicedNegation(t *testing.T) {
	re := compileRe(t, "a@(i|w!(x|y)z|j)b", Options{})
	assert.True(t, re.MatchString("aib"))
	assert.True(t, re.MatchString("ajb"))
	assert.True(t, re.MatchString("awzb"))
	// in "awxzb" the !(x|y) lookahead body matches "xzb" right after "w",
	// so the negative lookahead fails and that branch is rejected.
	assert.False(t, re.MatchString("awxzb"))
}

func TestEmitCharClass(t *testing.T) {
	re := compileRe(t, "[!a-c]x", Options{})
	assert.True(t, re.MatchString("dx"))
	assert.False(t, re.MatchString("ax"))
}

func TestEmitLeadingDotLiteralMatchesWithoutDotOption(t *testing.T) {
	re := compileRe(t, ".foo", Options{})
	assert.True(t, re.MatchString(".foo"))
	assert.False(t, re.MatchString("bar"))
}

func TestEmitDegenerateEmptyExtglobIsLiteral(t *testing.T) {
	re := compileRe(t, "*()", Options{})
	assert.True(t, re.MatchString("*()"))
	assert.False(t, re.MatchString("foo()"))
	assert.False(t, re.MatchString("()"))

	re = compileRe(t, "?()", Options{})
	assert.True(t, re.MatchString("?()"))
	assert.False(t, re.MatchString("()"))
}
