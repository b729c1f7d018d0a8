package minimatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPatternLiteralStaysExact(t *testing.T) {
	root, err := Parse("README.md", Options{})
	assert.NoError(t, err)

	pat, err := ToPattern(root, Options{})
	assert.NoError(t, err)
	assert.True(t, pat.IsExact)
	assert.Equal(t, "README.md", pat.Literal)
	assert.Nil(t, pat.Re)
}

func TestToPatternMagicCompilesRegex(t *testing.T) {
	root, err := Parse("*.js", Options{})
	assert.NoError(t, err)

	pat, err := ToPattern(root, Options{})
	assert.NoError(t, err)
	assert.False(t, pat.IsExact)
	assert.NotNil(t, pat.Re)
	assert.Equal(t, "*.js", pat.Glob)
	assert.True(t, pat.Re.MatchString("foo.js"))
}

func TestToPatternNoCaseForcesRegexOnLiteral(t *testing.T) {
	root, err := Parse("README.md", Options{})
	assert.NoError(t, err)

	pat, err := ToPattern(root, Options{NoCase: true})
	assert.NoError(t, err)
	assert.False(t, pat.IsExact)
	assert.True(t, pat.Re.MatchString("readme.md"))
}

func TestToPatternNoCaseMagicOnlySkipsCasingCheck(t *testing.T) {
	root, err := Parse("README.md", Options{})
	assert.NoError(t, err)

	pat, err := ToPattern(root, Options{NoCase: true, NoCaseMagicOnly: true})
	assert.NoError(t, err)
	assert.True(t, pat.IsExact)
}

func TestNodeStringRoundTrip(t *testing.T) {
	root, err := Parse("a@(i|w!(x|y)z|j)b", Options{})
	assert.NoError(t, err)
	assert.Equal(t, "a@(i|w!(x|y)z|j)b", root.String())
}

func TestNodeStringUnterminatedExtglob(t *testing.T) {
	root, err := Parse("a!(bc", Options{})
	assert.NoError(t, err)
	assert.Equal(t, "a!(bc", root.String())
}

func TestNodeToJSONMarksStartAndEnd(t *testing.T) {
	root, err := Parse("abc", Options{})
	assert.NoError(t, err)

	j, ok := root.ToJSON().([]interface{})
	assert.True(t, ok)
	assert.NotEmpty(t, j)

	// leading empty-array marker for is_start(), string fragment in the
	// middle, and the root itself always counts as is_end().
	_, isArr := j[0].([]interface{})
	assert.True(t, isArr)

	last := j[len(j)-1]
	_, isMap := last.(map[string]interface{})
	assert.True(t, isMap)
}
