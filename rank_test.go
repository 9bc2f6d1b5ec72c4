package tslamyu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results(penalties ...int) []ParseResult {
	out := make([]ParseResult, len(penalties))
	for i, p := range penalties {
		out[i] = ParseResult{
			Tree:    &VerbClause{Verb: &Token{Value: "v", Position: i + 1}, Class: VerbIntransitive},
			Penalty: p,
		}
		if p >= 10 {
			out[i].Violations = []string{"bad"}
		}
	}
	return out
}

func positions(rs []ParseResult) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Tree.Head().Position
	}
	return out
}

func TestRankStable(t *testing.T) {
	forest := results(10, 0, 2, 0, 10)
	ranked := Rank(forest)

	assert.Equal(t, []int{2, 4, 3, 1, 5}, positions(ranked))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, positions(forest), "input must not be reordered")
	assert.Empty(t, Rank(nil))
}

func TestWellFormed(t *testing.T) {
	assert.True(t, WellFormed(Rank(results(10, 0))))
	assert.False(t, WellFormed(Rank(results(10, 20))))
	assert.False(t, WellFormed(nil))
}

func TestSelect(t *testing.T) {
	ranked := Rank(results(0, 1, 0, 0))
	texts := map[int]string{1: "ioang runs", 3: "ioang runs", 4: " ", 2: "other"}

	sel := Select(ranked, func(tree ParseTree) string { return texts[tree.Head().Position] })

	assert.Equal(t, []int{1, 3, 4}, positions(sel.Primary))
	assert.Equal(t, []int{2}, positions(sel.Suppressed))
	assert.Equal(t, []string{"ioang runs"}, sel.Translations)
	assert.Empty(t, sel.Violations)
}

func TestSelectViolations(t *testing.T) {
	ranked := Rank(results(10, 10, 20))
	sel := Select(ranked, func(ParseTree) string { return "" })

	require.Len(t, sel.Primary, 2)
	assert.Equal(t, []string{"bad", "bad"}, sel.Violations)
	assert.Empty(t, sel.Translations)
	assert.Equal(t, Selection{}, Select(nil, Translate))
}
