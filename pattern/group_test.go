package pattern

import (
	"strings"
	"testing"

	"github.com/bryandebourbon/musicreader/model"
	"github.com/stretchr/testify/assert"
)

func patternMap(patterns ...model.Pattern) map[string]model.Pattern {
	res := make(map[string]model.Pattern)
	for _, p := range patterns {
		res[p.Key] = p
	}
	return res
}

func pat(key string, positions ...int) model.Pattern {
	return model.Pattern{Key: key, Length: len(key), Positions: positions}
}

func groupKeys(g model.PatternGroup) []string {
	return g.Keys
}

func TestSimilarKeysGroupTogether(t *testing.T) {
	// edit distance 1 of length 5 is 20%, inside the 30% threshold
	groups := Group(patternMap(pat("cdedc", 0, 10), pat("cdedg", 5, 20)))

	assert := assert.New(t)
	assert.Equal(1, len(groups))
	assert.ElementsMatch([]string{"cdedc", "cdedg"}, groupKeys(groups[0]))
	assert.Equal([]int{0, 5, 10, 20}, groups[0].Positions)
}

func TestDissimilarKeysStaySeparate(t *testing.T) {
	// distance 4 of length 5 is well past the threshold
	groups := Group(patternMap(pat("cdedc", 0), pat("abcde", 5)))

	assert := assert.New(t)
	assert.Equal(2, len(groups))
}

func TestGroupingIsTransitive(t *testing.T) {
	// A~B and B~C each within threshold; A~C alone is not
	a := pat("aaaaa", 0)
	b := pat("aaaab", 5)
	c := pat("aaabb", 10)
	groups := Group(patternMap(a, b, c))

	assert := assert.New(t)
	assert.Equal(1, len(groups))
	assert.ElementsMatch([]string{"aaaaa", "aaaab", "aaabb"}, groupKeys(groups[0]))
}

func TestWinnerIsLongestKey(t *testing.T) {
	groups := Group(patternMap(pat("cdecde", 0, 12), pat("cdecdec", 6, 20)))

	assert := assert.New(t)
	assert.Equal(1, len(groups))
	assert.Equal("cdecdec", groups[0].Winner.Key)
}

func TestWinnerDisplayTruncatedToTwentySymbols(t *testing.T) {
	long := strings.Repeat("cdefg", 5) // 25 symbols
	groups := Group(patternMap(pat(long, 0, 30)))

	assert := assert.New(t)
	assert.Equal(long, groups[0].Winner.Key)
	assert.Equal(20, len(groups[0].Display))
	assert.Equal(long[:20], groups[0].Display)
}

func TestGroupsOrderedByWinnerFirstOccurrence(t *testing.T) {
	groups := Group(patternMap(
		pat("gfgfg", 7, 30),
		pat("cdedc", 2, 12),
		pat("ababa", 40, 50),
	))

	assert := assert.New(t)
	assert.Equal(3, len(groups))
	assert.Equal("cdedc", groups[0].Winner.Key)
	assert.Equal("gfgfg", groups[1].Winner.Key)
	assert.Equal("ababa", groups[2].Winner.Key)
}

func TestGroupIsDeterministic(t *testing.T) {
	m := patternMap(
		pat("cdedc", 0, 10), pat("cdedg", 5, 20),
		pat("ababa", 30, 40), pat("ababc", 35, 45),
	)

	assert := assert.New(t)
	assert.Equal(Group(m), Group(m))
}

func TestEmptyInput(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(Group(nil))
	assert.Nil(Group(map[string]model.Pattern{}))
}
