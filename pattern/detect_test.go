package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func symbols(s string) []string {
	return strings.Split(s, "")
}

func TestDetectsRepeatedSubsequence(t *testing.T) {
	res := Detect(symbols("cdedccdedc"))

	assert := assert.New(t)
	p, ok := res["cdedc"]
	assert.True(ok)
	assert.Equal(5, p.Length)
	assert.Equal([]int{0, 5}, p.Positions)
}

func TestOverlappingOccurrencesRemovedLeftmostFirst(t *testing.T) {
	res := Detect(symbols("aaaaaa"))

	assert := assert.New(t)
	p, ok := res["aaa"]
	assert.True(ok)
	// starts 0..3 collapse to the leftmost non-overlapping pair
	assert.Equal([]int{0, 3}, p.Positions)
}

func TestKeyDroppedWhenOverlapRemovalLeavesOne(t *testing.T) {
	res := Detect(symbols("aaaa"))

	assert := assert.New(t)
	_, ok := res["aaa"]
	assert.False(ok)
}

func TestSingleOccurrenceNotReported(t *testing.T) {
	res := Detect(symbols("abcdefg"))

	assert := assert.New(t)
	assert.Empty(res)
}

func TestShortSequenceYieldsEmptySet(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Detect(symbols("ab")))
	assert.Empty(Detect(nil))
}

func TestNoRetainedPatternHasOverlappingWindows(t *testing.T) {
	res := Detect(symbols("cdecdecdecdeabababab"))

	assert := assert.New(t)
	assert.NotEmpty(res)
	for _, p := range res {
		assert.GreaterOrEqual(len(p.Positions), MinOccurrences)
		for i := 1; i < len(p.Positions); i++ {
			assert.GreaterOrEqual(p.Positions[i], p.Positions[i-1]+p.Length)
		}
	}
}

func TestPositionsStayWithinBounds(t *testing.T) {
	seq := symbols("cdedccdedccdedc")
	res := Detect(seq)

	assert := assert.New(t)
	for _, p := range res {
		for _, pos := range p.Positions {
			assert.GreaterOrEqual(pos, 0)
			assert.LessOrEqual(pos+p.Length, len(seq))
		}
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	seq := symbols("cdedccdedcabcabcabc")

	assert := assert.New(t)
	assert.Equal(Detect(seq), Detect(seq))
}

func TestMergeMapsKeepsDisjointAlphabets(t *testing.T) {
	steps := Detect(symbols("cdecdecde"))
	dirs := Detect(symbols("+-=+-=+-="))
	merged := MergeMaps(steps, dirs)

	assert := assert.New(t)
	assert.Equal(len(steps)+len(dirs), len(merged))
}
