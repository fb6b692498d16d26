package pattern

import (
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/bryandebourbon/musicreader/model"
	"github.com/bryandebourbon/musicreader/util"
)

const (
	// GroupDistanceRatio: two keys cluster when their edit distance is at
	// most this share of the longer key's length.
	GroupDistanceRatio = 0.30
	// MaxDisplayLength caps the winning key for presentation.
	MaxDisplayLength = 20
)

// Group clusters textually similar patterns with union-find, so membership
// is transitive-closed: A~B and B~C put A, B and C together even when A and
// C alone exceed the threshold. Groups come back ordered by their winner's
// first occurrence position.
func Group(patterns map[string]model.Pattern) []model.PatternGroup {
	keys := util.GetKeys(patterns)
	sort.Strings(keys)
	if len(keys) == 0 {
		return nil
	}

	parent := make([]int, len(keys))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[rj] = ri
		}
	}

	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if withinThreshold(keys[i], keys[j]) {
				union(i, j)
			}
		}
	}

	members := make(map[int][]string)
	for i, k := range keys {
		r := find(i)
		members[r] = append(members[r], k)
	}

	groups := make([]model.PatternGroup, 0, len(members))
	for _, root := range util.GetKeysSorted(members) {
		groups = append(groups, buildGroup(members[root], patterns))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Winner.Positions[0] != b.Winner.Positions[0] {
			return a.Winner.Positions[0] < b.Winner.Positions[0]
		}
		return a.Winner.Key < b.Winner.Key
	})
	return groups
}

func withinThreshold(a, b string) bool {
	longer := len(a)
	if len(b) > longer {
		longer = len(b)
	}
	if longer == 0 {
		return true
	}
	d := levenshtein.ComputeDistance(a, b)
	return float64(d) <= GroupDistanceRatio*float64(longer)
}

// buildGroup selects the winning representative: the longest key, breaking
// ties by earliest first occurrence, then lexically.
func buildGroup(keys []string, patterns map[string]model.Pattern) model.PatternGroup {
	winner := patterns[keys[0]]
	for _, k := range keys[1:] {
		p := patterns[k]
		if better(p, winner) {
			winner = p
		}
	}

	positionSet := make(map[int]bool)
	for _, k := range keys {
		for _, pos := range patterns[k].Positions {
			positionSet[pos] = true
		}
	}

	display := winner.Key
	if len(display) > MaxDisplayLength {
		display = display[:MaxDisplayLength]
	}

	return model.PatternGroup{
		Winner:    winner,
		Display:   display,
		Keys:      keys,
		Positions: util.GetKeysSorted(positionSet),
	}
}

func better(a, b model.Pattern) bool {
	if a.Length != b.Length {
		return a.Length > b.Length
	}
	if a.Positions[0] != b.Positions[0] {
		return a.Positions[0] < b.Positions[0]
	}
	return a.Key < b.Key
}
