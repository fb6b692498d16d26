package pattern

import (
	"strings"

	"github.com/bryandebourbon/musicreader/model"
)

const (
	// MinWindow is the shortest pattern worth surfacing.
	MinWindow = 3
	// MaxWindow caps the sliding-window length.
	MaxWindow = 26
	// MinOccurrences is required both before and after overlap removal.
	MinOccurrences = 2
)

// Detect finds repeated contiguous subsequences of the symbol sequence.
// A sequence shorter than MinWindow is not an error and yields an empty
// map. Positions are collected in ascending start order, so the result is
// identical across runs for the same input.
func Detect(seq []string) map[string]model.Pattern {
	res := make(map[string]model.Pattern)
	n := len(seq)
	if n < MinWindow {
		return res
	}

	maxL := MaxWindow
	if n < maxL {
		maxL = n
	}

	for length := MinWindow; length <= maxL; length++ {
		starts := make(map[string][]int)
		for i := 0; i+length <= n; i++ {
			key := strings.Join(seq[i:i+length], "")
			starts[key] = append(starts[key], i)
		}
		for key, positions := range starts {
			if len(positions) < MinOccurrences {
				continue
			}
			kept := dropOverlaps(positions, length)
			if len(kept) < MinOccurrences {
				continue
			}
			res[key] = model.Pattern{Key: key, Length: length, Positions: kept}
		}
	}
	return res
}

// dropOverlaps keeps occurrences greedily in ascending start order: an
// occurrence survives only if its window does not intersect the previously
// kept one. The left-most bias is a compatibility requirement, not an
// optimum.
func dropOverlaps(starts []int, length int) []int {
	kept := make([]int, 0, len(starts))
	next := 0
	for _, s := range starts {
		if len(kept) == 0 || s >= next {
			kept = append(kept, s)
			next = s + length
		}
	}
	return kept
}

// MergeMaps combines the step-based and direction-based detector outputs.
// The two alphabets are disjoint so keys never collide; if they ever did,
// the first map's entry wins.
func MergeMaps(maps ...map[string]model.Pattern) map[string]model.Pattern {
	res := make(map[string]model.Pattern)
	for _, m := range maps {
		for k, v := range m {
			if _, ok := res[k]; !ok {
				res[k] = v
			}
		}
	}
	return res
}
