package interleave

import (
	"sort"

	"github.com/bryandebourbon/musicreader/model"
	"github.com/bryandebourbon/musicreader/notes"
)

// Part is one part's built measures plus its part-list position, which
// breaks ordering ties so the first-listed part wins.
type Part struct {
	ID       string
	Order    int
	Measures []notes.BuiltMeasure
}

// MeasureInfo is the merged view of one measure index across all parts.
type MeasureInfo struct {
	Index         int
	DurationBeats float64
}

// Arena owns the full interleaved note sequence of one pipeline run plus
// the parallel sequences the pattern detector consumes. It is built once
// and never mutated afterwards.
type Arena struct {
	Notes      []model.Note
	Steps      []string
	Pitches    []int
	Directions []string
	Measures   []MeasureInfo
}

// Merge interleaves all parts one measure index at a time. Within a measure
// notes order by start offset, then part order, then voice; GlobalIndex is
// assigned over the result and is immutable from here on.
func Merge(parts []Part) *Arena {
	a := &Arena{}

	numMeasures := 0
	for _, p := range parts {
		if len(p.Measures) > numMeasures {
			numMeasures = len(p.Measures)
		}
	}

	type slot struct {
		note      model.Note
		partOrder int
	}

	for mi := 0; mi < numMeasures; mi++ {
		var slots []slot
		beats := 0.0
		for _, p := range parts {
			if mi >= len(p.Measures) {
				continue
			}
			bm := p.Measures[mi]
			if bm.Divisions > 0 {
				if b := float64(bm.DurationTicks) / float64(bm.Divisions); b > beats {
					beats = b
				}
			}
			for _, n := range bm.Notes {
				slots = append(slots, slot{note: n, partOrder: p.Order})
			}
		}

		// Start offsets are ticks under each part's own divisions, so the
		// comparison cross-multiplies instead of assuming a shared scale.
		sort.SliceStable(slots, func(i, j int) bool {
			x, y := slots[i].note, slots[j].note
			l := x.StartTicks * y.Divisions
			r := y.StartTicks * x.Divisions
			if l != r {
				return l < r
			}
			if slots[i].partOrder != slots[j].partOrder {
				return slots[i].partOrder < slots[j].partOrder
			}
			return x.Voice < y.Voice
		})

		for _, s := range slots {
			n := s.note
			n.GlobalIndex = len(a.Notes)
			a.Notes = append(a.Notes, n)
			a.Steps = append(a.Steps, n.StepSymbol())
			a.Pitches = append(a.Pitches, n.PitchNumber())
			a.Directions = append(a.Directions, direction(a.Pitches))
		}

		a.Measures = append(a.Measures, MeasureInfo{Index: mi, DurationBeats: beats})
	}

	return a
}

// direction compares the two most recent pitches. The first element and any
// comparison involving a rest encode as "same".
func direction(pitches []int) string {
	i := len(pitches) - 1
	if i < 1 {
		return model.DirSame
	}
	prev, curr := pitches[i-1], pitches[i]
	switch {
	case prev < 0 || curr < 0:
		return model.DirSame
	case curr > prev:
		return model.DirUp
	case curr < prev:
		return model.DirDown
	default:
		return model.DirSame
	}
}
