package timeline

import (
	"sort"

	"github.com/bryandebourbon/musicreader/interleave"
	"github.com/bryandebourbon/musicreader/model"
)

// typeBeats is the fallback duration per note type, used only when a note
// carries no usable tick duration. Both MusicXML spellings are accepted.
var typeBeats = map[string]float64{
	"breve":     8,
	"whole":     4,
	"half":      2,
	"quarter":   1,
	"eighth":    0.5,
	"16th":      0.25,
	"sixteenth": 0.25,
	"32nd":      0.125,
	"64th":      0.0625,
	"128th":     0.03125,
}

// Build converts the arena's measure-relative ticks into one absolute beat
// timeline, one entry per note, ordered by GlobalTime with arena order
// breaking ties. The ordering pass matters for overlong measures: when a
// measure's content overruns its declared duration the measure itself is
// resynced, so its trailing notes land past the next measure's start.
func Build(a *interleave.Arena) []model.TimelineEntry {
	starts := make([]float64, len(a.Measures))
	running := 0.0
	for i, mi := range a.Measures {
		starts[i] = running
		running += mi.DurationBeats
	}

	entries := make([]model.TimelineEntry, 0, len(a.Notes))
	for _, n := range a.Notes {
		div := n.Divisions
		if div < 1 {
			div = 1
		}
		start := starts[n.MeasureIdx] + float64(n.StartTicks)/float64(div)
		dur := float64(n.DurationTicks) / float64(div)
		if n.DurationTicks == 0 && !n.Grace {
			dur = typeBeats[n.Type]
		}
		entries = append(entries, model.TimelineEntry{
			GlobalTime:    start,
			DurationBeats: dur,
			NoteIndex:     n.GlobalIndex,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].GlobalTime < entries[j].GlobalTime
	})
	return entries
}

// TotalBeats is the timeline length: the sum of all measure durations.
func TotalBeats(a *interleave.Arena) float64 {
	total := 0.0
	for _, mi := range a.Measures {
		total += mi.DurationBeats
	}
	return total
}
