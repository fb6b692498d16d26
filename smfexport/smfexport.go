package smfexport

import (
	"math"
	"sort"

	"github.com/bryandebourbon/musicreader/constants"
	"github.com/bryandebourbon/musicreader/pipeline"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type absEvent struct {
	tick  uint32
	off   bool
	key   uint8
	order int
}

// Create renders the run's timeline as a single-track SMF with metric
// resolution constants.ExportTicksPerQuarter. Tied note chains sound as one
// event: tie-stop notes re-attack nothing and tie-start notes are not
// released, matching how a player would hold through the tie.
func Create(res *pipeline.Result) *smf.SMF {
	var out smf.SMF
	out.TimeFormat = smf.MetricTicks(constants.ExportTicksPerQuarter)

	var events []absEvent
	for _, e := range res.Timeline {
		n := res.Arena.Notes[e.NoteIndex]
		if n.Rest || n.Grace {
			continue
		}
		pitch := n.PitchNumber()
		if pitch < 0 || pitch > 127 || e.DurationBeats <= 0 {
			continue
		}
		start := beatTicks(e.GlobalTime)
		end := beatTicks(e.GlobalTime + e.DurationBeats)
		if !n.TieStop {
			events = append(events, absEvent{tick: start, key: uint8(pitch), order: len(events)})
		}
		if !n.TieStart {
			events = append(events, absEvent{tick: end, off: true, key: uint8(pitch), order: len(events)})
		}
	}

	// note-offs before note-ons at equal ticks so repeated pitches retrigger
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		if events[i].off != events[j].off {
			return events[i].off
		}
		return events[i].order < events[j].order
	})

	var track smf.Track
	track = append(track, smf.Event{Delta: 0, Message: smf.MetaTempo(120)})

	var lastTick uint32
	for _, ev := range events {
		delta := ev.tick - lastTick
		lastTick = ev.tick
		var msg midi.Message
		if ev.off {
			msg = midi.NoteOff(0, ev.key)
		} else {
			msg = midi.NoteOn(0, ev.key, 100)
		}
		track = append(track, smf.Event{Delta: delta, Message: smf.Message(msg)})
	}
	track.Close(0)

	out.Tracks = append(out.Tracks, track)
	return &out
}

func beatTicks(beats float64) uint32 {
	return uint32(math.Round(beats * float64(constants.ExportTicksPerQuarter)))
}
