package notes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bryandebourbon/musicreader/model"
	"github.com/bryandebourbon/musicreader/score"
)

// State carries the attributes in force for one part across its measures:
// divisions, the current time signature and the running beam group counter.
type State struct {
	Divisions    int
	TimeBeats    int
	TimeBeatType int

	partID    string
	beamCount int
	inBeam    bool
}

func NewState(partID string, defaultDivisions int) *State {
	if defaultDivisions < 1 {
		defaultDivisions = 1
	}
	return &State{Divisions: defaultDivisions, partID: partID}
}

// declaredTicks is the measure duration implied by the time signature in
// force, in ticks, or 0 when no time signature was ever declared.
func (st *State) declaredTicks() int {
	if st.TimeBeats == 0 || st.TimeBeatType == 0 {
		return 0
	}
	return st.TimeBeats * 4 * st.Divisions / st.TimeBeatType
}

// BuiltMeasure is one measure's notes with the measure duration the timeline
// stage should advance by, in ticks under Divisions.
type BuiltMeasure struct {
	Index         int
	DurationTicks int
	Divisions     int
	Notes         []model.Note
}

// BuildPart translates every measure of one part, accumulating recoverable
// warnings instead of aborting the score.
func BuildPart(partID string, part *score.Part, defaultDivisions int) ([]BuiltMeasure, []model.Warning) {
	st := NewState(partID, defaultDivisions)
	measures := make([]BuiltMeasure, 0, len(part.Measures))
	var warnings []model.Warning
	for i := range part.Measures {
		bm, warns := BuildMeasure(i, &part.Measures[i], st)
		measures = append(measures, bm)
		warnings = append(warnings, warns...)
	}
	return measures, warnings
}

// BuildMeasure walks one measure's events in document order, running a tick
// cursor: chord members and grace notes do not advance it, forward advances
// it, backup rewinds it. Each emitted note is tagged with its start offset.
func BuildMeasure(measureIdx int, m *score.Measure, st *State) (BuiltMeasure, []model.Warning) {
	if m.Attrs.Divisions != 0 {
		st.Divisions = m.Attrs.Divisions
	}
	if m.Attrs.Time.Beats != 0 && m.Attrs.Time.BeatType != 0 {
		st.TimeBeats = m.Attrs.Time.Beats
		st.TimeBeatType = m.Attrs.Time.BeatType
	}

	bm := BuiltMeasure{Index: measureIdx, Divisions: st.Divisions}
	var warnings []model.Warning

	cursor := 0
	maxTick := 0
	lastStart := 0
	noteIdx := -1

	warn := func(kind model.WarningKind, idx int, format string, args ...interface{}) {
		warnings = append(warnings, model.Warning{
			Kind:    kind,
			Part:    st.partID,
			Measure: measureIdx,
			NoteIdx: idx,
			Detail:  fmt.Sprintf(format, args...),
		})
	}

	for _, ev := range m.Events {
		switch v := ev.(type) {
		case score.Note:
			noteIdx++
			dur := 0
			if !v.IsGrace() {
				d, err := parseTicks(v.Duration)
				if err != nil {
					warn(model.WarnMalformedNote, noteIdx, "skipped: %v", err)
					continue
				}
				dur = d
			}

			n := model.Note{
				Step:          v.Pitch.Step,
				Octave:        v.Pitch.Octave,
				Alter:         v.Pitch.Alter,
				DurationTicks: dur,
				Voice:         v.Voice,
				Part:          st.partID,
				Rest:          v.IsRest(),
				ChordMember:   v.IsChord(),
				Grace:         v.IsGrace(),
				Type:          v.Type,
				Divisions:     st.Divisions,
				MeasureIdx:    measureIdx,
			}
			for _, tie := range v.Ties {
				switch tie.Type {
				case "start":
					n.TieStart = true
				case "stop":
					n.TieStop = true
				}
			}
			n.BeamGroup = st.beamGroup(v.Beams)

			if v.IsChord() || v.IsGrace() {
				// sounds with the previous note; no cursor advance
				n.StartTicks = lastStart
			} else {
				n.StartTicks = cursor
				lastStart = cursor
				cursor += dur
			}
			if cursor > maxTick {
				maxTick = cursor
			}
			bm.Notes = append(bm.Notes, n)

		case score.Backup:
			d, err := parseTicks(v.Duration)
			if err != nil {
				warn(model.WarnMalformedNote, -1, "backup ignored: %v", err)
				continue
			}
			cursor -= d
			if cursor < 0 {
				warn(model.WarnTimingInconsistency, -1, "backup of %v ticks rewinds past measure start; clamped", d)
				cursor = 0
			}

		case score.Forward:
			d, err := parseTicks(v.Duration)
			if err != nil {
				warn(model.WarnMalformedNote, -1, "forward ignored: %v", err)
				continue
			}
			cursor += d
			if cursor > maxTick {
				maxTick = cursor
			}
		}
	}

	bm.DurationTicks = maxTick
	if declared := st.declaredTicks(); declared > 0 && maxTick != declared {
		warn(model.WarnTimingInconsistency, -1,
			"measure content is %v ticks but the time signature declares %v; cursor resynchronized", maxTick, declared)
		bm.DurationTicks = declared
	}
	return bm, warnings
}

// beamGroup assigns a stable per-part group id spanning begin..end beams.
func (st *State) beamGroup(beams []score.Beam) string {
	var value string
	for _, b := range beams {
		if b.Number <= 1 {
			value = strings.TrimSpace(b.Value)
			break
		}
	}
	switch value {
	case "begin":
		st.beamCount++
		st.inBeam = true
	case "continue", "end":
		if !st.inBeam {
			st.beamCount++
		}
		st.inBeam = value != "end"
	default:
		return ""
	}
	return fmt.Sprintf("%v-b%v", st.partID, st.beamCount)
}

func parseTicks(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("duration is missing")
	}
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("duration %q is not an integer", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %v is not positive", d)
	}
	return d, nil
}
