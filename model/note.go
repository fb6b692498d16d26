package model

// RestStep is the step symbol used for rested events in the step sequence.
const RestStep = "r"

// Direction symbols for the contour sequence. They are deliberately outside
// the a-g/r step alphabet so merged pattern maps never collide on key.
const (
	DirUp   = "+"
	DirDown = "-"
	DirSame = "="
)

// Note is one sounding or rested event after the per-measure builder has
// resolved its start offset.
type Note struct {
	Step          string `json:"step"`
	Octave        int    `json:"octave"`
	Alter         int    `json:"alter"`
	DurationTicks int    `json:"duration_ticks"`
	Voice         string `json:"voice"`
	Part          string `json:"part"`
	Rest          bool   `json:"rest"`
	ChordMember   bool   `json:"chord_member"`
	Grace         bool   `json:"grace"`
	TieStart      bool   `json:"tie_start"`
	TieStop       bool   `json:"tie_stop"`
	BeamGroup     string `json:"beam_group,omitempty"`
	Type          string `json:"type,omitempty"`

	// StartTicks is the offset from the start of the note's measure, after
	// forward/backup adjustments. Chord members share their head's offset.
	StartTicks int `json:"start_ticks"`

	// Divisions is the ticks-per-quarter value in force for this note's
	// measure. Kept per note because parts may override it independently.
	Divisions int `json:"divisions"`

	MeasureIdx int `json:"measure_idx"`

	// GlobalIndex is assigned once by the interleaver and immutable after.
	GlobalIndex int `json:"global_index"`
}

var stepSemitones = map[string]int{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

// PitchNumber maps the note to a MIDI key number. Rests return -1.
func (n *Note) PitchNumber() int {
	if n.Rest {
		return -1
	}
	base, ok := stepSemitones[n.Step]
	if !ok {
		return -1
	}
	return base + (n.Octave+1)*12 + n.Alter
}

// StepSymbol is the note's contribution to the step sequence: the lowercase
// step letter, or RestStep for rests.
func (n *Note) StepSymbol() string {
	if n.Rest || len(n.Step) == 0 {
		return RestStep
	}
	c := n.Step[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return string(c)
}
