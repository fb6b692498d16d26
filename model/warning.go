package model

import "fmt"

type WarningKind string

const (
	// WarnMalformedNote: one note was unusable and skipped.
	WarnMalformedNote WarningKind = "malformed-note"
	// WarnTimingInconsistency: a measure's walked duration disagreed with
	// its declared duration and the cursor was resynchronized.
	WarnTimingInconsistency WarningKind = "timing-inconsistency"
)

// Warning is a recoverable condition attributed to a specific part, measure
// and note index. NoteIdx is -1 when the condition is measure-level.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Part    string      `json:"part"`
	Measure int         `json:"measure"`
	NoteIdx int         `json:"note_idx"`
	Detail  string      `json:"detail"`
}

func (w Warning) String() string {
	if w.NoteIdx < 0 {
		return fmt.Sprintf("%v: part %v measure %v: %v", w.Kind, w.Part, w.Measure, w.Detail)
	}
	return fmt.Sprintf("%v: part %v measure %v note %v: %v", w.Kind, w.Part, w.Measure, w.NoteIdx, w.Detail)
}
