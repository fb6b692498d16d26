package model

// TimelineEntry places one note on the absolute beat timeline. NoteIndex is
// the GlobalIndex of the note it was produced from.
type TimelineEntry struct {
	GlobalTime    float64 `json:"global_time"`
	DurationBeats float64 `json:"duration_beats"`
	NoteIndex     int     `json:"note_index"`
}
