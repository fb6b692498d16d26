package model

// ScoreMetadata is an optional catalog row for an uploaded score, resolved
// from the metadata table when one is configured.
type ScoreMetadata struct {
	Title    string `json:"title"`
	Composer string `json:"composer"`
	Year     uint   `json:"year,omitempty"`
}
