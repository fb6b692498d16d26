package model

type UploadResponse struct {
	Id       string `json:"id"`
	Filename string `json:"filename"`
}

type AnalysisResponse struct {
	Id          string          `json:"id"`
	Filename    string          `json:"filename"`
	Title       string          `json:"title,omitempty"`
	Composer    string          `json:"composer,omitempty"`
	Metadata    *ScoreMetadata  `json:"metadata,omitempty"`
	NumNotes    int             `json:"num_notes"`
	NumMeasures int             `json:"num_measures"`
	TotalBeats  float64         `json:"total_beats"`
	Timeline    []TimelineEntry `json:"timeline"`
	Groups      []PatternGroup  `json:"groups"`
	Warnings    []string        `json:"warnings"`
}

type PatternsResponse struct {
	Id     string         `json:"id"`
	Groups []PatternGroup `json:"groups"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
