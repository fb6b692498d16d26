package model

// Pattern is a repeated contiguous subsequence of the step or direction
// sequence. Positions are starting indices into the global note sequence,
// ascending, with overlapping windows already removed.
type Pattern struct {
	Key       string `json:"key"`
	Length    int    `json:"length"`
	Positions []int  `json:"positions"`
}

// PatternGroup is a cluster of textually similar patterns. Winner is the
// longest key in the cluster; Display is the winner's key truncated for
// presentation. Positions is the union of all member positions.
type PatternGroup struct {
	Winner    Pattern  `json:"winner"`
	Display   string   `json:"display"`
	Keys      []string `json:"keys"`
	Positions []int    `json:"positions"`
}
