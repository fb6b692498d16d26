package pipeline

import (
	"github.com/bryandebourbon/musicreader/interleave"
	"github.com/bryandebourbon/musicreader/model"
	"github.com/bryandebourbon/musicreader/notes"
	"github.com/bryandebourbon/musicreader/pattern"
	"github.com/bryandebourbon/musicreader/score"
	"github.com/bryandebourbon/musicreader/timeline"
)

// Result is everything one pipeline run produces for one loaded score. All
// of it belongs to that run; a new load rebuilds the whole set.
type Result struct {
	Filename string
	Title    string
	Composer string

	Arena             *interleave.Arena
	Timeline          []model.TimelineEntry
	StepPatterns      map[string]model.Pattern
	DirectionPatterns map[string]model.Pattern
	Groups            []model.PatternGroup
	Warnings          []model.Warning
}

func (r *Result) TotalBeats() float64 {
	return timeline.TotalBeats(r.Arena)
}

func (r *Result) WarningStrings() []string {
	res := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		res = append(res, w.String())
	}
	return res
}

// Run executes the full synchronous pipeline over one score's bytes:
// import, per-part note building, interleaving, then the timeline and
// pattern stages over the completed arena. Import failures are fatal and
// return no Result; everything else accumulates as warnings.
func Run(data []byte, filename string) (*Result, error) {
	doc, err := score.Read(data, filename)
	if err != nil {
		return nil, err
	}

	divisions := doc.FindDivisions()

	parts := make([]interleave.Part, 0, len(doc.Parts))
	var warnings []model.Warning
	for i := range doc.Parts {
		p := &doc.Parts[i]
		measures, warns := notes.BuildPart(p.Id, p, divisions)
		warnings = append(warnings, warns...)
		parts = append(parts, interleave.Part{
			ID:       p.Id,
			Order:    doc.PartOrder(p.Id, i),
			Measures: measures,
		})
	}

	arena := interleave.Merge(parts)

	res := &Result{
		Filename:          filename,
		Title:             doc.Work.Title,
		Composer:          doc.Identification.Composer,
		Arena:             arena,
		Timeline:          timeline.Build(arena),
		StepPatterns:      pattern.Detect(arena.Steps),
		DirectionPatterns: pattern.Detect(arena.Directions),
		Warnings:          warnings,
	}
	res.Groups = pattern.Group(pattern.MergeMaps(res.StepPatterns, res.DirectionPatterns))
	return res, nil
}
