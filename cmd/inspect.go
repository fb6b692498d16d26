package cmd

import (
	"fmt"
	"os"

	"github.com/bryandebourbon/musicreader/pipeline"
	"github.com/bryandebourbon/musicreader/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <score> <notes|timeline|patterns>",
	Short: "Inspects one pipeline stage",
	Long:  `Inspects one pipeline stage`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		inspect(args[0], args[1])
	},
}

func inspect(path string, stage string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read score: " + err.Error())
	}
	res, err := pipeline.Run(data, path)
	if err != nil {
		panic("Could not analyze score: " + err.Error())
	}

	switch stage {
	case "notes":
		for _, n := range res.Arena.Notes {
			fmt.Printf("%04d %v%v part=%v voice=%v measure=%v start=%v dur=%v chord=%v\n",
				n.GlobalIndex, n.StepSymbol(), n.Octave, n.Part, n.Voice, n.MeasureIdx,
				n.StartTicks, n.DurationTicks, n.ChordMember)
		}
	case "timeline":
		for _, e := range res.Timeline {
			fmt.Printf("%8.3f dur=%.3f note=%v\n", e.GlobalTime, e.DurationBeats, e.NoteIndex)
		}
	case "patterns":
		merged := make(map[string][]int)
		for k, p := range res.StepPatterns {
			merged[k] = p.Positions
		}
		for k, p := range res.DirectionPatterns {
			merged[k] = p.Positions
		}
		for _, key := range util.GetKeysSorted(merged) {
			fmt.Printf("key: %v\n", key)
			fmt.Printf("val: %v\n", merged[key])
		}
	default:
		panic("Unknown stage: " + stage)
	}
}
