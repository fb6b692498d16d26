package cmd

import (
	"fmt"
	"os"

	"github.com/bryandebourbon/musicreader/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <score>",
	Short: "Analyzes one score",
	Long:  `Analyzes one score`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		analyze(args[0])
	},
}

func analyze(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read score: " + err.Error())
	}
	res, err := pipeline.Run(data, path)
	if err != nil {
		panic("Could not analyze score: " + err.Error())
	}

	if res.Title != "" {
		fmt.Printf("title: %v\n", res.Title)
	}
	if res.Composer != "" {
		fmt.Printf("composer: %v\n", res.Composer)
	}
	fmt.Printf("notes: %v\n", len(res.Arena.Notes))
	fmt.Printf("measures: %v\n", len(res.Arena.Measures))
	fmt.Printf("beats: %v\n", res.TotalBeats())
	fmt.Printf("step patterns: %v\n", len(res.StepPatterns))
	fmt.Printf("direction patterns: %v\n", len(res.DirectionPatterns))

	for _, g := range res.Groups {
		fmt.Printf("pattern %v: %v occurrences at %v\n", g.Display, len(g.Positions), g.Positions)
	}
	for _, w := range res.Warnings {
		fmt.Printf("warning: %v\n", w)
	}
}
