package cmd

import (
	"fmt"
	"os"

	"github.com/bryandebourbon/musicreader/pipeline"
	"github.com/bryandebourbon/musicreader/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Creates a corpus report",
	Long:  `Creates a corpus report`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		report(args[0])
	},
}

type corpusReport struct {
	numFiles    int64
	numFailed   int64
	numNotes    int64
	numWarnings int64
	totalBeats  float64
	numPatterns []int64
	numGroups   int64
}

func analyzeCorpus(dir string) corpusReport {
	var report corpusReport

	paths := util.GatherAllScorePaths(dir, 0)
	for i, path := range paths {
		fmt.Printf("Processing %v of %v scores\n", i+1, len(paths))
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			report.numFailed += 1
			continue
		}
		res, err := pipeline.Run(data, path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			report.numFailed += 1
			continue
		}
		report.numFiles += 1
		report.numNotes += int64(len(res.Arena.Notes))
		report.numWarnings += int64(len(res.Warnings))
		report.totalBeats += res.TotalBeats()
		report.numPatterns = append(report.numPatterns,
			int64(len(res.StepPatterns)+len(res.DirectionPatterns)))
		report.numGroups += int64(len(res.Groups))
	}
	return report
}

func report(dir string) {
	r := analyzeCorpus(dir)
	fmt.Printf("report.numFiles: %v\n", r.numFiles)
	fmt.Printf("report.numFailed: %v\n", r.numFailed)
	fmt.Printf("report.numNotes: %v\n", r.numNotes)
	fmt.Printf("report.numWarnings: %v\n", r.numWarnings)
	fmt.Printf("report.totalBeats: %v\n", r.totalBeats)
	fmt.Printf("report.numGroups: %v\n", r.numGroups)
	fmt.Printf("total patterns: %v\n", util.Sum(r.numPatterns))
}
