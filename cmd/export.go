package cmd

import (
	"fmt"
	"os"

	"github.com/bryandebourbon/musicreader/pipeline"
	"github.com/bryandebourbon/musicreader/smfexport"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <score> <out.mid>",
	Short: "Exports the playback timeline as a MIDI file",
	Long:  `Exports the playback timeline as a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		export(args[0], args[1])
	},
}

func export(path string, out string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read score: " + err.Error())
	}
	res, err := pipeline.Run(data, path)
	if err != nil {
		panic("Could not analyze score: " + err.Error())
	}

	s := smfexport.Create(res)
	f, err := os.Create(out)
	if err != nil {
		panic("Could not create output file: " + err.Error())
	}
	defer f.Close()
	if _, err := s.WriteTo(f); err != nil {
		panic("Could not write MIDI file: " + err.Error())
	}
	fmt.Printf("Wrote %v notes to %v\n", len(res.Timeline), out)
}
