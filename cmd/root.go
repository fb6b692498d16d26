package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "musicreader",
	Short: "MusicXML score analysis",
	Long:  `Reads MusicXML scores and derives a note model, a playback timeline and recurring melodic patterns.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
