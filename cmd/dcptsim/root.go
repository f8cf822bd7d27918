package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command when dcptsim is called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "dcptsim",
	Short: "Replay a synthetic memory trace through the delta-correlating prefetcher",
	Long: `dcptsim replays a synthetic or file-based sequence of (pc, addr) cache ` +
		`misses through a delta-correlating prefetcher, backed by a small in-memory ` +
		`reference cache, and reports how many prefetches it issued and how many of ` +
		`them were later used.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
