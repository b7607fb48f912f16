package main

import (
	"github.com/spf13/cobra"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "xladdr",
	Short: "Convert spreadsheet A1 addresses to coordinates and back",
	Long: `xladdr decodes A1-style cell addresses such as "$CV23" into zero-based
row/column indices with absolute markers, and encodes coordinates back.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "human", "Output format: human, json, yaml")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(offsetCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
