package main

import (
	"fmt"
	"strconv"

	"github.com/javajack/xladdr"
	"github.com/spf13/cobra"
)

var offsetCmd = &cobra.Command{
	Use:   "offset ADDRESS ROWS COLUMNS",
	Short: "Move an address the way copying a cell would",
	Long: `Move the relative parts of ADDRESS by ROWS and COLUMNS. Axes pinned with "$"
keep their position. Put "--" before negative deltas:

  xladdr offset -- D4 -1 -2`,
	Args: cobra.ExactArgs(3),
	RunE: runOffset,
}

func runOffset(cmd *cobra.Command, args []string) error {
	c, err := xladdr.FromAddress(args[0])
	if err != nil {
		return err
	}
	rows, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid ROWS %q: %w", args[1], err)
	}
	cols, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid COLUMNS %q: %w", args[2], err)
	}

	moved, err := c.Offset(rows, cols)
	if err != nil {
		return err
	}
	return writeRecords(cmd.OutOrStdout(), outputFormat, []coordinateRecord{newRecord(moved)})
}
