package main

import (
	"github.com/javajack/xladdr"
	"github.com/spf13/cobra"
)

var (
	encodeRow       uint32
	encodeColumn    uint32
	encodeAbsRow    bool
	encodeAbsColumn bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a coordinate as an A1 address",
	Long:  "Encode a zero-based row/column pair as an A1 address, optionally pinning either axis with \"$\".",
	Args:  cobra.NoArgs,
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().Uint32Var(&encodeRow, "row", 0, "Zero-based row index")
	encodeCmd.Flags().Uint32Var(&encodeColumn, "column", 0, "Zero-based column index")
	encodeCmd.Flags().BoolVar(&encodeAbsRow, "abs-row", false, "Pin the row ($ before the digits)")
	encodeCmd.Flags().BoolVar(&encodeAbsColumn, "abs-column", false, "Pin the column ($ before the letters)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	c := xladdr.New(encodeRow, encodeColumn, !encodeAbsRow, !encodeAbsColumn)
	return writeRecords(cmd.OutOrStdout(), outputFormat, []coordinateRecord{newRecord(c)})
}
