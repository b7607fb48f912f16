package main

import (
	"errors"
	"fmt"

	"github.com/javajack/xladdr"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode ADDRESS...",
	Short: "Decode A1 addresses into coordinates",
	Long:  `Decode one or more A1 addresses (e.g. "B5", "$CV23", "A$1") into zero-based coordinates.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	records := make([]coordinateRecord, 0, len(args))
	var errs []error
	for _, arg := range args {
		c, err := xladdr.FromAddress(arg)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			errs = append(errs, err)
			continue
		}
		records = append(records, newRecord(c))
	}

	if err := writeRecords(cmd.OutOrStdout(), outputFormat, records); err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d addresses failed: %w", len(errs), len(args), errors.Join(errs...))
	}
	return nil
}
