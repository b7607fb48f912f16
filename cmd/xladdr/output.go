package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/javajack/xladdr"
	"gopkg.in/yaml.v3"
)

type coordinateRecord struct {
	Address        string `json:"address" yaml:"address"`
	Row            uint32 `json:"row" yaml:"row"`
	Column         uint32 `json:"column" yaml:"column"`
	RelativeRow    bool   `json:"relative_row" yaml:"relative_row"`
	RelativeColumn bool   `json:"relative_column" yaml:"relative_column"`
}

func newRecord(c xladdr.Coordinate) coordinateRecord {
	return coordinateRecord{
		Address:        c.ToAddress(),
		Row:            c.Row(),
		Column:         c.Column(),
		RelativeRow:    c.RelativeRow(),
		RelativeColumn: c.RelativeColumn(),
	}
}

func writeRecords(w io.Writer, format string, records []coordinateRecord) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(records); err != nil {
			encoder.Close()
			return err
		}
		return encoder.Close()
	case "human":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ADDRESS\tROW\tCOLUMN\tRELATIVE ROW\tRELATIVE COLUMN")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%t\t%t\n", r.Address, r.Row, r.Column, r.RelativeRow, r.RelativeColumn)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want human, json or yaml)", format)
	}
}
