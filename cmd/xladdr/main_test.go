package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/javajack/xladdr"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestCmd(t *testing.T, format string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	old := outputFormat
	outputFormat = format
	t.Cleanup(func() { outputFormat = old })

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}

func TestRunDecode_JSON(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "json")
	require.NoError(t, runDecode(cmd, []string{"$CV23", "B$5"}))

	var records []coordinateRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, coordinateRecord{Address: "$CV23", Row: 22, Column: 99, RelativeRow: true}, records[0])
	assert.Equal(t, coordinateRecord{Address: "B$5", Row: 4, Column: 1, RelativeColumn: true}, records[1])
}

func TestRunDecode_YAML(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "yaml")
	require.NoError(t, runDecode(cmd, []string{"AAA1"}))

	var records []coordinateRecord
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, uint32(702), records[0].Column)
	assert.True(t, records[0].RelativeRow)
}

func TestRunDecode_Human(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "human")
	require.NoError(t, runDecode(cmd, []string{"ZZ100"}))

	output := out.String()
	assert.Contains(t, output, "ADDRESS")
	assert.Contains(t, output, "ZZ100")
	assert.Contains(t, output, "701")
	assert.Contains(t, output, "99")
}

func TestRunDecode_Invalid(t *testing.T) {
	cmd, out, errOut := newTestCmd(t, "json")
	err := runDecode(cmd, []string{"A1", "Hello World", "A0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, xladdr.ErrSyntax)
	assert.ErrorIs(t, err, xladdr.ErrZeroRow)
	assert.Contains(t, err.Error(), "2 of 3 addresses failed")
	assert.Contains(t, errOut.String(), `"Hello World"`)

	var records []coordinateRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	assert.Len(t, records, 1)
}

func TestRunDecode_UnknownFormat(t *testing.T) {
	cmd, _, _ := newTestCmd(t, "xml")
	err := runDecode(cmd, []string{"A1"})
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRunEncode(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "json")
	encodeRow, encodeColumn, encodeAbsRow, encodeAbsColumn = 22, 99, false, true
	t.Cleanup(func() { encodeRow, encodeColumn, encodeAbsRow, encodeAbsColumn = 0, 0, false, false })

	require.NoError(t, runEncode(cmd, nil))

	var records []coordinateRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "$CV23", records[0].Address)
}

func TestRunOffset(t *testing.T) {
	cmd, out, _ := newTestCmd(t, "json")
	require.NoError(t, runOffset(cmd, []string{"$B2", "3", "5"}))

	var records []coordinateRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "$B5", records[0].Address)
}

func TestRunOffset_Errors(t *testing.T) {
	cmd, _, _ := newTestCmd(t, "json")
	assert.ErrorIs(t, runOffset(cmd, []string{"A1", "-1", "0"}), xladdr.ErrOverflow)
	assert.ErrorIs(t, runOffset(cmd, []string{"a1", "1", "0"}), xladdr.ErrSyntax)
	assert.ErrorContains(t, runOffset(cmd, []string{"A1", "x", "0"}), "invalid ROWS")
	assert.ErrorContains(t, runOffset(cmd, []string{"A1", "0", "y"}), "invalid COLUMNS")
}

func TestRootCommand_Decode(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"decode", "--format", "json", "$A$1"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		outputFormat = "human"
	})

	require.NoError(t, Execute())
	assert.Contains(t, out.String(), `"address": "$A$1"`)
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runVersion(cmd, []string{}))
	output := buf.String()
	assert.Contains(t, output, "xladdr dev")
	assert.Contains(t, output, "Go version:")
}
