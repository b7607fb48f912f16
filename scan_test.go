package xladdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanAddress_Parts(t *testing.T) {
	tests := map[string]addressParts{
		"A1":      {letters: "A", digits: "1"},
		"$CV23":   {absColumn: true, letters: "CV", digits: "23"},
		"CV$23":   {letters: "CV", absRow: true, digits: "23"},
		"$XFD$99": {absColumn: true, letters: "XFD", absRow: true, digits: "99"},
		"AB007":   {letters: "AB", digits: "007"},
	}
	for in, expected := range tests {
		p, ok := scanAddress(in)
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, expected, p, "input %q", in)
	}
}

func TestScanAddress_Rejects(t *testing.T) {
	cases := []string{
		"",
		"$",
		"$$",
		"A",
		"23",
		"$23",
		"a1",
		"Ab1",
		"A1 ",
		" A1",
		"A1X",
		"A1$",
		"A$$1",
		"$$A1",
		"A$B1",
		"A1:B2",
		"Sheet1!A1",
		"Hello World",
		"É1",
		"A\x001",
		"A１",
	}
	for _, in := range cases {
		_, ok := scanAddress(in)
		assert.False(t, ok, "input %q", in)
	}
}
