package xladdr

import (
	"fmt"
	"math"
	"strconv"
)

// Coordinate is a decoded cell address. Row and column are 0-based; the
// relative flags are false when the axis is pinned with "$".
//
// Coordinate is a comparable value type; the zero value is "$A$1".
type Coordinate struct {
	row            uint32
	column         uint32
	relativeRow    bool
	relativeColumn bool
}

// New creates a Coordinate from explicit field values.
func New(row, column uint32, relativeRow, relativeColumn bool) Coordinate {
	return Coordinate{
		row:            row,
		column:         column,
		relativeRow:    relativeRow,
		relativeColumn: relativeColumn,
	}
}

// FromAddress decodes an A1-style address such as "B5", "$A$1" or "$CV23".
// A "$" before the letters pins the column; a "$" before the digits pins the
// row. On failure the returned error is an *AddressParsingError.
func FromAddress(address string) (Coordinate, error) {
	p, ok := scanAddress(address)
	if !ok {
		return Coordinate{}, parsingError(address, ErrSyntax)
	}

	column, err := decodeLetters(p.letters)
	if err != nil {
		return Coordinate{}, parsingError(address, err)
	}
	row, err := decodeDigits(p.digits)
	if err != nil {
		return Coordinate{}, parsingError(address, err)
	}

	return New(row, column, !p.absRow, !p.absColumn), nil
}

// MustFromAddress is like FromAddress but panics on error.
// It is meant for literals known to be valid.
func MustFromAddress(address string) Coordinate {
	c, err := FromAddress(address)
	if err != nil {
		panic(err)
	}
	return c
}

// Row returns the 0-based row index.
func (c Coordinate) Row() uint32 { return c.row }

// Column returns the 0-based column index.
func (c Coordinate) Column() uint32 { return c.column }

// RelativeRow reports whether the row is written without "$".
func (c Coordinate) RelativeRow() bool { return c.relativeRow }

// RelativeColumn reports whether the column is written without "$".
func (c Coordinate) RelativeColumn() bool { return c.relativeColumn }

// ToAddress formats the coordinate, e.g. New(22, 99, true, false) → "$CV23".
// Row numbers are computed in 64 bits, so row MaxUint32 becomes "4294967296".
func (c Coordinate) ToAddress() string {
	// "$" + 7 letters + "$" + 10 digits
	buf := make([]byte, 0, 19)
	if !c.relativeColumn {
		buf = append(buf, '$')
	}
	buf = append(buf, ColumnName(c.column)...)
	if !c.relativeRow {
		buf = append(buf, '$')
	}
	buf = strconv.AppendUint(buf, uint64(c.row)+1, 10)
	return string(buf)
}

// String returns ToAddress.
func (c Coordinate) String() string { return c.ToAddress() }

// WithAbsolute returns a copy of c with the pinned axes replaced.
func (c Coordinate) WithAbsolute(row, column bool) Coordinate {
	return New(c.row, c.column, !row, !column)
}

// Offset moves the relative axes of c by the given deltas, the way a reference
// changes when a cell is copied. Pinned axes keep their index. The error wraps
// ErrOverflow if a moved index would leave [0, MaxUint32].
func (c Coordinate) Offset(rows, columns int) (Coordinate, error) {
	row, column := c.row, c.column
	if c.relativeRow {
		r, ok := shift(row, rows)
		if !ok {
			return Coordinate{}, fmt.Errorf("offset %s by %d rows: %w", c, rows, ErrOverflow)
		}
		row = r
	}
	if c.relativeColumn {
		col, ok := shift(column, columns)
		if !ok {
			return Coordinate{}, fmt.Errorf("offset %s by %d columns: %w", c, columns, ErrOverflow)
		}
		column = col
	}
	return New(row, column, c.relativeRow, c.relativeColumn), nil
}

func shift(index uint32, delta int) (uint32, bool) {
	v := int64(index) + int64(delta)
	if v < 0 || v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

// MarshalText implements encoding.TextMarshaler.
func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(c.ToAddress()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. c is replaced as a whole
// and left untouched on error.
func (c *Coordinate) UnmarshalText(text []byte) error {
	decoded, err := FromAddress(string(text))
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}
