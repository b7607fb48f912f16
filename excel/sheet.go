// Package excel reads and writes excelize worksheet cells addressed by
// xladdr.Coordinate values.
package excel

import (
	"errors"
	"fmt"

	"github.com/javajack/xladdr"
	"github.com/xuri/excelize/v2"
)

// ErrOutOfSheet is returned for coordinates past the worksheet limits
// (excelize.TotalRows rows, excelize.MaxColumns columns).
var ErrOutOfSheet = errors.New("coordinate outside worksheet limits")

// CellName returns the relative cell name excelize expects for c, e.g. "CV23".
// The absolute markers of c are dropped: excelize cell APIs address by
// position only.
func CellName(c xladdr.Coordinate) (string, error) {
	if !InSheet(c) {
		return "", fmt.Errorf("cell %s: %w", c, ErrOutOfSheet)
	}
	return c.WithAbsolute(false, false).ToAddress(), nil
}

// InSheet reports whether c lies inside the worksheet limits.
func InSheet(c xladdr.Coordinate) bool {
	return c.Row() < excelize.TotalRows && c.Column() < excelize.MaxColumns
}

// Coordinates converts c to excelize's 1-based (col, row) pair.
func Coordinates(c xladdr.Coordinate) (col, row int) {
	return int(c.Column()) + 1, int(c.Row()) + 1
}

// FromCoordinates converts excelize's 1-based (col, row) pair to a relative
// Coordinate.
func FromCoordinates(col, row int) (xladdr.Coordinate, error) {
	if col < 1 || row < 1 || col > excelize.MaxColumns || row > excelize.TotalRows {
		return xladdr.Coordinate{}, fmt.Errorf("coordinates (%d, %d): %w", col, row, ErrOutOfSheet)
	}
	return xladdr.New(uint32(row-1), uint32(col-1), true, true), nil
}

// Sheet is a worksheet of an excelize workbook.
type Sheet struct {
	file *excelize.File
	name string
	opts *options
}

// NewSheet binds the named worksheet of f.
func NewSheet(f *excelize.File, name string, opts ...Option) (*Sheet, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}
	if idx < 0 {
		if !o.create {
			return nil, fmt.Errorf("sheet %q does not exist", name)
		}
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
	}
	return &Sheet{file: f, name: name, opts: o}, nil
}

// Name returns the worksheet name.
func (s *Sheet) Name() string { return s.name }

// Get returns the formatted value of the cell at c.
func (s *Sheet) Get(c xladdr.Coordinate) (string, error) {
	cell, err := CellName(c)
	if err != nil {
		return "", err
	}
	v, err := s.file.GetCellValue(s.name, cell)
	if err != nil {
		return "", fmt.Errorf("get %s!%s: %w", s.name, cell, err)
	}
	return v, nil
}

// Set writes value to the cell at c.
func (s *Sheet) Set(c xladdr.Coordinate, value any) error {
	cell, err := CellName(c)
	if err != nil {
		return err
	}
	if err := s.file.SetCellValue(s.name, cell, value); err != nil {
		return fmt.Errorf("set %s!%s: %w", s.name, cell, err)
	}
	return nil
}

// Formula returns the formula of the cell at c, or "" if it has none.
func (s *Sheet) Formula(c xladdr.Coordinate) (string, error) {
	cell, err := CellName(c)
	if err != nil {
		return "", err
	}
	formula, err := s.file.GetCellFormula(s.name, cell)
	if err != nil {
		return "", fmt.Errorf("get formula %s!%s: %w", s.name, cell, err)
	}
	return formula, nil
}

// SetFormula sets the formula of the cell at c. The formula is stored as is,
// without a leading "=".
func (s *Sheet) SetFormula(c xladdr.Coordinate, formula string) error {
	cell, err := CellName(c)
	if err != nil {
		return err
	}
	if err := s.file.SetCellFormula(s.name, cell, formula); err != nil {
		return fmt.Errorf("set formula %s!%s: %w", s.name, cell, err)
	}
	return nil
}

// Used returns the coordinates of all non-empty cells, row by row.
func (s *Sheet) Used() ([]xladdr.Coordinate, error) {
	rows, err := s.file.GetRows(s.name)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", s.name, err)
	}

	var used []xladdr.Coordinate
	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if v == "" {
				continue
			}
			c := xladdr.New(uint32(rowIdx), uint32(colIdx), true, true)
			if s.opts.absolute {
				c = c.WithAbsolute(true, true)
			}
			used = append(used, c)
		}
	}
	return used, nil
}
