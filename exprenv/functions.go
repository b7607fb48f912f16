// Package exprenv exposes the address codec to expr-lang expressions, so
// template engines built on expr can compute cell addresses, e.g.
//
//	address(row + 1, columnIndex("C"))
package exprenv

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/javajack/xladdr"
)

// Functions returns the expr options registering:
//
//	address(row, col int) string         relative address, "C7"
//	absAddress(row, col int) string      pinned address, "$C$7"
//	row(addr string) int                 0-based row
//	column(addr string) int              0-based column
//	columnName(col int) string           column letters
//	columnIndex(name string) int         0-based column
//	offset(addr string, rows, cols int) string
func Functions() []expr.Option {
	return []expr.Option{
		expr.Function("address", func(params ...any) (any, error) {
			c, err := coordinateArgs(params[0], params[1])
			if err != nil {
				return nil, err
			}
			return c.ToAddress(), nil
		}, new(func(int, int) string)),
		expr.Function("absAddress", func(params ...any) (any, error) {
			c, err := coordinateArgs(params[0], params[1])
			if err != nil {
				return nil, err
			}
			return c.WithAbsolute(true, true).ToAddress(), nil
		}, new(func(int, int) string)),
		expr.Function("row", func(params ...any) (any, error) {
			c, err := addressArg(params[0])
			if err != nil {
				return nil, err
			}
			return int(c.Row()), nil
		}, new(func(string) int)),
		expr.Function("column", func(params ...any) (any, error) {
			c, err := addressArg(params[0])
			if err != nil {
				return nil, err
			}
			return int(c.Column()), nil
		}, new(func(string) int)),
		expr.Function("columnName", func(params ...any) (any, error) {
			col, err := index(params[0])
			if err != nil {
				return nil, err
			}
			return xladdr.ColumnName(col), nil
		}, new(func(int) string)),
		expr.Function("columnIndex", func(params ...any) (any, error) {
			name, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", params[0])
			}
			col, err := xladdr.ColumnIndex(name)
			if err != nil {
				return nil, err
			}
			return int(col), nil
		}, new(func(string) int)),
		expr.Function("offset", func(params ...any) (any, error) {
			c, err := addressArg(params[0])
			if err != nil {
				return nil, err
			}
			rows, ok := params[1].(int)
			if !ok {
				return nil, fmt.Errorf("expected int, got %T", params[1])
			}
			cols, ok := params[2].(int)
			if !ok {
				return nil, fmt.Errorf("expected int, got %T", params[2])
			}
			moved, err := c.Offset(rows, cols)
			if err != nil {
				return nil, err
			}
			return moved.ToAddress(), nil
		}, new(func(string, int, int) string)),
	}
}

func addressArg(v any) (xladdr.Coordinate, error) {
	s, ok := v.(string)
	if !ok {
		return xladdr.Coordinate{}, fmt.Errorf("expected string, got %T", v)
	}
	return xladdr.FromAddress(s)
}

func coordinateArgs(row, col any) (xladdr.Coordinate, error) {
	r, err := index(row)
	if err != nil {
		return xladdr.Coordinate{}, fmt.Errorf("row: %w", err)
	}
	c, err := index(col)
	if err != nil {
		return xladdr.Coordinate{}, fmt.Errorf("column: %w", err)
	}
	return xladdr.New(r, c, true, true), nil
}

func index(v any) (uint32, error) {
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("expected int, got %T", v)
	}
	if n < 0 || int64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("index %d: %w", n, xladdr.ErrOverflow)
	}
	return uint32(n), nil
}
