package xladdr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports that the input does not match the address grammar.
	ErrSyntax = errors.New("address syntax")
	// ErrOverflow reports a row or column that does not fit in uint32.
	ErrOverflow = errors.New("index out of range")
	// ErrZeroRow reports a row number of 0. Rows are numbered from 1.
	ErrZeroRow = errors.New("row number 0")
)

// AddressParsingError is returned by FromAddress when the input cannot be
// decoded. Input is the exact text that was passed in.
type AddressParsingError struct {
	Input string
	Err   error // ErrSyntax, ErrOverflow or ErrZeroRow
}

func (e *AddressParsingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid address %q", e.Input)
	}
	return fmt.Sprintf("invalid address %q: %v", e.Input, e.Err)
}

func (e *AddressParsingError) Unwrap() error { return e.Err }

func parsingError(input string, err error) *AddressParsingError {
	return &AddressParsingError{Input: input, Err: err}
}
