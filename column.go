package xladdr

import (
	"fmt"
	"math"
)

// maxOneBased is the largest 1-based row or column number: MaxUint32 + 1.
const maxOneBased = uint64(math.MaxUint32) + 1

// ColumnName converts a 0-based column index to its letters.
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA"
func ColumnName(column uint32) string {
	// MaxUint32 needs 7 letters.
	var buf [7]byte
	i := len(buf)
	n := int64(column)
	for n >= 0 {
		i--
		buf[i] = byte('A' + n%26)
		n = n/26 - 1
	}
	return string(buf[i:])
}

// ColumnIndex converts column letters to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26. Only upper-case A-Z is accepted.
func ColumnIndex(name string) (uint32, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name: %w", ErrSyntax)
	}
	n, err := decodeLetters(name)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return n, nil
}

// decodeLetters sums value(L[i]) * 26^(n-1-i) with A=1 and returns the total
// minus one. It stops as soon as the running total passes maxOneBased.
func decodeLetters(letters string) (uint32, error) {
	var total uint64
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		if !isUpper(ch) {
			return 0, ErrSyntax
		}
		total = total*26 + uint64(ch-'A'+1)
		if total > maxOneBased {
			return 0, ErrOverflow
		}
	}
	return uint32(total - 1), nil
}

// decodeDigits parses a 1-based decimal row number and returns it 0-based.
// Leading zeros are allowed.
func decodeDigits(digits string) (uint32, error) {
	var total uint64
	for i := 0; i < len(digits); i++ {
		ch := digits[i]
		if !isDigit(ch) {
			return 0, ErrSyntax
		}
		total = total*10 + uint64(ch-'0')
		if total > maxOneBased {
			return 0, ErrOverflow
		}
	}
	if total == 0 {
		return 0, ErrZeroRow
	}
	return uint32(total - 1), nil
}
