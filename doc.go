// Package xladdr converts between spreadsheet cell addresses in A1 notation
// (for example "$CV23") and Coordinate values holding zero-based row and
// column indices plus relative/absolute flags for each axis.
//
// Columns use bijective base-26: A=1 ... Z=26, AA=27. There is no digit for
// zero, so ColumnName(25) is "Z" and ColumnName(26) is "AA".
//
// Both axes cover the full uint32 range. FromAddress(c.ToAddress()) == c holds
// for every Coordinate.
package xladdr
