package xladdr

// addressParts is the lexical split of an address:
//
//	[$] letters [$] digits
type addressParts struct {
	absColumn bool   // "$" before the letters
	letters   string // A-Z, non-empty
	absRow    bool   // "$" before the digits
	digits    string // 0-9, non-empty
}

// scanAddress matches s against the address grammar. The whole input must be
// consumed; any leftover byte fails the match.
func scanAddress(s string) (addressParts, bool) {
	var p addressParts
	i := 0

	if i < len(s) && s[i] == '$' {
		p.absColumn = true
		i++
	}

	start := i
	for i < len(s) && isUpper(s[i]) {
		i++
	}
	if i == start {
		return addressParts{}, false
	}
	p.letters = s[start:i]

	if i < len(s) && s[i] == '$' {
		p.absRow = true
		i++
	}

	start = i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return addressParts{}, false
	}
	p.digits = s[start:i]

	if i != len(s) {
		return addressParts{}, false
	}
	return p, true
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
