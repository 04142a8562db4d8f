package excel

import "strings"

// DefaultHeaderScanLimit bounds the header search in malformed files.
const DefaultHeaderScanLimit = 20

// LocateHeader scans the leading rows top-down and returns the index of the
// first row whose non-empty cells, normalized and concatenated, contain every
// required token as a substring. Marketplace exports routinely put a title or
// export metadata above the real header row, so row 0 cannot be trusted.
//
// The scan stops after scanLimit rows. When no row matches, found is false and
// the caller decides the fallback; that fallback must be reported as an
// AmbiguousHeader diagnostic.
func LocateHeader(rows [][]string, tokens []string, scanLimit int) (idx int, found bool) {
	if scanLimit <= 0 {
		scanLimit = DefaultHeaderScanLimit
	}
	if len(tokens) == 0 {
		return 0, true
	}

	limit := len(rows)
	if limit > scanLimit {
		limit = scanLimit
	}

	for i := 0; i < limit; i++ {
		var b strings.Builder
		for _, cell := range rows[i] {
			norm := NormalizeColumn(cell)
			if norm == "" {
				continue
			}
			b.WriteString(norm)
			b.WriteString(";")
		}
		haystack := b.String()
		if haystack == "" {
			continue
		}

		matched := true
		for _, tok := range tokens {
			if !strings.Contains(haystack, NormalizeColumn(tok)) {
				matched = false
				break
			}
		}
		if matched {
			return i, true
		}
	}

	return 0, false
}
