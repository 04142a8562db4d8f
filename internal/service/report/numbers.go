package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads a money cell from an export. Russian spreadsheets use
// space (often non-breaking) thousand separators and a comma decimal mark:
// "1 234,56". A cell that does not parse counts as absent.
func parseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
