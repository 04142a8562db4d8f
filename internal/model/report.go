package model

import "github.com/shopspring/decimal"

// ReportRow is one article line of the profitability report.
// UnitCost stays invalid when the costs file has no row for the article;
// the profit formula treats that as zero but the display keeps it missing.
type ReportRow struct {
	Article   string
	Delivered int
	Cancelled int
	Revenue   decimal.Decimal
	UnitCost  decimal.NullDecimal
	Profit    decimal.Decimal
}

// ReportTable is the finished report: article rows in the order the
// articles were first seen in the orders file, then exactly one total row.
type ReportTable struct {
	Rows  []ReportRow
	Total ReportRow
}

// RowCount returns the number of article rows, excluding the total row.
func (t *ReportTable) RowCount() int {
	return len(t.Rows)
}
