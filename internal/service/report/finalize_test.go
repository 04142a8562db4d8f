package report_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/KostinaAnya/Exel-Analyzer/internal/service/report"
)

func TestFinalizeProfitFormula(t *testing.T) {
	orders := ordersTable(
		[]string{"A1", "Доставлен"},
		[]string{"A1", "Доставлен"},
		[]string{"A1", "Отменён"},
	)
	revenue := revenueTable([]string{"A1", "500"})
	costs := costsTable(
		[]string{"A1", "40"},
		[]string{"A1", "60"},
	)

	agg := report.NewAggregator().Aggregate(orders, revenue, costs)
	table := report.Finalize(agg)

	if table.RowCount() != 1 {
		t.Fatalf("rows = %d, want 1", table.RowCount())
	}
	row := table.Rows[0]
	if row.Delivered != 2 || row.Cancelled != 1 {
		t.Fatalf("counts = %d/%d, want 2/1", row.Delivered, row.Cancelled)
	}
	if !row.Revenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("Revenue = %s, want 500", row.Revenue)
	}
	if !row.UnitCost.Valid || !row.UnitCost.Decimal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("UnitCost = %+v, want 50", row.UnitCost)
	}
	// profit = 500 − 2×50
	if !row.Profit.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("Profit = %s, want 400", row.Profit)
	}
}

func TestFinalizeMissingCostMeansProfitEqualsRevenue(t *testing.T) {
	orders := ordersTable([]string{"B2", "Доставлен"})
	revenue := revenueTable([]string{"B2", "250"})

	agg := report.NewAggregator().Aggregate(orders, revenue, costsTable())
	table := report.Finalize(agg)

	row := table.Rows[0]
	if row.UnitCost.Valid {
		t.Fatalf("UnitCost = %+v, want missing", row.UnitCost)
	}
	// Zero-cost assumption applies only inside the formula.
	if !row.Profit.Equal(row.Revenue) {
		t.Fatalf("Profit = %s, want %s", row.Profit, row.Revenue)
	}
}

func TestFinalizeMissingRevenueMeansNegativeProfit(t *testing.T) {
	orders := ordersTable(
		[]string{"A1", "Доставлен"},
		[]string{"A1", "Доставлен"},
		[]string{"A1", "Доставлен"},
	)
	costs := costsTable([]string{"A1", "20"})

	agg := report.NewAggregator().Aggregate(orders, revenueTable(), costs)
	table := report.Finalize(agg)

	row := table.Rows[0]
	if !row.Revenue.IsZero() {
		t.Fatalf("Revenue = %s, want 0", row.Revenue)
	}
	// profit = 0 − 3×20
	if !row.Profit.Equal(decimal.NewFromInt(-60)) {
		t.Fatalf("Profit = %s, want -60", row.Profit)
	}
}

func TestFinalizeNoOrdersAtAll(t *testing.T) {
	agg := report.NewAggregator().Aggregate(ordersTable(), revenueTable(), costsTable())
	table := report.Finalize(agg)

	if table.RowCount() != 0 {
		t.Fatalf("rows = %d, want 0", table.RowCount())
	}
	if table.Total.Article != report.TotalLabel {
		t.Fatalf("total label = %q, want %q", table.Total.Article, report.TotalLabel)
	}
	if !table.Total.Revenue.IsZero() || !table.Total.Profit.IsZero() {
		t.Fatalf("empty report total must be zero, got %s/%s", table.Total.Revenue, table.Total.Profit)
	}
}

func TestFinalizeTotalRow(t *testing.T) {
	orders := ordersTable(
		[]string{"A1", "Доставлен"},
		[]string{"A1", "Отменён"},
		[]string{"B2", "Доставлен"},
	)
	revenue := revenueTable(
		[]string{"A1", "100"},
		[]string{"B2", "200"},
	)
	costs := costsTable([]string{"A1", "30"})

	agg := report.NewAggregator().Aggregate(orders, revenue, costs)
	table := report.Finalize(agg)

	total := table.Total
	if total.Article != report.TotalLabel {
		t.Fatalf("total label = %q, want %q", total.Article, report.TotalLabel)
	}

	sumDelivered, sumCancelled := 0, 0
	sumRevenue, sumProfit := decimal.Zero, decimal.Zero
	for _, row := range table.Rows {
		sumDelivered += row.Delivered
		sumCancelled += row.Cancelled
		sumRevenue = sumRevenue.Add(row.Revenue)
		sumProfit = sumProfit.Add(row.Profit)
	}

	if total.Delivered != sumDelivered || total.Cancelled != sumCancelled {
		t.Fatalf("total counts = %d/%d, want %d/%d", total.Delivered, total.Cancelled, sumDelivered, sumCancelled)
	}
	if !total.Revenue.Equal(sumRevenue) {
		t.Fatalf("total revenue = %s, want %s", total.Revenue, sumRevenue)
	}
	if !total.Profit.Equal(sumProfit) {
		t.Fatalf("total profit = %s, want %s", total.Profit, sumProfit)
	}
	// Sums of per-unit prices are not meaningful.
	if total.UnitCost.Valid {
		t.Fatalf("total unit cost = %+v, want missing", total.UnitCost)
	}
}
