package report

import (
	"github.com/shopspring/decimal"

	"github.com/KostinaAnya/Exel-Analyzer/internal/model"
)

// TotalLabel names the synthetic last row of the report.
const TotalLabel = "Итого"

// Finalize computes profit per article and appends the total row.
//
// profit = revenue − delivered × unit cost, with a missing unit cost taken
// as zero inside the formula only; the displayed unit cost stays missing.
// The total row sums delivered, cancelled, revenue and profit; its unit cost
// is always missing because per-unit prices do not add up meaningfully.
func Finalize(agg *Aggregate) *model.ReportTable {
	table := &model.ReportTable{
		Rows: make([]model.ReportRow, 0, len(agg.Articles)),
	}

	totalDelivered := 0
	totalCancelled := 0
	totalRevenue := decimal.Zero
	totalProfit := decimal.Zero

	for _, article := range agg.Articles {
		delivered := agg.Delivered[article]
		revenue := agg.Revenue[article]
		unitCost := agg.UnitCost[article]

		costOrZero := decimal.Zero
		if unitCost.Valid {
			costOrZero = unitCost.Decimal
		}
		profit := revenue.Sub(costOrZero.Mul(decimal.NewFromInt(int64(delivered))))

		table.Rows = append(table.Rows, model.ReportRow{
			Article:   article,
			Delivered: delivered,
			Cancelled: agg.Cancelled[article],
			Revenue:   revenue,
			UnitCost:  unitCost,
			Profit:    profit,
		})

		totalDelivered += delivered
		totalCancelled += agg.Cancelled[article]
		totalRevenue = totalRevenue.Add(revenue)
		totalProfit = totalProfit.Add(profit)
	}

	table.Total = model.ReportRow{
		Article:   TotalLabel,
		Delivered: totalDelivered,
		Cancelled: totalCancelled,
		Revenue:   totalRevenue,
		Profit:    totalProfit,
	}

	return table
}
