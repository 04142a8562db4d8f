package report

import (
	"github.com/shopspring/decimal"

	"github.com/KostinaAnya/Exel-Analyzer/internal/model"
)

// Canonical column keys shared by the three sources.
const (
	ColArticle  = "артикул"
	ColStatus   = "статус"
	ColRevenue  = "сумма итого, руб."
	ColUnitCost = "закупочная цена"
)

// Aggregate holds the three per-article measures joined over the article
// universe. The universe is the ordered set of distinct non-missing articles
// from the orders file; articles seen only in revenue or costs are excluded
// on purpose — the report is order-centric.
type Aggregate struct {
	// Articles in first-appearance order.
	Articles  []string
	Delivered map[string]int
	Cancelled map[string]int
	// Revenue is filled with zero for articles without revenue rows:
	// "no revenue recorded" is a valid actual-revenue statement.
	Revenue map[string]decimal.Decimal
	// UnitCost stays invalid for articles without cost rows: a missing
	// purchase price is not a zero price, and only the profit formula may
	// substitute zero.
	UnitCost map[string]decimal.NullDecimal
}

// Aggregator reconciles the three normalized source tables.
type Aggregator struct{}

// NewAggregator creates an aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate groups the orders by outcome, sums revenue and averages unit
// costs per article, then left-joins both onto the orders-derived universe.
func (a *Aggregator) Aggregate(orders, revenue, costs *model.NormalizedTable) *Aggregate {
	agg := &Aggregate{
		Delivered: make(map[string]int),
		Cancelled: make(map[string]int),
		Revenue:   make(map[string]decimal.Decimal),
		UnitCost:  make(map[string]decimal.NullDecimal),
	}

	seen := make(map[string]struct{})
	for _, row := range orders.Rows {
		article := row[ColArticle].Trimmed()
		if article == "" {
			continue
		}
		if _, ok := seen[article]; !ok {
			seen[article] = struct{}{}
			agg.Articles = append(agg.Articles, article)
		}
		switch Classify(string(row[ColStatus])) {
		case OutcomeDelivered:
			agg.Delivered[article]++
		case OutcomeCancelled:
			agg.Cancelled[article]++
		}
	}

	revenueSums := make(map[string]decimal.Decimal)
	for _, row := range revenue.Rows {
		article := row[ColArticle].Trimmed()
		if article == "" {
			continue
		}
		amount, ok := parseAmount(string(row[ColRevenue]))
		if !ok {
			continue
		}
		revenueSums[article] = revenueSums[article].Add(amount)
	}

	costSums := make(map[string]decimal.Decimal)
	costCounts := make(map[string]int)
	for _, row := range costs.Rows {
		article := row[ColArticle].Trimmed()
		if article == "" {
			continue
		}
		price, ok := parseAmount(string(row[ColUnitCost]))
		if !ok {
			continue
		}
		costSums[article] = costSums[article].Add(price)
		costCounts[article]++
	}

	for _, article := range agg.Articles {
		// Count absence means zero occurrences, never "missing".
		if _, ok := agg.Delivered[article]; !ok {
			agg.Delivered[article] = 0
		}
		if _, ok := agg.Cancelled[article]; !ok {
			agg.Cancelled[article] = 0
		}

		agg.Revenue[article] = revenueSums[article]

		if n := costCounts[article]; n > 0 {
			// Divergent duplicate prices are averaged; a documented
			// simplification carried over from the source system.
			mean := costSums[article].Div(decimal.NewFromInt(int64(n)))
			agg.UnitCost[article] = decimal.NullDecimal{Decimal: mean, Valid: true}
		} else {
			agg.UnitCost[article] = decimal.NullDecimal{}
		}
	}

	return agg
}
