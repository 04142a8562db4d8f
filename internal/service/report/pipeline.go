package report

import (
	"go.uber.org/zap"

	"github.com/KostinaAnya/Exel-Analyzer/internal/model"
	"github.com/KostinaAnya/Exel-Analyzer/internal/service/excel"
)

// Source labels used in errors and diagnostics.
const (
	SourceOrders  = "orders"
	SourceRevenue = "revenue"
	SourceCosts   = "costs"
)

// Options tune how sources are read.
type Options struct {
	// ScanLimit caps the header search per file; zero applies the default.
	ScanLimit int
	// AllowPositional permits the degraded positional fallback when a
	// header row cannot be located. Off by default: with it off, a file
	// whose columns cannot be resolved fails with a SchemaError instead
	// of being guessed at.
	AllowPositional bool
}

// OrdersSpec declares the orders export schema. The header search anchors on
// the article column shared by all three exports.
func OrdersSpec(opts Options) excel.TableSpec {
	return excel.TableSpec{
		Source:       SourceOrders,
		ScanLimit:    opts.ScanLimit,
		HeaderTokens: []string{ColArticle},
		Columns: []excel.ColumnSpec{
			{Key: ColArticle, AllowPositional: opts.AllowPositional},
			{Key: ColStatus, AllowPositional: opts.AllowPositional},
		},
	}
}

// RevenueSpec declares the revenue export schema. These exports carry a
// banner row above the real header, which the locator skips; «сумма итого»
// alone identifies the revenue column when the units suffix differs.
func RevenueSpec(opts Options) excel.TableSpec {
	return excel.TableSpec{
		Source:       SourceRevenue,
		ScanLimit:    opts.ScanLimit,
		HeaderTokens: []string{ColArticle},
		Columns: []excel.ColumnSpec{
			{Key: ColArticle, AllowPositional: opts.AllowPositional},
			{Key: ColRevenue, Tokens: []string{"сумма итого"}, AllowPositional: opts.AllowPositional},
		},
	}
}

// CostsSpec declares the purchase-costs export schema.
func CostsSpec(opts Options) excel.TableSpec {
	return excel.TableSpec{
		Source:       SourceCosts,
		ScanLimit:    opts.ScanLimit,
		HeaderTokens: []string{ColArticle},
		Columns: []excel.ColumnSpec{
			{Key: ColArticle, AllowPositional: opts.AllowPositional},
			{Key: ColUnitCost, Tokens: []string{"закупочная цена", "цена"}, AllowPositional: opts.AllowPositional},
		},
	}
}

// Pipeline runs one report request end to end: three loads in fixed order,
// aggregation, finalization. Stateless; safe to share across requests.
type Pipeline struct {
	loader     *excel.Loader
	aggregator *Aggregator
	opts       Options
	log        *zap.Logger
}

// NewPipeline creates a pipeline.
func NewPipeline(opts Options, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		loader:     excel.NewLoader(),
		aggregator: NewAggregator(),
		opts:       opts,
		log:        log,
	}
}

// BuildReport reconciles the three exports into the profitability report.
// The first schema or read failure aborts the run; partial reports are never
// returned. Non-fatal diagnostics from all loads are returned together.
func (p *Pipeline) BuildReport(ordersPath, revenuePath, costsPath string) (*model.ReportTable, []model.Diagnostic, error) {
	var diags []model.Diagnostic

	load := func(path string, spec excel.TableSpec) (*model.NormalizedTable, error) {
		table, d, err := p.loader.LoadFile(path, spec)
		diags = append(diags, d...)
		if err != nil {
			p.log.Warn("load failed",
				zap.String("source", spec.Source),
				zap.Error(err))
			return nil, err
		}
		p.log.Info("source loaded",
			zap.String("source", spec.Source),
			zap.Int("rows", table.Len()),
			zap.Int("warnings", len(d)))
		return table, nil
	}

	orders, err := load(ordersPath, OrdersSpec(p.opts))
	if err != nil {
		return nil, diags, err
	}
	revenue, err := load(revenuePath, RevenueSpec(p.opts))
	if err != nil {
		return nil, diags, err
	}
	costs, err := load(costsPath, CostsSpec(p.opts))
	if err != nil {
		return nil, diags, err
	}

	agg := p.aggregator.Aggregate(orders, revenue, costs)
	table := Finalize(agg)

	p.log.Info("report built",
		zap.Int("articles", table.RowCount()),
		zap.Int("warnings", len(diags)))

	return table, diags, nil
}
