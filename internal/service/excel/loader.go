package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/KostinaAnya/Exel-Analyzer/internal/model"
)

// ColumnSpec declares one required column of a source table.
type ColumnSpec struct {
	// Key is the canonical column name, used as the NormalizedTable key.
	Key string
	// Tokens are alternative substrings that identify the column when no
	// header cell matches Key exactly. Empty means Key itself.
	Tokens []string
	// AllowPositional permits falling back to the column ordinal (the
	// position of this spec in the declared list) as a last resort.
	AllowPositional bool
}

// TableSpec declares how to read one source table.
type TableSpec struct {
	// Source labels the file in errors and diagnostics (orders, revenue, costs).
	Source  string
	Columns []ColumnSpec
	// HeaderTokens anchor the header search. Usually a subset of the
	// required columns shared by well-formed exports (the identifier
	// column), so that a file missing one measure column still gets a
	// per-column SchemaError instead of a failed header scan. Empty means
	// all column keys.
	HeaderTokens []string
	// ScanLimit caps the header search; zero means DefaultHeaderScanLimit.
	ScanLimit int
}

func (s TableSpec) headerTokens() []string {
	if len(s.HeaderTokens) > 0 {
		return s.HeaderTokens
	}
	tokens := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		tokens = append(tokens, col.Key)
	}
	return tokens
}

func (s TableSpec) keys() []string {
	keys := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		keys = append(keys, col.Key)
	}
	return keys
}

// Loader reads loosely structured spreadsheet exports into NormalizedTables.
type Loader struct{}

// NewLoader creates a loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile reads the table from the first sheet of the workbook at path.
func (l *Loader) LoadFile(path string, spec TableSpec) (*model.NormalizedTable, []model.Diagnostic, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, &model.SourceReadError{Source: spec.Source, Err: err}
	}
	defer wb.Close()
	return l.load(wb, spec)
}

// Load reads the table from a workbook streamed through r.
func (l *Loader) Load(r io.Reader, spec TableSpec) (*model.NormalizedTable, []model.Diagnostic, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, &model.SourceReadError{Source: spec.Source, Err: err}
	}
	defer wb.Close()
	return l.load(wb, spec)
}

func (l *Loader) load(wb *excelize.File, spec TableSpec) (*model.NormalizedTable, []model.Diagnostic, error) {
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, &model.SourceReadError{Source: spec.Source}
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, nil, &model.SourceReadError{Source: spec.Source, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil, &model.SourceReadError{Source: spec.Source}
	}

	var diags []model.Diagnostic

	headerIdx, found := LocateHeader(rows, spec.headerTokens(), spec.ScanLimit)

	var resolved map[string]int
	dataStart := 0
	if found {
		resolved, err = resolveColumns(spec, rows[headerIdx])
		if err != nil {
			return nil, diags, err
		}
		dataStart = headerIdx + 1
	} else {
		// Degraded mode: no recognizable header row. The first row is
		// data and columns are assigned by declared ordinal, for the
		// specs that permit it. Must stay observable to the caller.
		diags = append(diags, model.AmbiguousHeader(spec.Source, spec.headerTokens()))
		resolved, err = resolvePositional(spec, rows[0])
		if err != nil {
			return nil, diags, err
		}
	}

	table := model.NewNormalizedTable(spec.keys())
	for _, raw := range rows[dataStart:] {
		row := make(model.Row, len(spec.Columns))
		for _, col := range spec.Columns {
			idx := resolved[col.Key]
			if idx >= 0 && idx < len(raw) {
				row[col.Key] = model.Cell(raw[idx])
			}
		}
		table.Append(row)
	}

	return table, diags, nil
}

// resolveColumns maps each required column to a header cell index using the
// ordered policy chain: exact normalized match, then token substring match,
// then positional ordinal where the spec allows it.
func resolveColumns(spec TableSpec, header []string) (map[string]int, error) {
	normalized := make([]string, len(header))
	for i, cell := range header {
		normalized[i] = NormalizeColumn(cell)
	}

	resolved := make(map[string]int, len(spec.Columns))
	var missing []string

	for ordinal, col := range spec.Columns {
		idx := findExact(normalized, NormalizeColumn(col.Key))
		if idx < 0 {
			idx = findByTokens(normalized, col)
		}
		if idx < 0 && col.AllowPositional && ordinal < len(header) {
			idx = ordinal
		}
		if idx < 0 {
			missing = append(missing, col.Key)
			continue
		}
		resolved[col.Key] = idx
	}

	if len(missing) > 0 {
		return nil, &model.SchemaError{
			Source:    spec.Source,
			Missing:   missing,
			Available: presentColumns(normalized),
		}
	}
	return resolved, nil
}

// resolvePositional assigns every required column its declared ordinal.
// Used only in degraded mode; specs that forbid positional resolution fail.
func resolvePositional(spec TableSpec, firstRow []string) (map[string]int, error) {
	resolved := make(map[string]int, len(spec.Columns))
	var missing []string

	for ordinal, col := range spec.Columns {
		if !col.AllowPositional || ordinal >= len(firstRow) {
			missing = append(missing, col.Key)
			continue
		}
		resolved[col.Key] = ordinal
	}

	if len(missing) > 0 {
		normalized := make([]string, len(firstRow))
		for i, cell := range firstRow {
			normalized[i] = NormalizeColumn(cell)
		}
		return nil, &model.SchemaError{
			Source:    spec.Source,
			Missing:   missing,
			Available: presentColumns(normalized),
		}
	}
	return resolved, nil
}

func findExact(normalized []string, want string) int {
	for i, h := range normalized {
		if h != "" && h == want {
			return i
		}
	}
	return -1
}

// findByTokens matches containment in both directions: an export column
// «закупочная цена, руб.» satisfies the token «закупочная цена», and the
// short column «цена» satisfies it too.
func findByTokens(normalized []string, col ColumnSpec) int {
	tokens := col.Tokens
	if len(tokens) == 0 {
		tokens = []string{col.Key}
	}
	for _, tok := range tokens {
		want := NormalizeColumn(tok)
		if want == "" {
			continue
		}
		for i, h := range normalized {
			if h == "" {
				continue
			}
			if strings.Contains(h, want) || strings.Contains(want, h) {
				return i
			}
		}
	}
	return -1
}

func presentColumns(normalized []string) []string {
	out := make([]string, 0, len(normalized))
	for _, h := range normalized {
		if h != "" {
			out = append(out, h)
		}
	}
	if len(out) == 0 {
		out = append(out, fmt.Sprintf("(%d unnamed columns)", len(normalized)))
	}
	return out
}
