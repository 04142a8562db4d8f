package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/KostinaAnya/Exel-Analyzer/internal/model"
)

// ReportSheetName is the single sheet of the generated workbook.
const ReportSheetName = "Отчет"

// Exporter writes a finished report into an xlsx workbook.
type Exporter struct{}

// NewExporter creates an exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders the report table. Column order is fixed; a missing unit
// cost stays an empty cell, never 0. The caller owns closing the file.
func (e *Exporter) Export(report *model.ReportTable) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", ReportSheetName)

	headers := []string{
		"Артикул",
		"Продано заказов",
		"Отменено заказов",
		"Сумма итого, руб.",
		"Закупочная цена за шт",
		"Прибыль",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(ReportSheetName, cell, h); err != nil {
			return nil, err
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(ReportSheetName, 1, 1, headerStyle)

	writeRow := func(rowNum int, r model.ReportRow) {
		f.SetCellValue(ReportSheetName, fmt.Sprintf("A%d", rowNum), r.Article)
		f.SetCellValue(ReportSheetName, fmt.Sprintf("B%d", rowNum), r.Delivered)
		f.SetCellValue(ReportSheetName, fmt.Sprintf("C%d", rowNum), r.Cancelled)
		f.SetCellValue(ReportSheetName, fmt.Sprintf("D%d", rowNum), r.Revenue.InexactFloat64())
		if r.UnitCost.Valid {
			f.SetCellValue(ReportSheetName, fmt.Sprintf("E%d", rowNum), r.UnitCost.Decimal.InexactFloat64())
		}
		f.SetCellValue(ReportSheetName, fmt.Sprintf("F%d", rowNum), r.Profit.InexactFloat64())
	}

	for i, r := range report.Rows {
		writeRow(i+2, r)
	}
	writeRow(len(report.Rows)+2, report.Total)

	f.SetColWidth(ReportSheetName, "A", "A", 22)
	f.SetColWidth(ReportSheetName, "B", "F", 18)

	return f, nil
}
