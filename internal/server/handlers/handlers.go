package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KostinaAnya/Exel-Analyzer/internal/config"
	"github.com/KostinaAnya/Exel-Analyzer/internal/model"
	"github.com/KostinaAnya/Exel-Analyzer/internal/service/excel"
	"github.com/KostinaAnya/Exel-Analyzer/internal/service/report"
)

// Form field names, matching the upload form.
const (
	FieldOrders  = "file_orders"
	FieldRevenue = "file_revenue"
	FieldCosts   = "file_costs"
)

const reportFileName = "отчет_по_артикулам_с_прибылью.xlsx"

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handlers serves the upload form and the report endpoint.
type Handlers struct {
	cfg       *config.AppConfig
	uploadDir string
	pipeline  *report.Pipeline
	exporter  *excel.Exporter
	log       *zap.Logger
}

// NewHandlers creates the handler set. uploadDir must exist.
func NewHandlers(cfg *config.AppConfig, uploadDir string, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		cfg:       cfg,
		uploadDir: uploadDir,
		pipeline: report.NewPipeline(report.Options{
			ScanLimit:       cfg.Report.HeaderScanLimit,
			AllowPositional: cfg.Report.AllowPositional,
		}, log),
		exporter: excel.NewExporter(),
		log:      log,
	}
}

// Response is the JSON error envelope.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorResponse(c *gin.Context, status, code int, message string) {
	c.JSON(status, Response{Code: code, Message: message})
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Index serves the upload form.
func (h *Handlers) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// GenerateReport accepts the three exports, runs the reconciliation pipeline
// and streams the resulting workbook back as an attachment. Uploaded files
// live under uuid names in the upload dir for the duration of the request
// only; removal is deferred on success and failure alike.
func (h *Handlers) GenerateReport(c *gin.Context) {
	paths := make(map[string]string, 3)
	defer func() {
		for _, p := range paths {
			if err := os.Remove(p); err != nil {
				h.log.Warn("temp file cleanup failed", zap.String("path", p), zap.Error(err))
			}
		}
	}()

	for _, field := range []string{FieldOrders, FieldRevenue, FieldCosts} {
		file, err := c.FormFile(field)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, 1001, "Пожалуйста, загрузите все три файла")
			return
		}
		if strings.TrimSpace(file.Filename) == "" {
			errorResponse(c, http.StatusBadRequest, 1001, "Пожалуйста, выберите все три файла")
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !h.cfg.Upload.ExtensionAllowed(ext) {
			errorResponse(c, http.StatusBadRequest, 1002, "Разрешены только файлы Excel (.xlsx, .xls)")
			return
		}
		if file.Size > h.cfg.Upload.MaxFileBytes() {
			errorResponse(c, http.StatusBadRequest, 1003, "Файл слишком большой")
			return
		}

		dst := filepath.Join(h.uploadDir, field+"_"+uuid.New().String()+ext)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			h.log.Error("upload save failed", zap.String("field", field), zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, 1004, "Не удалось сохранить загруженный файл")
			return
		}
		paths[field] = dst
	}

	table, diags, err := h.pipeline.BuildReport(paths[FieldOrders], paths[FieldRevenue], paths[FieldCosts])
	if err != nil {
		var schemaErr *model.SchemaError
		var readErr *model.SourceReadError
		switch {
		case errors.As(err, &schemaErr):
			errorResponse(c, http.StatusUnprocessableEntity, 2001, "Ошибка в структуре файла: "+schemaErr.Error())
		case errors.As(err, &readErr):
			errorResponse(c, http.StatusBadRequest, 2002, "Не удалось прочитать файл: "+readErr.Error())
		default:
			h.log.Error("report build failed", zap.Error(err))
			errorResponse(c, http.StatusInternalServerError, 2003, "Произошла ошибка при обработке")
		}
		return
	}

	wb, err := h.exporter.Export(table)
	if err != nil {
		h.log.Error("report export failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, 2003, "Произошла ошибка при обработке")
		return
	}
	defer wb.Close()

	buf, err := wb.WriteToBuffer()
	if err != nil {
		h.log.Error("report serialization failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, 2003, "Произошла ошибка при обработке")
		return
	}

	if len(diags) > 0 {
		// Header values must stay ASCII, the messages may not be.
		warnings := make([]string, 0, len(diags))
		for _, d := range diags {
			warnings = append(warnings, url.QueryEscape(d.String()))
		}
		c.Header("X-Report-Warnings", strings.Join(warnings, "; "))
	}

	c.Header("Content-Disposition",
		`attachment; filename="report.xlsx"; filename*=UTF-8''`+url.PathEscape(reportFileName))
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

const indexHTML = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Отчет по артикулам</title>
<style>
body { font-family: sans-serif; max-width: 560px; margin: 48px auto; }
label { display: block; margin: 16px 0 4px; }
button { margin-top: 24px; padding: 8px 24px; }
</style>
</head>
<body>
<h1>Отчет по артикулам с прибылью</h1>
<p>Загрузите три файла Excel: заказы, выручку и закупочные цены.</p>
<form method="post" action="/report" enctype="multipart/form-data">
  <label for="file_orders">Файл заказов</label>
  <input type="file" id="file_orders" name="file_orders" accept=".xlsx,.xls" required>
  <label for="file_revenue">Файл выручки</label>
  <input type="file" id="file_revenue" name="file_revenue" accept=".xlsx,.xls" required>
  <label for="file_costs">Файл закупочных цен</label>
  <input type="file" id="file_costs" name="file_costs" accept=".xlsx,.xls" required>
  <button type="submit">Сформировать отчет</button>
</form>
</body>
</html>`
