package services

//go:generate mockgen -source=export.go -destination=export_mock.go -package=services

import (
	"bytes"
	"context"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/xuri/excelize/v2"
)

// Format is an export file format.
type Format string

// Supported export formats
const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

var exportHeader = []string{"Amount", "Description", "Category", "Date"}

//go:embed templates/report.html
var reportFS embed.FS

var reportTemplate = template.Must(template.ParseFS(reportFS, "templates/report.html"))

// LedgerLister returns every row of a ledger.
type LedgerLister interface {
	ListAll(ctx context.Context, ownerID uuid.UUID, kind models.Kind) ([]models.TransactionDB, error)
}

// PDFConverter turns an HTML document into a PDF.
type PDFConverter interface {
	ConvertHTML(ctx context.Context, html []byte) ([]byte, error)
}

// ExportFile is a rendered export ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders a user's full ledger as CSV, spreadsheet or PDF.
type ExportService struct {
	lister LedgerLister
	pdf    PDFConverter
	now    func() time.Time
}

// NewExportService creates a new ExportService.
func NewExportService(lister LedgerLister, pdf PDFConverter) *ExportService {
	return &ExportService{
		lister: lister,
		pdf:    pdf,
		now:    time.Now,
	}
}

// Export renders every owned row of the ledger in the requested format.
func (s *ExportService) Export(ctx context.Context, ownerID uuid.UUID, kind models.Kind, format Format) (*ExportFile, error) {
	var (
		ext         string
		contentType string
	)
	switch format {
	case FormatCSV:
		ext, contentType = "csv", "text/csv; charset=utf-8"
	case FormatExcel:
		ext, contentType = "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		ext, contentType = "pdf", "application/pdf"
	default:
		return nil, ErrUnknownFormat
	}

	rows, err := s.lister.ListAll(ctx, ownerID, kind)
	if err != nil {
		logger.Log.Errorw("failed to list transactions for export", "user_id", ownerID, "kind", kind, "error", err)
		return nil, err
	}

	now := s.now()
	var data []byte
	switch format {
	case FormatCSV:
		data, err = RenderCSV(rows)
	case FormatExcel:
		data, err = RenderSpreadsheet(kind.Title(), rows)
	case FormatPDF:
		data, err = s.renderPDF(ctx, kind, rows, now)
	}
	if err != nil {
		logger.Log.Errorw("failed to render export", "user_id", ownerID, "format", format, "error", err)
		return nil, err
	}

	logger.Log.Infow("ledger exported", "user_id", ownerID, "kind", kind, "format", format, "rows", len(rows))

	return &ExportFile{
		Filename:    fmt.Sprintf("%s-%s.%s", kind.Title(), now.Format("20060102T150405"), ext),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// RenderCSV writes rows as CSV with a header line.
func RenderCSV(rows []models.TransactionDB) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(exportRecord(row)); err != nil {
			return nil, err
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderSpreadsheet writes rows to an xlsx workbook with a bold header row.
// Every cell is stored as display text.
func RenderSpreadsheet(sheet string, rows []models.TransactionDB) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeSheetRow(f, sheet, 1, exportHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", bold); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := writeSheetRow(f, sheet, i+2, exportRecord(row)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheetRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

type reportData struct {
	Title       string
	GeneratedAt string
	Rows        []models.TransactionDB
	Total       string
}

// RenderReportHTML renders the printable report converted to PDF.
func RenderReportHTML(title string, rows []models.TransactionDB, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := reportTemplate.Execute(&buf, reportData{
		Title:       title,
		GeneratedAt: generatedAt.Format("2006-01-02 15:04"),
		Rows:        rows,
		Total:       Total(rows).StringFixed(2),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) renderPDF(ctx context.Context, kind models.Kind, rows []models.TransactionDB, now time.Time) ([]byte, error) {
	html, err := RenderReportHTML(kind.Title(), rows, now)
	if err != nil {
		return nil, err
	}
	return s.pdf.ConvertHTML(ctx, html)
}

func exportRecord(row models.TransactionDB) []string {
	return []string{row.AmountString(), row.Description, row.Category, row.DateString()}
}
