package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"surveyscope/domain/survey"
	"surveyscope/internal"
	"surveyscope/internal/errors"
)

// TableReader loads survey responses from Excel and CSV files into the
// pipeline's table form. Which formats exist is this adapter's concern
// only; the pipeline sees named columns and string cells.
type TableReader struct {
	filePath  string
	sheetName string // xlsx only; first sheet when empty
	fileType  string // "xlsx" or "csv"
	log       *internal.Logger
}

// NewTableReader creates a reader for the given file, picking the format
// from the extension.
func NewTableReader(filePath, sheetName string) *TableReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &TableReader{
		filePath:  filePath,
		sheetName: sheetName,
		fileType:  fileType,
		log:       internal.DefaultLogger,
	}
}

// Load implements ports.TableLoader.
func (r *TableReader) Load(ctx context.Context) (*survey.Table, error) {
	r.log.Info("[TableReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(fmt.Sprintf("data file %s", r.filePath))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, errors.DataInvalid(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
}

func (r *TableReader) readExcel() (*survey.Table, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	sheet := r.sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}
	r.log.Debug("[TableReader] Sheet %q read in %.2fms (%d rows)",
		sheet, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.DataInvalid("Excel file must have at least a header row and one data row")
	}

	return r.buildTable(rows)
}

func (r *TableReader) readCSV() (*survey.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows tolerated; short rows mean null cells
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}

	if len(rows) < 2 {
		return nil, errors.DataInvalid("CSV file must have at least a header row and one data row")
	}

	return r.buildTable(rows)
}

// buildTable converts raw string rows into the table form. Cells are
// trimmed; column names keep their original (possibly noisy) text so the
// schema matcher owns all normalization.
func (r *TableReader) buildTable(rows [][]string) (*survey.Table, error) {
	headers := make([]string, len(rows[0]))
	seen := make(map[string]bool, len(rows[0]))
	for i, header := range rows[0] {
		h := strings.TrimSpace(header)
		if seen[h] {
			return nil, errors.DataInvalid(fmt.Sprintf("duplicate column header %q", h))
		}
		seen[h] = true
		headers[i] = h
	}

	dataRows := make([]survey.Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := make(survey.Row, len(headers))
		for j, cell := range rows[i] {
			if j < len(headers) {
				row[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, row)
	}

	r.log.Info("[TableReader] Loaded %d responses with %d columns", len(dataRows), len(headers))

	return &survey.Table{Headers: headers, Rows: dataRows}, nil
}
