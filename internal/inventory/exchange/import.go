// Package exchange moves inventory records through spreadsheet files: bulk
// import from xlsx or csv, export to xlsx. Columns are matched by header
// label, not position, so reordered templates still parse.
package exchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/xuri/excelize/v2"
)

// ImportHeaders is the canonical column order of the bulk import template.
// DATE RECEIVED feeds the date acquired field.
var ImportHeaders = []string{
	"SERIAL NUMBER", "ASSET ID", "TOOL OF TRADE", "ASSET NAME",
	"MANUFACTURED DATE", "DATE RECEIVED", "BUSINESS UNIT", "DEPARTMENT",
	"BRANCH", "BRAND", "ASSET DESCRIPTION", "CUSTODIAN", "ASSET STATUS",
}

// ParseFile dispatches on the file extension.
func ParseFile(name string, r io.Reader) ([]models.ImportRow, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return ParseXLSX(r)
	case ".csv":
		return ParseCSV(r)
	default:
		return nil, fmt.Errorf("unsupported import format %q, expected .xlsx or .csv", filepath.Ext(name))
	}
}

// ParseXLSX reads the first sheet of a workbook.
func ParseXLSX(r io.Reader) ([]models.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet: %w", err)
	}

	return rowsFromCells(rows)
}

func ParseCSV(r io.Reader) ([]models.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("unable to read csv: %w", err)
	}

	return rowsFromCells(rows)
}

func rowsFromCells(rows [][]string) ([]models.ImportRow, error) {
	if len(rows) == 0 {
		return nil, errors.New("import file has no header row")
	}

	index := headerIndex(rows[0])
	parsed := make([]models.ImportRow, 0, len(rows)-1)

	for _, cells := range rows[1:] {
		parsed = append(parsed, models.ImportRow{
			SerialNumber:     cell(cells, index, "SERIAL NUMBER"),
			AssetID:          cell(cells, index, "ASSET ID"),
			AssetClass:       cell(cells, index, "TOOL OF TRADE"),
			AssetName:        cell(cells, index, "ASSET NAME"),
			ManufacturedDate: cell(cells, index, "MANUFACTURED DATE"),
			DateAcquired:     cell(cells, index, "DATE RECEIVED"),
			BusinessUnit:     cell(cells, index, "BUSINESS UNIT"),
			Department:       cell(cells, index, "DEPARTMENT"),
			Branch:           cell(cells, index, "BRANCH"),
			Brand:            cell(cells, index, "BRAND"),
			Description:      cell(cells, index, "ASSET DESCRIPTION"),
			Custodian:        cell(cells, index, "CUSTODIAN"),
			DeviceStatus:     cell(cells, index, "ASSET STATUS"),
		})
	}

	return parsed, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	return index
}

// cell resolves one labeled column; a header the file lacks, or a row too
// short to reach it, yields the empty string.
func cell(cells []string, index map[string]int, header string) string {
	i, ok := index[header]
	if !ok || i >= len(cells) {
		return ""
	}
	return cells[i]
}
