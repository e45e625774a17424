package exchange

import (
	"fmt"
	"io"

	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/xuri/excelize/v2"
)

// ExportHeaders is the full-dump column order. Unlike the import template it
// carries the store id first and the cancelled flag last.
var ExportHeaders = []string{
	"ID", "TOOL OF TRADE", "ASSET ID", "ASSET NAME", "MANUFACTURED DATE",
	"DATE ACQUIRED", "BUSINESS UNIT", "DEPARTMENT", "BRANCH", "BRAND",
	"ASSET DESCRIPTION", "SERIAL NUMBER", "CUSTODIAN", "ASSET STATUS",
	"CANCELLED",
}

// WriteXLSX dumps records to a single-sheet workbook, one row per record,
// in the order given.
func WriteXLSX(w io.Writer, records []models.InventoryRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, header := range ExportHeaders {
		if err := setCell(f, sheet, col+1, 1, header); err != nil {
			return err
		}
	}

	for row, record := range records {
		for col, value := range exportValues(record) {
			if err := setCell(f, sheet, col+1, row+2, value); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write workbook: %w", err)
	}

	return nil
}

func exportValues(r models.InventoryRecord) []interface{} {
	cancelled := 0
	if r.Cancelled {
		cancelled = 1
	}
	return []interface{}{
		r.ID, r.AssetClass, r.AssetID, r.AssetName, r.ManufacturedDate,
		r.DateAcquired, r.BusinessUnit, r.Department, r.Branch, r.Brand,
		r.Description, r.SerialNumber, r.Custodian, r.DeviceStatus,
		cancelled,
	}
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("invalid cell coordinates (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, name, value); err != nil {
		return fmt.Errorf("unable to set cell %s: %w", name, err)
	}
	return nil
}
