package exchange

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	t.Run("maps columns by header label", func(t *testing.T) {
		input := strings.Join([]string{
			"SERIAL NUMBER,ASSET ID,TOOL OF TRADE,ASSET NAME,BRANCH,ASSET STATUS",
			"SN-001,ASSET_00007,LAPTOP,THINKPAD T14,HOME OFFICE,ACTIVE",
			"SN-002,,MONITOR,DELL U2419,CEBU,FOR REPAIR",
		}, "\n")

		rows, err := ParseCSV(strings.NewReader(input))

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, models.ImportRow{
			SerialNumber: "SN-001",
			AssetID:      "ASSET_00007",
			AssetClass:   "LAPTOP",
			AssetName:    "THINKPAD T14",
			Branch:       "HOME OFFICE",
			DeviceStatus: "ACTIVE",
		}, rows[0])
		assert.Empty(t, rows[1].AssetID)
		assert.Equal(t, "SN-002", rows[1].SerialNumber)
	})

	t.Run("reordered columns still parse", func(t *testing.T) {
		input := "BRANCH,SERIAL NUMBER\nMANILA,SN-100\n"

		rows, err := ParseCSV(strings.NewReader(input))

		assert.NoError(t, err)
		assert.Equal(t, "SN-100", rows[0].SerialNumber)
		assert.Equal(t, "MANILA", rows[0].Branch)
	})

	t.Run("missing columns default to empty", func(t *testing.T) {
		input := "SERIAL NUMBER\nSN-200\n"

		rows, err := ParseCSV(strings.NewReader(input))

		assert.NoError(t, err)
		assert.Equal(t, "SN-200", rows[0].SerialNumber)
		assert.Empty(t, rows[0].Branch)
		assert.Empty(t, rows[0].Custodian)
	})

	t.Run("empty file is an error", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for col, header := range ImportHeaders {
		name, err := excelize.CoordinatesToCellName(col+1, 1)
		assert.NoError(t, err)
		assert.NoError(t, f.SetCellValue(sheet, name, header))
	}
	data := []string{
		"SN-300", "", "PRINTER", "HP LASERJET", "2023-01-15", "2023-02-01",
		"IT", "OPERATIONS", "DAVAO", "HP", "OFFICE PRINTER", "J DELA CRUZ", "ACTIVE",
	}
	for col, value := range data {
		name, err := excelize.CoordinatesToCellName(col+1, 2)
		assert.NoError(t, err)
		assert.NoError(t, f.SetCellValue(sheet, name, value))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	assert.NoError(t, err)

	rows, err := ParseXLSX(bytes.NewReader(buf.Bytes()))

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, models.ImportRow{
		SerialNumber:     "SN-300",
		AssetClass:       "PRINTER",
		AssetName:        "HP LASERJET",
		ManufacturedDate: "2023-01-15",
		DateAcquired:     "2023-02-01",
		BusinessUnit:     "IT",
		Department:       "OPERATIONS",
		Branch:           "DAVAO",
		Brand:            "HP",
		Description:      "OFFICE PRINTER",
		Custodian:        "J DELA CRUZ",
		DeviceStatus:     "ACTIVE",
	}, rows[0])
}

func TestParseFile(t *testing.T) {
	t.Run("rejects unknown extensions", func(t *testing.T) {
		_, err := ParseFile("inventory.pdf", strings.NewReader(""))
		assert.ErrorContains(t, err, "unsupported import format")
	})

	t.Run("routes csv by extension", func(t *testing.T) {
		rows, err := ParseFile("inventory.CSV", strings.NewReader("SERIAL NUMBER\nSN-1\n"))
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestWriteXLSX(t *testing.T) {
	records := []models.InventoryRecord{
		{
			ID: 1, AssetClass: "LAPTOP", AssetID: "ASSET_00001",
			AssetName: "THINKPAD T14", SerialNumber: "SN-001",
			Branch: "HOME OFFICE", DeviceStatus: "ACTIVE",
		},
		{
			ID: 2, AssetClass: "MONITOR", AssetID: "ASSET_00002",
			AssetName: "DELL U2419", SerialNumber: "SN-002",
			Branch: "CEBU", DeviceStatus: "RETIRED", Cancelled: true,
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteXLSX(&buf, records))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, ExportHeaders, rows[0])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "SN-001", rows[1][11])
	assert.Equal(t, "0", rows[1][14])

	assert.Equal(t, "ASSET_00002", rows[2][2])
	assert.Equal(t, "1", rows[2][14])
}
