package models

// ImportRow is one parsed line of a bulk import file, already mapped from
// display column headers. Columns absent from the file stay empty.
type ImportRow struct {
	SerialNumber     string
	AssetID          string
	AssetClass       string
	AssetName        string
	ManufacturedDate string
	DateAcquired     string
	BusinessUnit     string
	Department       string
	Branch           string
	Brand            string
	Description      string
	Custodian        string
	DeviceStatus     string
}

// ImportSummary reports the outcome of a bulk import. Skipped counts rows
// with an empty serial together with rows whose serial collides with an
// active record.
type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
