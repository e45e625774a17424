package models

// InventoryRecord is a single device row in the inventory store. Category
// fields hold free text: they should match a registry entry but stale values
// survive registry edits.
type InventoryRecord struct {
	ID               int    `db:"id" json:"id"`
	AssetClass       string `db:"asset_class" json:"asset_class"`
	AssetID          string `db:"asset_id" json:"asset_id"`
	AssetName        string `db:"asset_name" json:"asset_name"`
	ManufacturedDate string `db:"manufactured_date" json:"manufactured_date"`
	DateAcquired     string `db:"date_acquired" json:"date_acquired"`
	BusinessUnit     string `db:"business_unit" json:"business_unit"`
	Department       string `db:"department" json:"department"`
	Branch           string `db:"branch" json:"branch"`
	Brand            string `db:"brand" json:"brand"`
	Description      string `db:"description" json:"description"`
	SerialNumber     string `db:"serial_number" json:"serial_number"`
	Custodian        string `db:"custodian" json:"custodian"`
	DeviceStatus     string `db:"device_status" json:"device_status"`
	Cancelled        bool   `db:"cancelled" json:"cancelled"`
}

// RecordRequest carries every editable field of an inventory record. AssetID
// is optional on create: when empty the service generates one from the row
// count, otherwise the caller-supplied value is used as-is.
type RecordRequest struct {
	AssetClass       string `json:"asset_class"`
	AssetID          string `json:"asset_id"`
	AssetName        string `json:"asset_name"`
	ManufacturedDate string `json:"manufactured_date"`
	DateAcquired     string `json:"date_acquired"`
	BusinessUnit     string `json:"business_unit"`
	Department       string `json:"department"`
	Branch           string `json:"branch"`
	Brand            string `json:"brand"`
	Description      string `json:"description"`
	SerialNumber     string `json:"serial_number"`
	Custodian        string `json:"custodian"`
	DeviceStatus     string `json:"device_status"`
}
