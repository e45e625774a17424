package models

// CategoryEntry is one option value inside a lookup table. Names are unique
// per table; renaming an entry does not cascade to inventory rows that
// already reference the old name.
type CategoryEntry struct {
	Table string `json:"table"`
	Name  string `db:"name" json:"name"`
}
