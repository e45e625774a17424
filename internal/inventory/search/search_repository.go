// Package search is the read side of the inventory: free-text search,
// report filters and the named metric counts. Results always come back in
// store order (ascending id) and, except for the cancelled-records view,
// only cover active records.
package search

import (
	"fmt"

	"github.com/Sefbongo/DeviceInventorySystem/internal/repository"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/metadata"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

const inventoryTable = "inventory"

// searchColumns is the fixed set free-text search runs over. Date acquired
// is deliberately absent.
var searchColumns = []string{
	"asset_class", "asset_id", "asset_name", "manufactured_date",
	"business_unit", "department", "branch", "brand",
	"description", "serial_number", "custodian", "device_status",
}

var recordColumns = []any{
	"id", "asset_class", "asset_id", "asset_name", "manufactured_date",
	"date_acquired", "business_unit", "department", "branch", "brand",
	"description", "serial_number", "custodian", "device_status", "cancelled",
}

// Metric is one row of the report summary, recomputed on every call.
type Metric struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SearchRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *SearchRepository {
	return &SearchRepository{
		repository: r,
	}
}

// Search returns active records matching term as a case-insensitive
// substring in any searched column. An empty term returns every active
// record.
func (r *SearchRepository) Search(term string) ([]models.InventoryRecord, error) {
	sqlStr, args, err := buildSearchSQL(term)
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	var records []models.InventoryRecord
	if err := r.repository.GoquDBWrapper.ScanStructs(&records, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}

	return records, nil
}

// All returns every record, cancelled included, for full-dump exports.
func (r *SearchRepository) All() ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	query := r.recordQuery().Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructs(&records); err != nil {
		return nil, fmt.Errorf("full dump query failed: %w", err)
	}

	return records, nil
}

// ByStatus filters active records on exact, case-sensitive-as-stored status.
func (r *SearchRepository) ByStatus(status string) ([]models.InventoryRecord, error) {
	return r.activeWhere(goqu.Ex{"device_status": status})
}

// ByBranch filters active records on exact branch equality.
func (r *SearchRepository) ByBranch(branch string) ([]models.InventoryRecord, error) {
	return r.activeWhere(goqu.Ex{"branch": branch})
}

// Cancelled is the soft-deleted records view.
func (r *SearchRepository) Cancelled() ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	query := r.recordQuery().
		Where(goqu.Ex{"cancelled": true}).
		Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructs(&records); err != nil {
		return nil, fmt.Errorf("cancelled records query failed: %w", err)
	}

	return records, nil
}

// ActiveBranches lists the distinct non-empty branches of active records,
// used by the report drill-down selector.
func (r *SearchRepository) ActiveBranches() ([]string, error) {
	var branches []string
	query := r.repository.GoquDBWrapper.
		Select(goqu.DISTINCT("branch")).
		From(inventoryTable).
		Where(goqu.Ex{"cancelled": false}, goqu.C("branch").Neq("")).
		Order(goqu.I("branch").Asc())

	if err := query.Executor().ScanVals(&branches); err != nil {
		return nil, fmt.Errorf("branch list query failed: %w", err)
	}

	return branches, nil
}

// metricQueries defines the report summary in display order.
var metricQueries = []struct {
	name      string
	condition goqu.Expression
}{
	{
		name: "TOTAL DEVICE ACTIVE",
		condition: goqu.And(
			goqu.Ex{"cancelled": false},
			goqu.C("device_status").In(
				metadata.StatusActive.String(),
				metadata.StatusForReplacement.String(),
			),
		),
	},
	{
		name:      "TOTAL CANCELLED ENTRIES",
		condition: goqu.Ex{"cancelled": true},
	},
	{
		name:      "TOTAL DEVICE UNDER HEAD OFFICE",
		condition: goqu.Ex{"cancelled": false, "branch": "HOME OFFICE"},
	},
	{
		name:      "TOTAL DEVICE FOR REPLACEMENT",
		condition: goqu.Ex{"cancelled": false, "device_status": metadata.StatusForReplacement.String()},
	},
	{
		name:      "TOTAL DEVICE FOR REPAIR",
		condition: goqu.Ex{"cancelled": false, "device_status": metadata.StatusForRepair.String()},
	},
	{
		name:      "TOTAL DEVICE FOR RETIRED",
		condition: goqu.Ex{"cancelled": false, "device_status": metadata.StatusRetired.String()},
	},
	{
		name:      "TOTAL DEVICE FOR DISPOSAL",
		condition: goqu.Ex{"cancelled": false, "device_status": metadata.StatusForDisposal.String()},
	},
}

// Metrics recomputes every named count against the current store state.
func (r *SearchRepository) Metrics() ([]Metric, error) {
	metrics := make([]Metric, 0, len(metricQueries))

	for _, mq := range metricQueries {
		var count int
		query := r.repository.GoquDBWrapper.
			Select(goqu.COUNT("*")).
			From(inventoryTable).
			Where(mq.condition)

		if _, err := query.Executor().ScanVal(&count); err != nil {
			return nil, fmt.Errorf("metric %q failed: %w", mq.name, err)
		}
		metrics = append(metrics, Metric{Name: mq.name, Count: count})
	}

	return metrics, nil
}

func (r *SearchRepository) activeWhere(condition goqu.Expression) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	query := r.recordQuery().
		Where(goqu.Ex{"cancelled": false}, condition).
		Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructs(&records); err != nil {
		return nil, fmt.Errorf("filter query failed: %w", err)
	}

	return records, nil
}

func (r *SearchRepository) recordQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(recordColumns...).From(inventoryTable)
}

// buildSearchSQL renders the free-text query. Kept separate from execution
// so the column set and LIKE shape are testable without a store.
func buildSearchSQL(term string) (string, []interface{}, error) {
	ds := goqu.Dialect(repository.Dialect).
		From(inventoryTable).
		Select(recordColumns...).
		Where(goqu.Ex{"cancelled": false}).
		Order(goqu.I("id").Asc())

	if term != "" {
		pattern := "%" + term + "%"
		conditions := make([]goqu.Expression, 0, len(searchColumns))
		for _, col := range searchColumns {
			// sqlite LIKE is case-insensitive, which is exactly the contract.
			conditions = append(conditions, goqu.C(col).ILike(pattern))
		}
		ds = ds.Where(goqu.Or(conditions...))
	}

	return ds.ToSQL()
}
