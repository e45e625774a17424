package category

import (
	"fmt"

	"github.com/Sefbongo/DeviceInventorySystem/internal/repository"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/apperrors"

	"github.com/doug-martin/goqu/v9"
)

// Tables names the six lookup tables backing the dropdown inputs, keyed by
// their display label.
var Tables = map[string]string{
	"TOOL OF TRADE":     "asset_classes",
	"BUSINESS UNIT":     "business_units",
	"DEPARTMENT":        "departments",
	"BRANCH":            "branches",
	"ASSET STATUS":      "device_status",
	"ASSET DESCRIPTION": "description",
}

// TableNames in a stable order for iteration and CLI help.
var TableNames = []string{
	"asset_classes", "business_units", "departments",
	"branches", "description", "device_status",
}

type CategoryRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *CategoryRepository {
	return &CategoryRepository{
		repository: r,
	}
}

func (r *CategoryRepository) ListNames(table string) ([]string, error) {
	var names []string
	query := r.repository.GoquDBWrapper.
		Select("name").
		From(table).
		Order(goqu.I("name").Asc())

	if err := query.Executor().ScanVals(&names); err != nil {
		return nil, fmt.Errorf("unable to list %s: %w", table, err)
	}

	return names, nil
}

func (r *CategoryRepository) CountName(table, name string) (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From(table).
		Where(goqu.Ex{"name": name})

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("unable to check %s for %q: %w", table, name, err)
	}

	return count, nil
}

func (r *CategoryRepository) InsertName(table, name string) error {
	query := r.repository.GoquDBWrapper.
		Insert(table).
		Rows(goqu.Record{"name": name})

	if _, err := query.Executor().Exec(); err != nil {
		return apperrors.WrapDBError(fmt.Sprintf("duplicate entry in %s", table), err)
	}

	return nil
}

func (r *CategoryRepository) UpdateName(table, oldName, newName string) error {
	query := r.repository.GoquDBWrapper.
		Update(table).
		Set(goqu.Record{"name": newName}).
		Where(goqu.Ex{"name": oldName})

	if _, err := query.Executor().Exec(); err != nil {
		return apperrors.WrapDBError(fmt.Sprintf("duplicate entry in %s", table), err)
	}

	return nil
}

// DeleteName removes an entry. Deleting an absent name is a silent no-op.
func (r *CategoryRepository) DeleteName(table, name string) error {
	query := r.repository.GoquDBWrapper.
		Delete(table).
		Where(goqu.Ex{"name": name})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("unable to delete %q from %s: %w", name, table, err)
	}

	return nil
}

// DistinctBranchesInUse backs the branch-list fallback: the distinct
// non-empty branch values currently present on inventory records.
func (r *CategoryRepository) DistinctBranchesInUse() ([]string, error) {
	var branches []string
	query := r.repository.GoquDBWrapper.
		Select(goqu.DISTINCT("branch")).
		From("inventory").
		Where(goqu.C("branch").Neq("")).
		Order(goqu.I("branch").Asc())

	if err := query.Executor().ScanVals(&branches); err != nil {
		return nil, fmt.Errorf("unable to derive branches from inventory: %w", err)
	}

	return branches, nil
}
