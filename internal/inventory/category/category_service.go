package category

import (
	"errors"
	"strings"

	"github.com/Sefbongo/DeviceInventorySystem/pkg/apperrors"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"go.uber.org/zap"
)

type Repository interface {
	ListNames(table string) ([]string, error)
	CountName(table, name string) (int, error)
	InsertName(table, name string) error
	UpdateName(table, oldName, newName string) error
	DeleteName(table, name string) error
	DistinctBranchesInUse() ([]string, error)
}

// CategoryService manages the lookup tables feeding the dropdown and
// autocomplete inputs.
type CategoryService struct {
	repo Repository
	log  *zap.Logger
}

func NewCategoryService(repo Repository, log *zap.Logger) *CategoryService {
	return &CategoryService{
		repo: repo,
		log:  log,
	}
}

// List returns the table's names in lexicographic order. Reads fail soft:
// an unknown table or an inaccessible store yields an empty list, never an
// error, so a broken lookup table only costs its dropdown options.
func (s *CategoryService) List(table string) []string {
	if !validTable(table) {
		return nil
	}

	names, err := s.repo.ListNames(table)
	if err != nil {
		s.log.Warn("lookup table read failed, returning empty list",
			zap.String("table", table), zap.Error(err))
		return nil
	}
	return names
}

// All flattens the whole registry, table by table in registry order.
func (s *CategoryService) All() []models.CategoryEntry {
	var entries []models.CategoryEntry
	for _, table := range TableNames {
		for _, name := range s.List(table) {
			entries = append(entries, models.CategoryEntry{Table: table, Name: name})
		}
	}
	return entries
}

func (s *CategoryService) Add(table, name string) error {
	if !validTable(table) {
		return &apperrors.NotFoundError{Resource: "lookup table", Key: table}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return &apperrors.MissingFieldsError{Fields: []string{"NAME"}}
	}

	count, err := s.repo.CountName(table, name)
	if err != nil {
		return err
	}
	if count > 0 {
		return &apperrors.DuplicateCategoryError{Table: table, Name: name}
	}

	if err := s.repo.InsertName(table, name); err != nil {
		return translateUnique(err, table, name)
	}

	s.log.Info("category added", zap.String("table", table), zap.String("name", name))
	return nil
}

func (s *CategoryService) Rename(table, oldName, newName string) error {
	if !validTable(table) {
		return &apperrors.NotFoundError{Resource: "lookup table", Key: table}
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return &apperrors.MissingFieldsError{Fields: []string{"NAME"}}
	}

	count, err := s.repo.CountName(table, oldName)
	if err != nil {
		return err
	}
	if count == 0 {
		return &apperrors.NotFoundError{Resource: table, Key: oldName}
	}

	count, err = s.repo.CountName(table, newName)
	if err != nil {
		return err
	}
	if count > 0 {
		return &apperrors.DuplicateCategoryError{Table: table, Name: newName}
	}

	// Renames do not cascade: inventory rows keep the old string.
	if err := s.repo.UpdateName(table, oldName, newName); err != nil {
		return translateUnique(err, table, newName)
	}

	s.log.Info("category renamed",
		zap.String("table", table), zap.String("old", oldName), zap.String("new", newName))
	return nil
}

// Delete removes an entry; an absent name is a silent no-op.
func (s *CategoryService) Delete(table, name string) error {
	if !validTable(table) {
		return &apperrors.NotFoundError{Resource: "lookup table", Key: table}
	}

	if err := s.repo.DeleteName(table, name); err != nil {
		return err
	}

	s.log.Info("category deleted", zap.String("table", table), zap.String("name", name))
	return nil
}

// Branches feeds the autocomplete candidate list. When the branches table
// has no rows the list is derived from the branch values already present on
// inventory records. Both reads fail soft to an empty list.
func (s *CategoryService) Branches() []string {
	names, err := s.repo.ListNames("branches")
	if err != nil {
		s.log.Warn("branches table read failed", zap.Error(err))
		names = nil
	}
	if len(names) > 0 {
		return names
	}

	inUse, err := s.repo.DistinctBranchesInUse()
	if err != nil {
		s.log.Warn("branch fallback read failed, returning empty list", zap.Error(err))
		return nil
	}
	return inUse
}

func validTable(table string) bool {
	for _, t := range TableNames {
		if t == table {
			return true
		}
	}
	return false
}

// translateUnique maps a store-level UNIQUE hit to the category taxonomy.
// The pre-insert count check races with nothing in a single-user app, but
// the table constraint is still the last word.
func translateUnique(err error, table, name string) error {
	var unique *apperrors.UniqueViolationError
	if errors.As(err, &unique) {
		return &apperrors.DuplicateCategoryError{Table: table, Name: name}
	}
	return err
}
