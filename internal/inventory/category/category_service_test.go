package category

import (
	"errors"
	"testing"

	"github.com/Sefbongo/DeviceInventorySystem/pkg/apperrors"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListNames(table string) ([]string, error) {
	args := m.Called(table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCategoryRepository) CountName(table, name string) (int, error) {
	args := m.Called(table, name)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) InsertName(table, name string) error {
	args := m.Called(table, name)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateName(table, oldName, newName string) error {
	args := m.Called(table, oldName, newName)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteName(table, name string) error {
	args := m.Called(table, name)
	return args.Error(0)
}

func (m *MockCategoryRepository) DistinctBranchesInUse() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestList(t *testing.T) {
	t.Run("returns names in store order", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("ListNames", "departments").Return([]string{"ENGINEERING", "FINANCE"}, nil)

		service := NewCategoryService(mockRepo, zap.NewNop())
		assert.Equal(t, []string{"ENGINEERING", "FINANCE"}, service.List("departments"))
	})

	t.Run("fails soft to empty on store error", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("ListNames", "departments").Return(nil, errors.New("no such table"))

		service := NewCategoryService(mockRepo, zap.NewNop())
		assert.Empty(t, service.List("departments"))
	})

	t.Run("unknown table is empty without touching the store", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)

		service := NewCategoryService(mockRepo, zap.NewNop())
		assert.Empty(t, service.List("no_such_table"))
		mockRepo.AssertNotCalled(t, "ListNames", mock.Anything)
	})
}

func TestAllFlattensRegistryInTableOrder(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	for _, table := range TableNames {
		if table == "branches" {
			mockRepo.On("ListNames", table).Return([]string{"CEBU", "MANILA"}, nil)
			continue
		}
		mockRepo.On("ListNames", table).Return([]string{}, nil)
	}

	service := NewCategoryService(mockRepo, zap.NewNop())
	entries := service.All()

	assert.Equal(t, []models.CategoryEntry{
		{Table: "branches", Name: "CEBU"},
		{Table: "branches", Name: "MANILA"},
	}, entries)
}

func TestAdd(t *testing.T) {
	t.Run("inserts a new name", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("CountName", "branches", "MANILA").Return(0, nil)
		mockRepo.On("InsertName", "branches", "MANILA").Return(nil)

		service := NewCategoryService(mockRepo, zap.NewNop())
		assert.NoError(t, service.Add("branches", "MANILA"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("CountName", "branches", "MANILA").Return(1, nil)

		service := NewCategoryService(mockRepo, zap.NewNop())
		err := service.Add("branches", "MANILA")

		var dup *apperrors.DuplicateCategoryError
		assert.ErrorAs(t, err, &dup)
		mockRepo.AssertNotCalled(t, "InsertName", mock.Anything, mock.Anything)
	})

	t.Run("delete then re-add succeeds", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("DeleteName", "branches", "MANILA").Return(nil)
		mockRepo.On("CountName", "branches", "MANILA").Return(0, nil)
		mockRepo.On("InsertName", "branches", "MANILA").Return(nil)

		service := NewCategoryService(mockRepo, zap.NewNop())
		assert.NoError(t, service.Delete("branches", "MANILA"))
		assert.NoError(t, service.Add("branches", "MANILA"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)

		service := NewCategoryService(mockRepo, zap.NewNop())
		err := service.Add("branches", "   ")

		var missing *apperrors.MissingFieldsError
		assert.ErrorAs(t, err, &missing)
	})

	t.Run("unknown table is rejected", func(t *testing.T) {
		service := NewCategoryService(new(MockCategoryRepository), zap.NewNop())
		err := service.Add("users", "MANILA")

		var notFound *apperrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestRename(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockCategoryRepository)
		check     func(*testing.T, error)
	}{
		{
			name: "renames in place",
			setupMock: func(m *MockCategoryRepository) {
				m.On("CountName", "departments", "FINANCE").Return(1, nil)
				m.On("CountName", "departments", "TREASURY").Return(0, nil)
				m.On("UpdateName", "departments", "FINANCE", "TREASURY").Return(nil)
			},
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "old name absent",
			setupMock: func(m *MockCategoryRepository) {
				m.On("CountName", "departments", "FINANCE").Return(0, nil)
			},
			check: func(t *testing.T, err error) {
				var notFound *apperrors.NotFoundError
				assert.ErrorAs(t, err, &notFound)
			},
		},
		{
			name: "new name already taken",
			setupMock: func(m *MockCategoryRepository) {
				m.On("CountName", "departments", "FINANCE").Return(1, nil)
				m.On("CountName", "departments", "TREASURY").Return(1, nil)
			},
			check: func(t *testing.T, err error) {
				var dup *apperrors.DuplicateCategoryError
				assert.ErrorAs(t, err, &dup)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCategoryRepository)
			tt.setupMock(mockRepo)

			service := NewCategoryService(mockRepo, zap.NewNop())
			tt.check(t, service.Rename("departments", "FINANCE", "TREASURY"))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteAbsentNameIsNoop(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("DeleteName", "branches", "NOWHERE").Return(nil)

	service := NewCategoryService(mockRepo, zap.NewNop())
	assert.NoError(t, service.Delete("branches", "NOWHERE"))
}

func TestBranches(t *testing.T) {
	t.Run("uses the branches table when populated", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("ListNames", "branches").Return([]string{"CEBU", "MANILA"}, nil)

		service := NewCategoryService(mockRepo, zap.NewNop())
		assert.Equal(t, []string{"CEBU", "MANILA"}, service.Branches())
		mockRepo.AssertNotCalled(t, "DistinctBranchesInUse")
	})

	t.Run("falls back to branches in use when the table is empty", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("ListNames", "branches").Return([]string{}, nil)
		mockRepo.On("DistinctBranchesInUse").Return([]string{"HOME OFFICE"}, nil)

		service := NewCategoryService(mockRepo, zap.NewNop())
		assert.Equal(t, []string{"HOME OFFICE"}, service.Branches())
	})

	t.Run("fails soft to empty when both reads fail", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("ListNames", "branches").Return(nil, errors.New("no such table"))
		mockRepo.On("DistinctBranchesInUse").Return(nil, errors.New("no such table"))

		service := NewCategoryService(mockRepo, zap.NewNop())
		assert.Empty(t, service.Branches())
	})
}
