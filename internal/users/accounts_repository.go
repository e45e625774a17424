// Package users manages application logins: plain-text credential checks
// against the accounts store and admin-gated account administration.
package users

import (
	"fmt"

	"github.com/Sefbongo/DeviceInventorySystem/internal/repository"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/apperrors"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

const accountsTable = "accounts"

type AccountsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AccountsRepository {
	return &AccountsRepository{
		repository: r,
	}
}

// GetAccountByCredentials matches username and password exactly as stored.
func (r *AccountsRepository) GetAccountByCredentials(username, password string) (*models.Account, error) {
	var account models.Account
	query := r.repository.GoquDBWrapper.
		Select("id", "username", "role").
		From(accountsTable).
		Where(goqu.Ex{"username": username, "password": password})

	found, err := query.Executor().ScanStruct(&account)
	if err != nil {
		return nil, fmt.Errorf("failed to check credentials: %w", err)
	}
	if !found {
		return nil, &apperrors.NotFoundError{Resource: "account", Key: username}
	}

	return &account, nil
}

func (r *AccountsRepository) GetAccounts() ([]models.Account, error) {
	var accounts []models.Account
	query := r.repository.GoquDBWrapper.
		Select("id", "username", "role").
		From(accountsTable).
		Order(goqu.I("id").Asc())

	if err := query.Executor().ScanStructs(&accounts); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountsRepository) PersistAccount(req models.CreateAccountRequest) error {
	query := r.repository.GoquDBWrapper.
		Insert(accountsTable).
		Rows(goqu.Record{
			"username": req.Username,
			"password": req.Password,
			"role":     req.Role,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return apperrors.WrapDBError(fmt.Sprintf("username %q already taken", req.Username), err)
	}

	return nil
}

func (r *AccountsRepository) UpdateAccount(id int, changes *models.AccountChanges) error {
	record := goqu.Record{}
	if changes.Username != nil {
		record["username"] = *changes.Username
	}
	if changes.Password != nil {
		record["password"] = *changes.Password
	}
	if changes.Role != nil {
		record["role"] = *changes.Role
	}

	query := r.repository.GoquDBWrapper.
		Update(accountsTable).
		Set(record).
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		return apperrors.WrapDBError("account update hit a username conflict", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return &apperrors.NotFoundError{Resource: "account", Key: fmt.Sprintf("%d", id)}
	}

	return nil
}

func (r *AccountsRepository) DeleteAccount(id int) error {
	query := r.repository.GoquDBWrapper.
		Delete(accountsTable).
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return &apperrors.NotFoundError{Resource: "account", Key: fmt.Sprintf("%d", id)}
	}

	return nil
}

func (r *AccountsRepository) CountAccounts() (int, error) {
	var count int
	query := r.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From(accountsTable)

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	return count, nil
}
