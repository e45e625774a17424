package users

import (
	"errors"
	"strings"

	"github.com/Sefbongo/DeviceInventorySystem/pkg/apperrors"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/models"
	"github.com/Sefbongo/DeviceInventorySystem/pkg/roles"

	"go.uber.org/zap"
)

// ErrInvalidCredentials hides whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// defaultAccounts are seeded into an empty accounts store, verbatim.
var defaultAccounts = []models.CreateAccountRequest{
	{Username: "ADMIN", Password: "ADMIN", Role: roles.Administrator.String()},
	{Username: "USER", Password: "123USER", Role: roles.User.String()},
}

type AccountRepository interface {
	GetAccountByCredentials(username, password string) (*models.Account, error)
	GetAccounts() ([]models.Account, error)
	PersistAccount(req models.CreateAccountRequest) error
	UpdateAccount(id int, changes *models.AccountChanges) error
	DeleteAccount(id int) error
	CountAccounts() (int, error)
}

type AccountService struct {
	repo AccountRepository
	log  *zap.Logger
}

func NewAccountService(repo AccountRepository, log *zap.Logger) *AccountService {
	return &AccountService{
		repo: repo,
		log:  log,
	}
}

// EnsureDefaults seeds the stock logins, but only into a store with no
// accounts at all. A store where every account was since renamed or deleted
// down to one is left alone.
func (s *AccountService) EnsureDefaults() error {
	count, err := s.repo.CountAccounts()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, req := range defaultAccounts {
		if err := s.repo.PersistAccount(req); err != nil {
			return err
		}
	}

	s.log.Info("seeded default accounts", zap.Int("count", len(defaultAccounts)))
	return nil
}

// Authenticate resolves credentials to a role. Unknown username and wrong
// password are indistinguishable to the caller.
func (s *AccountService) Authenticate(username, password string) (roles.Role, error) {
	account, err := s.repo.GetAccountByCredentials(username, password)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	role, err := roles.NewRole(account.Role)
	if err != nil {
		return "", err
	}

	return role, nil
}

func (s *AccountService) List(actor roles.Role) ([]models.Account, error) {
	if !actor.HasPermission(roles.Administrator) {
		return nil, &apperrors.PermissionDeniedError{Operation: "list accounts", Role: actor.String()}
	}
	return s.repo.GetAccounts()
}

func (s *AccountService) Add(actor roles.Role, req models.CreateAccountRequest) error {
	if !actor.HasPermission(roles.Administrator) {
		return &apperrors.PermissionDeniedError{Operation: "add account", Role: actor.String()}
	}

	req.Username = strings.TrimSpace(req.Username)
	if missing := missingAccountFields(req); len(missing) > 0 {
		return &apperrors.MissingFieldsError{Fields: missing}
	}

	role, err := roles.NewRole(req.Role)
	if err != nil {
		return err
	}
	req.Role = role.String()

	if err := s.repo.PersistAccount(req); err != nil {
		return err
	}

	s.log.Info("account created",
		zap.String("username", req.Username), zap.String("role", req.Role))
	return nil
}

func (s *AccountService) Update(actor roles.Role, id int, changes *models.AccountChanges) error {
	if !actor.HasPermission(roles.Administrator) {
		return &apperrors.PermissionDeniedError{Operation: "update account", Role: actor.String()}
	}

	// A blank password means keep the stored one.
	if changes.Password != nil && *changes.Password == "" {
		changes.Password = nil
	}
	if changes.Role != nil {
		role, err := roles.NewRole(*changes.Role)
		if err != nil {
			return err
		}
		normalized := role.String()
		changes.Role = &normalized
	}

	if !changes.HasChanges() {
		return nil
	}

	if err := s.repo.UpdateAccount(id, changes); err != nil {
		return err
	}

	s.log.Info("account updated", zap.Int("id", id))
	return nil
}

func (s *AccountService) Delete(actor roles.Role, id int) error {
	if !actor.HasPermission(roles.Administrator) {
		return &apperrors.PermissionDeniedError{Operation: "delete account", Role: actor.String()}
	}

	if err := s.repo.DeleteAccount(id); err != nil {
		return err
	}

	s.log.Info("account deleted", zap.Int("id", id))
	return nil
}

func missingAccountFields(req models.CreateAccountRequest) []string {
	var missing []string
	if req.Username == "" {
		missing = append(missing, "USERNAME")
	}
	if req.Password == "" {
		missing = append(missing, "PASSWORD")
	}
	if req.Role == "" {
		missing = append(missing, "ROLE")
	}
	return missing
}
