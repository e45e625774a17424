package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// MissingFieldsError names every required field that was empty after
// trimming, not just the first one.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// DuplicateSerialError means an active (non-cancelled) record already holds
// the serial. Cancelled records never block a serial.
type DuplicateSerialError struct {
	Serial string
}

func (e *DuplicateSerialError) Error() string {
	return fmt.Sprintf("serial number %q already exists on an active record", e.Serial)
}

type DuplicateCategoryError struct {
	Table string
	Name  string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("%q already exists in %s", e.Name, e.Table)
}

type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

type PermissionDeniedError struct {
	Operation string
	Role      string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("role %q is not allowed to %s", e.Role, e.Operation)
}

// UniqueViolationError surfaces a UNIQUE constraint hit by the store itself,
// e.g. a duplicate account username.
type UniqueViolationError struct {
	message string
	code    int
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.message, e.code)
}

// WrapDBError translates driver-level constraint failures into typed errors.
// Anything that is not a recognized constraint code keeps its original cause.
func WrapDBError(message string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return &UniqueViolationError{
				message: message,
				code:    int(sqliteErr.ExtendedCode),
			}
		}
	}
	return fmt.Errorf("%s: %w", message, err)
}
