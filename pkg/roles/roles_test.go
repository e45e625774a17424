package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		expected bool
	}{
		{"administrator may do user operations", Administrator, User, true},
		{"administrator may do administrator operations", Administrator, Administrator, true},
		{"user may do user operations", User, User, true},
		{"user may not do administrator operations", User, Administrator, false},
		{"unknown role is denied everything", Role("Guest"), User, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.HasPermission(tt.required))
		})
	}
}

func TestNewRole(t *testing.T) {
	role, err := NewRole("Administrator")
	assert.NoError(t, err)
	assert.Equal(t, Administrator, role)

	_, err = NewRole("Owner")
	assert.ErrorContains(t, err, "invalid role")
}

func TestIsValid(t *testing.T) {
	assert.True(t, Administrator.IsValid())
	assert.True(t, User.IsValid())
	assert.False(t, Role("root").IsValid())
	assert.False(t, Role("").IsValid())
}
