package roles

import "fmt"

// Role is the permission level attached to an account.
type Role string

const (
	User          Role = "User"
	Administrator Role = "Administrator"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s", value)
	}
	return role, nil
}

type HierarchyLevel int

const (
	UserLevel          HierarchyLevel = 1
	AdministratorLevel HierarchyLevel = 2
)

func (r Role) GetHierarchyLevel() HierarchyLevel {
	switch r {
	case Administrator:
		return AdministratorLevel
	case User:
		return UserLevel
	default:
		return 0
	}
}

// HasPermission reports whether the role is at least as privileged as the
// required one. Unknown roles never pass.
func (r Role) HasPermission(requiredRole Role) bool {
	level := r.GetHierarchyLevel()
	return level > 0 && level >= requiredRole.GetHierarchyLevel()
}

func (r Role) IsValid() bool {
	switch r {
	case User, Administrator:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
