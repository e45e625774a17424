package models

// Account is an application login. Passwords are stored and compared as
// plain text; the seeded defaults must keep authenticating with their
// literal seeded values.
type Account struct {
	ID       int    `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	Role     string `db:"role" json:"role"`
}

type CreateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AccountChanges collects the fields an account update actually touches.
// A nil Password means "keep the stored one".
type AccountChanges struct {
	Username *string
	Password *string
	Role     *string
}

func (c *AccountChanges) HasChanges() bool {
	return c.Username != nil || c.Password != nil || c.Role != nil
}
