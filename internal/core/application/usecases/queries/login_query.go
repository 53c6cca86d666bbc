// Package queries contains read operations implemented directly against the
// database. Read models are plain structs; no aggregates are rehydrated.
package queries

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// LoginQuery represents a credential check.
type LoginQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a query to verify a username/password pair.
func NewLoginQuery(username, password string) (LoginQuery, error) {
	if username == "" || password == "" {
		return LoginQuery{}, ErrInvalidCredentials
	}

	return LoginQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Username returns the login name to check.
func (q LoginQuery) Username() string {
	return q.username
}

// Password returns the plain-text password to check.
func (q LoginQuery) Password() string {
	return q.password
}

// LoginQueryResponse identifies the authenticated account.
type LoginQueryResponse struct {
	UserID string
	Role   string
	Plan   string
}
