package commands

import (
	"errors"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrEnsureAdminCommandIsNotConstructed = errors.New(
	"EnsureAdminCommand must be created via NewEnsureAdminCommand constructor",
)

// AdminUsername is the fixed login name of the bootstrap admin account.
const AdminUsername = "admin"

// Contact details stamped on the bootstrap account. The admin is an operator
// login rather than a customer, so fixed placeholders satisfy the aggregate's
// required fields.
const (
	adminEmail = "admin@example.com"
	adminPhone = "9999999999"
	adminPlan  = "premium"
)

// EnsureAdminCommand represents the idempotent creation of the admin
// account. When the account already exists the command is a no-op.
type EnsureAdminCommand struct { //nolint:recvcheck //using for validation
	password string

	guard guard.ConstructorGuard
}

// NewEnsureAdminCommand creates a command to bootstrap the admin account
// with the given password.
func NewEnsureAdminCommand(password string) (EnsureAdminCommand, error) {
	if password == "" {
		return EnsureAdminCommand{}, errs.NewValueIsRequiredError("password")
	}

	return EnsureAdminCommand{
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EnsureAdminCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminCommandIsNotConstructed)
}

// Password returns the plain-text password for the admin account.
func (c EnsureAdminCommand) Password() string {
	return c.password
}
