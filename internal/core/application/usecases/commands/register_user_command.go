package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a new customer account.
// The password travels in plain text only inside this command; the domain
// model hashes it before anything is persisted.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	password string
	email    string
	phone    string
	plan     string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Username and password are required; email, phone and plan are free-form.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username, password, email, phone, plan string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.email = email
	cmd.phone = phone
	cmd.plan = plan

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the plain-text password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Email returns the contact email, possibly empty.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Phone returns the contact phone number, possibly empty.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Plan returns the subscription plan label, possibly empty.
func (c RegisterUserCommand) Plan() string {
	return c.plan
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
