// Package user provides the User aggregate: account identity, hashed
// credentials, contact details, and the subscription plan.
//
// Passwords are never held in clear text. NewUser hashes the supplied
// password with bcrypt and VerifyPassword compares with bcrypt's
// constant-time check, so the stored credential cannot be read back and
// comparison timing leaks nothing about the stored hash.
package user

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created through
	// the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// Role describes the authorization level of an account.
type Role string

const (
	// RoleUser is the default role for registered customers.
	RoleUser Role = "user"

	// RoleAdmin marks the operator account that reviews statistics
	// and marks orders complete.
	RoleAdmin Role = "admin"
)

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleUser && r != RoleAdmin {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the persisted string form of the role.
func (r Role) String() string {
	return string(r)
}

// User is the aggregate root for an account. Owns orders and laundry
// requests (cascade-deleted with the account at the store level).
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	email        string
	phone        string
	plan         string
	role         Role

	isConstructed bool
}

// NewUser creates a user account with a freshly bcrypt-hashed password.
// All fields are required; the username must be unique, but uniqueness is
// enforced by the repository, not here.
func NewUser(id kernel.UUID, username, password, email, phone, plan string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setContact(email, phone),
		u.setPlan(plan),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := u.setPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persisted state. The password hash is
// taken as stored; no rehashing happens.
func RestoreUser(id kernel.UUID, username, passwordHash, email, phone, plan string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setContact(email, phone),
		u.setPlan(plan),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique account name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash for persistence.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Email returns the contact email.
func (u *User) Email() string {
	return u.email
}

// Phone returns the contact phone number.
func (u *User) Phone() string {
	return u.phone
}

// Plan returns the subscription plan name.
func (u *User) Plan() string {
	return u.plan
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// VerifyPassword checks a candidate password against the stored hash.
// Uses bcrypt's constant-time comparison; returns true only on a match.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.passwordHash = string(hash)
	return nil
}

func (u *User) setContact(email, phone string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	u.email = email
	u.phone = phone
	return nil
}

func (u *User) setPlan(plan string) error {
	if plan == "" {
		return errs.NewValueIsRequiredError("plan")
	}
	u.plan = plan
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
