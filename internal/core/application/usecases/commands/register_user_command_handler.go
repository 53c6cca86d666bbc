package commands

import (
	"context"

	"laundry/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles the business logic for account creation.
// Duplicate usernames are rejected by the repository with an
// ObjectAlreadyExistsError.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The password is hashed inside
// the user constructor before persistence.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newUser, err := user.NewUser(
		cmd.UserID(), cmd.Username(), cmd.Password(),
		cmd.Email(), cmd.Phone(), cmd.Plan(), user.RoleUser,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
