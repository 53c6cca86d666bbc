package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"
)

// EnsureAdminCommandHandler creates the admin account if it does not exist.
// Run at startup and exposed as an explicit endpoint; both paths are
// idempotent.
type EnsureAdminCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewEnsureAdminCommandHandler creates a handler for admin bootstrap.
func NewEnsureAdminCommandHandler(uowFactory UserUoWFactory) EnsureAdminCommandHandler {
	return EnsureAdminCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bootstrap command. Returns (true, nil) when the
// account was created and (false, nil) when it already existed.
func (h *EnsureAdminCommandHandler) Handle(ctx context.Context, cmd EnsureAdminCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByUsername(ctx, AdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false, err
	}

	admin, err := user.NewUser(
		kernel.NewUUID(), AdminUsername, cmd.Password(),
		adminEmail, adminPhone, adminPlan, user.RoleAdmin,
	)
	if err != nil {
		return false, err
	}

	if err = userRepo.Add(ctx, admin); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
