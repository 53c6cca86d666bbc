package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubmitRequestCommand(t *testing.T, userID kernel.UUID) commands.SubmitRequestCommand {
	t.Helper()

	cmd, err := commands.NewSubmitRequestCommand(
		kernel.NewUUID(), kernel.NewUUID(), userID,
		"Shirt", 3, "Hostel A", "101", "Morning",
		nil, nil, nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestSubmitRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := newSubmitRequestCommand(t, userID)

	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	requestRepo := new(MockRequestRepository)
	orderRepo := new(MockOrderRepository)

	var savedOrder *order.Order
	uow := new(MockIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Exists", mock.Anything, userID).Return(true, nil).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("UnitPrice", mock.Anything, "Shirt").Return(20.0, nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Add", mock.Anything, mock.AnythingOfType("*request.LaundryRequest")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { savedOrder = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Append", "New request for Shirt by user "+userID.String()).Once()

	h := commands.NewSubmitRequestCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Price is fixed at intake time from the pricing table.
	require.NotNil(t, savedOrder)
	require.InEpsilon(t, 60.0, savedOrder.TotalPrice(), 1e-9)
	require.Equal(t, order.Pending, savedOrder.Status())

	userRepo.AssertExpectations(t)
	pricingRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSubmitRequestCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := newSubmitRequestCommand(t, userID)

	userRepo := new(MockUserRepository)
	uow := new(MockIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Exists", mock.Anything, userID).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewSubmitRequestCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	// No notification is recorded for a rejected intake.
	notifier.AssertNotCalled(t, "Append", mock.Anything)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitRequestCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd := newSubmitRequestCommand(t, userID)

	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	requestRepo := new(MockRequestRepository)
	orderRepo := new(MockOrderRepository)

	uow := new(MockIntakeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Exists", mock.Anything, userID).Return(true, nil).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("UnitPrice", mock.Anything, "Shirt").Return(20.0, nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Add", mock.Anything, mock.AnythingOfType("*request.LaundryRequest")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errs.NewValueIsInvalidError("tx")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIntakeUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)

	h := commands.NewSubmitRequestCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	notifier.AssertNotCalled(t, "Append", mock.Anything)
}
