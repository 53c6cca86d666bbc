package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/notifier"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifications struct {
	entries []string
}

func (s stubNotifications) RecentDefault() []string {
	return s.entries
}

// stubOrderUoW backs the order commands with a single in-memory order so the
// full request-to-handler path can be exercised without a database.
type stubOrderUoW struct {
	repo ports.OrderRepository
}

func (stubOrderUoW) Begin(context.Context) error    { return nil }
func (stubOrderUoW) Commit(context.Context) error   { return nil }
func (stubOrderUoW) Rollback(context.Context) error { return nil }

func (u stubOrderUoW) OrderRepository() ports.OrderRepository {
	return u.repo
}

type stubOrderUoWFactory struct {
	repo ports.OrderRepository
}

func (f stubOrderUoWFactory) Create() commands.OrderUoW {
	return stubOrderUoW{repo: f.repo}
}

type stubOrderRepository struct {
	order *order.Order
}

func (stubOrderRepository) Add(context.Context, *order.Order) error { return nil }

func (r stubOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if r.order != nil && r.order.ID().IsEqual(id) {
		return r.order, nil
	}
	return nil, errs.NewObjectNotFoundError("orderId", id)
}

func (stubOrderRepository) UpdateStatus(context.Context, *order.Order) error   { return nil }
func (stubOrderRepository) UpdateFeedback(context.Context, *order.Order) error { return nil }

func (stubOrderRepository) GetAllByUser(context.Context, kernel.UUID) ([]*order.Order, error) {
	return nil, nil
}

func restoreOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Shirt", 2, status, 100,
		"A Block", "101", "6pm-8pm", time.Now().UTC(), nil,
	)
	require.NoError(t, err)
	return o
}

// newOrderActionServer wires real cancel and feedback handlers over the stub
// order store; everything else stays zero-valued.
func newOrderActionServer(o *order.Order) *echo.Echo {
	factory := stubOrderUoWFactory{repo: stubOrderRepository{order: o}}
	server := httpadapter.NewServer(
		commands.RegisterUserCommandHandler{},
		commands.SubmitRequestCommandHandler{},
		commands.CompleteOrderCommandHandler{},
		commands.NewCancelOrderCommandHandler(factory, notifier.NewLog()),
		commands.NewAttachFeedbackCommandHandler(factory),
		commands.SetPriceCommandHandler{},
		commands.EnsureAdminCommandHandler{},
		queries.LoginQueryHandler{},
		queries.GetOrderQueryHandler{},
		queries.OrderHistoryQueryHandler{},
		queries.GetAllOrdersQueryHandler{},
		queries.GetPricingQueryHandler{},
		queries.EstimatePriceQueryHandler{},
		queries.AdminSummaryQueryHandler{},
		queries.OrdersPerMonthQueryHandler{},
		queries.CompletedOrdersQueryHandler{},
		nil, nil, stubNotifications{}, "admin123",
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

// newTestServer wires a server with zero-value use case handlers. Only routes
// that reject the request before reaching a handler are exercised here; the
// full paths are covered by the use case and query tests.
func newTestServer(notifications httpadapter.NotificationReader) *echo.Echo {
	server := httpadapter.NewServer(
		commands.RegisterUserCommandHandler{},
		commands.SubmitRequestCommandHandler{},
		commands.CompleteOrderCommandHandler{},
		commands.CancelOrderCommandHandler{},
		commands.AttachFeedbackCommandHandler{},
		commands.SetPriceCommandHandler{},
		commands.EnsureAdminCommandHandler{},
		queries.LoginQueryHandler{},
		queries.GetOrderQueryHandler{},
		queries.OrderHistoryQueryHandler{},
		queries.GetAllOrdersQueryHandler{},
		queries.GetPricingQueryHandler{},
		queries.EstimatePriceQueryHandler{},
		queries.AdminSummaryQueryHandler{},
		queries.OrdersPerMonthQueryHandler{},
		queries.CompletedOrdersQueryHandler{},
		nil, nil, notifications, "admin123",
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newTestServer(stubNotifications{})

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OK")
}

func TestRegister_MissingUsername(t *testing.T) {
	e := newTestServer(stubNotifications{})

	rec := doRequest(e, http.MethodPost, "/register", `{"password":"secret"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	e := newTestServer(stubNotifications{})

	rec := doRequest(e, http.MethodPost, "/login", `{"username":"","password":""}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOrder_MalformedID(t *testing.T) {
	e := newTestServer(stubNotifications{})

	rec := doRequest(e, http.MethodGet, "/order/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculatePrice_InvalidQuantity(t *testing.T) {
	e := newTestServer(stubNotifications{})

	rec := doRequest(e, http.MethodGet, "/calculate-price?item_type=Shirt&quantity=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodGet, "/calculate-price?item_type=Shirt&quantity=0", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCancelOrder_InvalidUserID(t *testing.T) {
	e := newTestServer(stubNotifications{})

	rec := doRequest(e, http.MethodPut,
		"/cancel-order/7b8fc1f6-9f51-4b3a-8f2e-3c1de2a14c52", `{"user_id":"nope"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrder_NoBody(t *testing.T) {
	pending := restoreOrder(t, order.Pending)
	e := newOrderActionServer(pending)

	rec := doRequest(e, http.MethodPut, "/cancel-order/"+pending.ID().String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, order.Cancelled, pending.Status())
}

func TestFeedback_BodyWithoutUserID(t *testing.T) {
	completed := restoreOrder(t, order.Completed)
	e := newOrderActionServer(completed)

	rec := doRequest(e, http.MethodPost,
		"/feedback/"+completed.ID().String(), `{"feedback":"great"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, completed.Feedback())
	assert.Equal(t, "great", *completed.Feedback())
}

func TestNotifications_ReturnsRecentFeed(t *testing.T) {
	e := newTestServer(stubNotifications{entries: []string{"first", "second"}})

	rec := doRequest(e, http.MethodGet, "/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notifications":["first","second"]}`, rec.Body.String())
}
