// Package http exposes the application's use cases as a JSON API on echo.
// Handlers translate between wire DTOs and commands/queries; all business
// rules live below this layer.
package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ImageStore persists an uploaded file and returns the reference to store.
type ImageStore interface {
	Save(originalName string, content io.Reader) (string, error)
}

// ReceiptGenerator renders (or serves a cached) receipt PDF for an order.
type ReceiptGenerator interface {
	Generate(o *order.Order) (string, error)
}

// NotificationReader reads the recent entries of the notification feed.
type NotificationReader interface {
	RecentDefault() []string
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerUserHandler   commands.RegisterUserCommandHandler
	submitRequestHandler  commands.SubmitRequestCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	attachFeedbackHandler commands.AttachFeedbackCommandHandler
	setPriceHandler       commands.SetPriceCommandHandler
	ensureAdminHandler    commands.EnsureAdminCommandHandler

	loginHandler           queries.LoginQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	orderHistoryHandler    queries.OrderHistoryQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getPricingHandler      queries.GetPricingQueryHandler
	estimatePriceHandler   queries.EstimatePriceQueryHandler
	adminSummaryHandler    queries.AdminSummaryQueryHandler
	ordersPerMonthHandler  queries.OrdersPerMonthQueryHandler
	completedOrdersHandler queries.CompletedOrdersQueryHandler

	images        ImageStore
	receipts      ReceiptGenerator
	notifications NotificationReader
	adminPassword string
}

// NewServer creates the HTTP server with the required command and query
// handlers and supporting adapters.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	submitRequestHandler commands.SubmitRequestCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	attachFeedbackHandler commands.AttachFeedbackCommandHandler,
	setPriceHandler commands.SetPriceCommandHandler,
	ensureAdminHandler commands.EnsureAdminCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	orderHistoryHandler queries.OrderHistoryQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getPricingHandler queries.GetPricingQueryHandler,
	estimatePriceHandler queries.EstimatePriceQueryHandler,
	adminSummaryHandler queries.AdminSummaryQueryHandler,
	ordersPerMonthHandler queries.OrdersPerMonthQueryHandler,
	completedOrdersHandler queries.CompletedOrdersQueryHandler,
	images ImageStore,
	receipts ReceiptGenerator,
	notifications NotificationReader,
	adminPassword string,
) *Server {
	return &Server{
		registerUserHandler:    registerUserHandler,
		submitRequestHandler:   submitRequestHandler,
		completeOrderHandler:   completeOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		attachFeedbackHandler:  attachFeedbackHandler,
		setPriceHandler:        setPriceHandler,
		ensureAdminHandler:     ensureAdminHandler,
		loginHandler:           loginHandler,
		getOrderHandler:        getOrderHandler,
		orderHistoryHandler:    orderHistoryHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getPricingHandler:      getPricingHandler,
		estimatePriceHandler:   estimatePriceHandler,
		adminSummaryHandler:    adminSummaryHandler,
		ordersPerMonthHandler:  ordersPerMonthHandler,
		completedOrdersHandler: completedOrdersHandler,
		images:                 images,
		receipts:               receipts,
		notifications:          notifications,
		adminPassword:          adminPassword,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/register", s.Register)
	e.POST("/login", s.Login)
	e.POST("/upload-request", s.UploadRequest)

	e.GET("/order/:id", s.GetOrder)
	e.GET("/order-history/:user_id", s.OrderHistory)
	e.GET("/all-orders", s.AllOrders)

	e.GET("/pricing", s.GetPricing)
	e.POST("/pricing", s.SetPricing)
	e.GET("/calculate-price", s.CalculatePrice)

	e.GET("/notifications", s.Notifications)
	e.GET("/user/notifications/:user_id", s.UserCompletedOrders)

	e.GET("/admin/summary", s.AdminSummary)
	e.GET("/admin/orders-per-month", s.AdminOrdersPerMonth)
	e.PUT("/admin/update-status/:order_id", s.CompleteOrder)

	e.PUT("/cancel-order/:order_id", s.CancelOrder)
	e.POST("/feedback/:order_id", s.Feedback)
	e.GET("/download-receipt/:order_id", s.DownloadReceipt)

	e.GET("/create-admin", s.CreateAdmin)
}

// respondError maps domain error kinds onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidStateTransition):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// parseOptionalUserID treats an empty user_id as an anonymous caller.
func parseOptionalUserID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &userID, nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, StatusResponse{Message: "OK"})
}

// Register handles POST /register - creates a customer account.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Username, req.Password, req.Email, req.Phone, req.Plan)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RegisterResponse{
		UserID:  userID.String(),
		Message: "User registered successfully",
	})
}

// Login handles POST /login - verifies credentials.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewLoginQuery(req.Username, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		UserID: resp.UserID,
		Role:   resp.Role,
		Plan:   resp.Plan,
	})
}

// UploadRequest handles POST /upload-request - records a laundry request and
// its order from a multipart form, storing the optional image upload.
func (s *Server) UploadRequest(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.FormValue("user_id"))
	if err != nil {
		return badRequest(ctx, "Invalid user_id")
	}

	quantity, err := strconv.Atoi(ctx.FormValue("quantity"))
	if err != nil {
		return badRequest(ctx, "Invalid quantity")
	}

	optional := func(name string) *string {
		if v := ctx.FormValue(name); v != "" {
			return &v
		}
		return nil
	}

	var imageURL *string
	if file, fileErr := ctx.FormFile("image"); fileErr == nil {
		src, openErr := file.Open()
		if openErr != nil {
			return badRequest(ctx, "Invalid image upload")
		}
		defer src.Close()

		ref, saveErr := s.images.Save(file.Filename, src)
		if saveErr != nil {
			return respondError(ctx, saveErr)
		}
		imageURL = &ref
	}

	requestID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewSubmitRequestCommand(
		requestID, orderID, userID,
		ctx.FormValue("item_type"), quantity,
		ctx.FormValue("hostel_name"), ctx.FormValue("room_number"), ctx.FormValue("pickup_time_slot"),
		optional("note"), imageURL, optional("payment_method"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.submitRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UploadRequestResponse{
		RequestID: requestID.String(),
		OrderID:   orderID.String(),
	})
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:             o.ID.String(),
		UserID:         o.UserID.String(),
		ItemType:       o.ItemType,
		Quantity:       o.Quantity,
		Status:         o.Status,
		TotalPrice:     o.TotalPrice,
		HostelName:     o.HostelName,
		RoomNumber:     o.RoomNumber,
		PickupTimeSlot: o.PickupTimeSlot,
		Feedback:       o.Feedback,
		CreatedAt:      o.CreatedAt,
	}
}

// GetOrder handles GET /order/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// OrderHistory handles GET /order-history/:user_id with optional month/year
// query parameters.
func (s *Server) OrderHistory(ctx echo.Context) error {
	userID, err := parseUUIDParam(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	parseIntParam := func(name string) (*int, error) {
		raw := ctx.QueryParam(name)
		if raw == "" {
			return nil, nil
		}
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return nil, convErr
		}
		return &v, nil
	}

	month, err := parseIntParam("month")
	if err != nil {
		return badRequest(ctx, "Invalid month")
	}
	year, err := parseIntParam("year")
	if err != nil {
		return badRequest(ctx, "Invalid year")
	}

	query, err := queries.NewOrderHistoryQuery(userID, month, year)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.orderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AllOrders handles GET /all-orders - the staff view of every order.
func (s *Server) AllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AdminOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = AdminOrderResponse{
			OrderResponse: toOrderResponse(o.OrderResponse),
			Username:      o.Username,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPricing handles GET /pricing - returns the item_type -> price mapping.
func (s *Server) GetPricing(ctx echo.Context) error {
	entries, err := s.getPricingHandler.Handle(ctx.Request().Context(), queries.NewGetPricingQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make(map[string]float64, len(entries))
	for _, entry := range entries {
		response[entry.ItemType] = entry.Price
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetPricing handles POST /pricing - upserts a per-item unit price.
func (s *Server) SetPricing(ctx echo.Context) error {
	var req PricingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPriceCommand(req.ItemType, req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Message: "Price updated"})
}

// CalculatePrice handles GET /calculate-price?item_type=&quantity=.
func (s *Server) CalculatePrice(ctx echo.Context) error {
	quantity, err := strconv.Atoi(ctx.QueryParam("quantity"))
	if err != nil {
		return badRequest(ctx, "Invalid quantity")
	}

	query, err := queries.NewEstimatePriceQuery(ctx.QueryParam("item_type"), quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.estimatePriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EstimateResponse{
		ItemType:       resp.ItemType,
		Quantity:       resp.Quantity,
		UnitPrice:      resp.UnitPrice,
		EstimatedPrice: resp.TotalPrice,
	})
}

// Notifications handles GET /notifications - the last entries of the feed.
func (s *Server) Notifications(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, NotificationsResponse{
		Notifications: s.notifications.RecentDefault(),
	})
}

// UserCompletedOrders handles GET /user/notifications/:user_id - the orders
// the customer can download receipts for.
func (s *Server) UserCompletedOrders(ctx echo.Context) error {
	userID, err := parseUUIDParam(ctx, "user_id")
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewCompletedOrdersQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.completedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdminSummary handles GET /admin/summary.
func (s *Server) AdminSummary(ctx echo.Context) error {
	resp, err := s.adminSummaryHandler.Handle(ctx.Request().Context(), queries.NewAdminSummaryQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdminSummaryResponse{
		TotalUsers:       resp.TotalUsers,
		TotalOrders:      resp.TotalOrders,
		PendingOrders:    resp.PendingOrders,
		CompletedOrders:  resp.CompletedOrders,
		CancelledOrders:  resp.CancelledOrders,
		TotalRevenue:     resp.TotalRevenue,
		MostFrequentItem: resp.MostFrequentItem,
	})
}

// AdminOrdersPerMonth handles GET /admin/orders-per-month.
func (s *Server) AdminOrdersPerMonth(ctx echo.Context) error {
	buckets, err := s.ordersPerMonthHandler.Handle(ctx.Request().Context(), queries.NewOrdersPerMonthQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrdersPerMonthResponse, len(buckets))
	for i, bucket := range buckets {
		response[i] = OrdersPerMonthResponse{Month: bucket.Month, Count: bucket.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteOrder handles PUT /admin/update-status/:order_id - marks a pending
// order completed.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Message: "Order completed"})
}

// CancelOrder handles PUT /cancel-order/:order_id - cancels a pending order.
// The body is optional; a supplied user_id restricts the cancel to the
// order's owner.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := parseOptionalUserID(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Message: "Order cancelled"})
}

// Feedback handles POST /feedback/:order_id - attaches feedback text.
// A supplied user_id restricts the write to the order's owner.
func (s *Server) Feedback(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req FeedbackRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := parseOptionalUserID(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id")
	}

	cmd, err := commands.NewAttachFeedbackCommand(orderID, actor, req.Feedback)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.attachFeedbackHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Message: "Feedback recorded"})
}

// DownloadReceipt handles GET /download-receipt/:order_id - renders the
// receipt on first download and serves the cached PDF afterwards.
func (s *Server) DownloadReceipt(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	status, ok := order.StatusFromString(resp.Status)
	if !ok {
		return respondError(ctx, errs.NewValueIsInvalidError("status"))
	}

	receiptOrder, err := order.RestoreOrder(
		resp.ID, resp.UserID, resp.ItemType, resp.Quantity,
		status, resp.TotalPrice,
		resp.HostelName, resp.RoomNumber, resp.PickupTimeSlot,
		resp.CreatedAt, resp.Feedback,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	path, err := s.receipts.Generate(receiptOrder)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Attachment(path, "receipt_"+orderID.String()+".pdf")
}

// CreateAdmin handles GET /create-admin - idempotently bootstraps the admin
// account with the configured password.
func (s *Server) CreateAdmin(ctx echo.Context) error {
	cmd, err := commands.NewEnsureAdminCommand(s.adminPassword)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.ensureAdminHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	message := "Admin account already exists"
	if created {
		message = "Admin account created"
	}

	return ctx.JSON(http.StatusOK, CreateAdminResponse{Created: created, Message: message})
}
