package http

import "time"

// Request and response bodies for the JSON API. Field names follow the wire
// format the frontend expects.

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Plan     string `json:"plan"`
}

type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Plan   string `json:"plan"`
}

type UploadRequestResponse struct {
	RequestID string `json:"request_id"`
	OrderID   string `json:"order_id"`
}

type OrderResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ItemType       string    `json:"item_type"`
	Quantity       int       `json:"quantity"`
	Status         string    `json:"status"`
	TotalPrice     float64   `json:"total_price"`
	HostelName     string    `json:"hostel_name"`
	RoomNumber     string    `json:"room_number"`
	PickupTimeSlot string    `json:"pickup_time_slot"`
	Feedback       *string   `json:"feedback"`
	CreatedAt      time.Time `json:"created_at"`
}

type AdminOrderResponse struct {
	OrderResponse
	Username string `json:"username"`
}

type PricingRequest struct {
	ItemType string  `json:"item_type"`
	Price    float64 `json:"price"`
}

type EstimateResponse struct {
	ItemType       string  `json:"item_type"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	EstimatedPrice float64 `json:"estimated_price"`
}

type NotificationsResponse struct {
	Notifications []string `json:"notifications"`
}

type AdminSummaryResponse struct {
	TotalUsers       int     `json:"total_users"`
	TotalOrders      int     `json:"total_orders"`
	PendingOrders    int     `json:"pending_orders"`
	CompletedOrders  int     `json:"completed_orders"`
	CancelledOrders  int     `json:"cancelled_orders"`
	TotalRevenue     float64 `json:"total_revenue"`
	MostFrequentItem string  `json:"most_washed_item"`
}

type OrdersPerMonthResponse struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

type CancelOrderRequest struct {
	UserID string `json:"user_id"`
}

type FeedbackRequest struct {
	UserID   string `json:"user_id"`
	Feedback string `json:"feedback"`
}

type CreateAdminResponse struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Message string `json:"message"`
}
