package http

import "time"

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	IsFirstYear  bool               `json:"isFirstYear"`
	HostelChoice string             `json:"hostelChoice"`
}

// OrderItemRequest is one selected dish with its quantity.
type OrderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/:ref/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AddMenuItemRequest is the body of POST /api/v1/menu.
type AddMenuItemRequest struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

// UpdateMenuItemRequest is the body of PUT /api/v1/menu/:id.
type UpdateMenuItemRequest struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
}

// OrderResponse is one order as returned by the order endpoints.
type OrderResponse struct {
	ID        string              `json:"id"`
	OrderID   string              `json:"orderId"`
	StudentID string              `json:"studentId"`
	Status    string              `json:"status"`
	HostelTag string              `json:"hostelTag,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	Items     []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// MenuItemResponse is one dish as returned by the menu endpoints.
type MenuItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}
