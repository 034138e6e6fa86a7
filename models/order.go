package models

import "time"

type OrderType string

const (
	OrderTypeStandard OrderType = "STANDARD"
	OrderTypeExpress  OrderType = "EXPRESS"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeStandard || t == OrderTypeExpress
}

type OrderStatus string

const (
	StatusCreated    OrderStatus = "Created"
	StatusProcessing OrderStatus = "Processing"
	StatusReady      OrderStatus = "Ready"
	StatusCompleted  OrderStatus = "Completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusCreated, StatusProcessing, StatusReady, StatusCompleted:
		return true
	}
	return false
}

// validTransitions is the authoritative forward chain; anything not listed
// is an invalid transition.
var validTransitions = map[OrderStatus]OrderStatus{
	StatusCreated:    StatusProcessing,
	StatusProcessing: StatusReady,
	StatusReady:      StatusCompleted,
}

// CanTransition reports whether an order may move from one status to
// another. Staying in the current status is not a transition.
func CanTransition(from, to OrderStatus) bool {
	return validTransitions[from] == to
}

type Order struct {
	ID         int         `json:"id"`
	CustomerID int         `json:"customer_id"`
	OrderType  OrderType   `json:"order_type"`
	PickupDate time.Time   `json:"pickup_date"`
	Status     OrderStatus `json:"status"`
	TotalPrice float64     `json:"total_price"`
	Items      []Item      `json:"items"`
	CreatedBy  string      `json:"created_by,omitempty"`
	UpdatedBy  string      `json:"updated_by,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type Item struct {
	ID       int     `json:"id"`
	OrderID  int     `json:"order_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
