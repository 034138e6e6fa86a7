package models

import "time"

type SignupRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Address     string `json:"address" binding:"required"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

type OrderItemRequest struct {
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"gte=0"`
}

type CreateOrderRequest struct {
	OrderType  OrderType          `json:"order_type"`
	PickupDate *time.Time         `json:"pickup_date"`
	Items      []OrderItemRequest `json:"items" binding:"required,dive"`
}

type UpdateOrderRequest struct {
	Status OrderStatus        `json:"status"`
	Items  []OrderItemRequest `json:"items"`
}
