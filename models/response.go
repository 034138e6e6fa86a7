package models

type AvailabilityResponse struct {
	ServiceStatus bool   `json:"serviceStatus"`
	Message       string `json:"message"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginatedOrders struct {
	Message string         `json:"message"`
	Orders  []Order        `json:"orders"`
	Meta    PaginationMeta `json:"meta"`
}
