package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"maxcleaners/middleware"
	"maxcleaners/models"
	"maxcleaners/repositories"
	"maxcleaners/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService    *services.OrderService
	customerService *services.CustomerService
}

func NewOrderController() *OrderController {
	return &OrderController{
		orderService:    services.NewOrderService(),
		customerService: services.NewCustomerService(),
	}
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

// CreateOrder godoc
// @Summary Create order
// @Description Create a new laundry order for the authenticated customer
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order draft"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /createOrder [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Caller identity could not be resolved",
		})
		return
	}

	customer, err := ctrl.customerService.FindByPhoneNumber(identity.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Customer not found for phone number: " + identity.PhoneNumber,
		})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	order, err := ctrl.orderService.CreateOrder(req, customer)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
			return
		}
		log.Printf("Unexpected error creating order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// GetOrder godoc
// @Summary Get order by ID
// @Description Fetch a single order with its items
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /getOrder/{orderId} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid order ID",
		})
		return
	}

	order, err := ctrl.orderService.GetOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Status:  http.StatusNotFound,
			Message: "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order found",
		"order":   order,
	})
}

// UpdateOrder godoc
// @Summary Update order
// @Description Update order status and items (Admin only)
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderId path int true "Order ID"
// @Param request body models.UpdateOrderRequest true "Update fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /updateOrder/{orderId} [put]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid order ID",
		})
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	identity, _ := middleware.GetIdentity(c)
	order, err := ctrl.orderService.UpdateOrder(orderID, req, identity.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Status:  http.StatusNotFound,
				Message: "Order not found",
			})
		case errors.Is(err, models.ErrAlreadyUpToDate):
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Status:  http.StatusConflict,
				Message: "Order is already up-to-date",
			})
		case errors.Is(err, models.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		default:
			log.Printf("Unexpected error updating order %d: %v", orderID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Status:  http.StatusInternalServerError,
				Message: "An unexpected error occurred",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   order,
	})
}

// RetrieveOrders godoc
// @Summary List orders
// @Description List orders with optional date range, city and status filters (Admin only)
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param city query string false "City filter"
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedOrders
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /retriveOrders [get]
func (ctrl *OrderController) RetrieveOrders(c *gin.Context) {
	filter := repositories.OrderFilter{
		City: c.Query("city"),
	}

	if raw := c.Query("startDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "Invalid startDate, expected YYYY-MM-DD",
			})
			return
		}
		filter.StartDate = &parsed
	}
	if raw := c.Query("endDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "Invalid endDate, expected YYYY-MM-DD",
			})
			return
		}
		filter.EndDate = &parsed
	}
	if raw := c.Query("status"); raw != "" {
		status := models.OrderStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: "Invalid status filter",
			})
			return
		}
		filter.Status = status
	}

	page, limit := ctrl.getPaginationParams(c, 10)

	orders, total, err := ctrl.orderService.RetrieveOrders(filter, page, limit)
	if err != nil {
		log.Printf("Unexpected error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: "An unexpected error occurred",
		})
		return
	}

	// Empty pages are reported as not-found so clients can tell "no
	// matches" apart from a failed query.
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No orders found"})
		return
	}

	totalPages := (total + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedOrders{
		Message: "Orders fetched successfully",
		Orders:  orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}
