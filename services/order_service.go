package services

import (
	"fmt"
	"log"
	"time"

	"maxcleaners/models"
	"maxcleaners/repositories"
)

// OrderStore is the persistence surface the order flows need. The
// pgx-backed repository satisfies it; tests substitute an in-memory fake.
type OrderStore interface {
	Create(order *models.Order) error
	FindByID(id int) (*models.Order, error)
	Update(order *models.Order) error
	FindAll(filter repositories.OrderFilter, limit, offset int) ([]models.Order, int, error)
}

type OrderService struct {
	orderRepo OrderStore
}

func NewOrderService() *OrderService {
	return NewOrderServiceWithStore(repositories.NewOrderRepository())
}

func NewOrderServiceWithStore(store OrderStore) *OrderService {
	return &OrderService{orderRepo: store}
}

// CalculateTotalPrice sums unit price times quantity over all items.
// Express orders carry a flat $1 surcharge per unit across the order.
func CalculateTotalPrice(items []models.Item, orderType models.OrderType) float64 {
	var total float64
	var totalQuantity int

	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		totalQuantity += item.Quantity
	}

	if orderType == models.OrderTypeExpress {
		total += float64(totalQuantity)
	}

	return total
}

func (s *OrderService) CreateOrder(req models.CreateOrderRequest, customer *models.Customer) (*models.Order, error) {
	if req.PickupDate == nil {
		return nil, fmt.Errorf("%w: pickup date is required", models.ErrInvalidRequest)
	}
	if !req.PickupDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: pickup date must be in the future", models.ErrInvalidRequest)
	}
	if req.OrderType == "" {
		return nil, fmt.Errorf("%w: order type is required", models.ErrInvalidRequest)
	}
	if !req.OrderType.Valid() {
		return nil, fmt.Errorf("%w: unrecognized order type %q", models.ErrInvalidRequest, req.OrderType)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", models.ErrInvalidRequest)
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID: customer.ID,
		OrderType:  req.OrderType,
		PickupDate: *req.PickupDate,
		Status:     models.StatusCreated,
		TotalPrice: CalculateTotalPrice(items, req.OrderType),
		Items:      items,
		CreatedBy:  customer.PhoneNumber,
		UpdatedBy:  customer.PhoneNumber,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	log.Printf("Order %d created for customer %d, total %.2f", order.ID, customer.ID, order.TotalPrice)
	return order, nil
}

func (s *OrderService) GetOrder(id int) (*models.Order, error) {
	return s.orderRepo.FindByID(id)
}

// UpdateOrder applies a status change and optional item replacement.
// Admin authorization happens at the API layer before this is called.
func (s *OrderService) UpdateOrder(id int, req models.UpdateOrderRequest, updatedBy string) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Status == "" {
		return nil, fmt.Errorf("%w: status is required", models.ErrInvalidRequest)
	}
	if !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unrecognized status %q", models.ErrInvalidRequest, req.Status)
	}

	newItems := order.Items
	if req.Items != nil {
		newItems, err = buildItems(req.Items)
		if err != nil {
			return nil, err
		}
	}
	newPrice := CalculateTotalPrice(newItems, order.OrderType)

	if req.Status == order.Status {
		if itemsEqual(order.Items, newItems) && newPrice == order.TotalPrice {
			return nil, models.ErrAlreadyUpToDate
		}
	} else if !models.CanTransition(order.Status, req.Status) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", models.ErrInvalidRequest, order.Status, req.Status)
	}

	order.Status = req.Status
	order.Items = newItems
	order.TotalPrice = newPrice
	order.UpdatedBy = updatedBy

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	log.Printf("Order %d updated to status %s", order.ID, order.Status)
	return s.orderRepo.FindByID(id)
}

func (s *OrderService) RetrieveOrders(filter repositories.OrderFilter, page, limit int) ([]models.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	return s.orderRepo.FindAll(filter, limit, offset)
}

func buildItems(reqs []models.OrderItemRequest) ([]models.Item, error) {
	items := make([]models.Item, 0, len(reqs))
	for _, r := range reqs {
		if r.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", models.ErrInvalidRequest)
		}
		if r.Price < 0 {
			return nil, fmt.Errorf("%w: item price must not be negative", models.ErrInvalidRequest)
		}
		items = append(items, models.Item{Quantity: r.Quantity, Price: r.Price})
	}
	return items, nil
}

func itemsEqual(a, b []models.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Quantity != b[i].Quantity || a[i].Price != b[i].Price {
			return false
		}
	}
	return true
}
