package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"maxcleaners/config"
	"maxcleaners/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// OrderFilter holds the optional retrieval filters; zero values mean
// "not filtered".
type OrderFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	City      string
	Status    models.OrderStatus
}

func (r *OrderRepository) Create(order *models.Order) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, order_type, pickup_date, status, total_price, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`,
		order.CustomerID,
		order.OrderType,
		order.PickupDate,
		order.Status,
		order.TotalPrice,
		order.CreatedBy,
		order.UpdatedBy,
		now,
		now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, quantity, price)
			VALUES ($1, $2, $3)
			RETURNING id
		`, item.OrderID, item.Quantity, item.Price).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindByID(id int) (*models.Order, error) {
	query := `
		SELECT id, customer_id, order_type, pickup_date, status, total_price, created_by, updated_by, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	order := &models.Order{}
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.OrderType,
		&order.PickupDate,
		&order.Status,
		&order.TotalPrice,
		&order.CreatedBy,
		&order.UpdatedBy,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.findItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// Update persists a new status, total and item set. Items are replaced
// wholesale inside the same transaction as the order row.
func (r *OrderRepository) Update(order *models.Order) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE orders
		SET status = $1, total_price = $2, updated_by = $3, updated_at = $4
		WHERE id = $5
	`, order.Status, order.TotalPrice, order.UpdatedBy, time.Now(), order.ID)
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, quantity, price)
			VALUES ($1, $2, $3)
			RETURNING id
		`, item.OrderID, item.Quantity, item.Price).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindAll(filter OrderFilter, limit, offset int) ([]models.Order, int, error) {
	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.StartDate != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("o.created_at >= $%d", argIndex))
		args = append(args, *filter.StartDate)
		argIndex++
	}
	if filter.EndDate != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("o.created_at < $%d", argIndex))
		args = append(args, filter.EndDate.AddDate(0, 0, 1))
		argIndex++
	}
	if filter.City != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("c.address ILIKE $%d", argIndex))
		args = append(args, "%"+filter.City+"%")
		argIndex++
	}
	if filter.Status != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("o.status = $%d", argIndex))
		args = append(args, filter.Status)
		argIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
	` + whereClause
	if err := config.DB.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT o.id, o.customer_id, o.order_type, o.pickup_date, o.status, o.total_price, o.created_by, o.updated_by, o.created_at, o.updated_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
	` + whereClause + fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.OrderType,
			&order.PickupDate,
			&order.Status,
			&order.TotalPrice,
			&order.CreatedBy,
			&order.UpdatedBy,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		items, err := r.findItems(orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}

	return orders, total, nil
}

func (r *OrderRepository) findItems(orderID int) ([]models.Item, error) {
	rows, err := config.DB.Query(context.Background(), `
		SELECT id, order_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
