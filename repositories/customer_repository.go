package repositories

import (
	"context"
	"errors"
	"time"

	"maxcleaners/config"
	"maxcleaners/models"

	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, phone_number, password, address, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := config.DB.QueryRow(
		context.Background(),
		query,
		customer.FirstName,
		customer.LastName,
		customer.PhoneNumber,
		customer.Password,
		customer.Address,
		customer.CreatedBy,
		customer.UpdatedBy,
		now,
		now,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)

	return err
}

func (r *CustomerRepository) FindByPhoneNumber(phoneNumber string) (*models.Customer, error) {
	query := `
		SELECT id, first_name, last_name, phone_number, password, address, created_by, updated_by, created_at, updated_at
		FROM customers
		WHERE phone_number = $1
	`

	customer := &models.Customer{}
	err := config.DB.QueryRow(context.Background(), query, phoneNumber).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.PhoneNumber,
		&customer.Password,
		&customer.Address,
		&customer.CreatedBy,
		&customer.UpdatedBy,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return customer, nil
}
