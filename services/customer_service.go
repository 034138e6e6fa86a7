package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"maxcleaners/models"
	"maxcleaners/repositories"
	"maxcleaners/utils"
)

// CustomerStore is the persistence surface the customer flows need. The
// pgx-backed repository satisfies it; tests substitute an in-memory fake.
type CustomerStore interface {
	Create(customer *models.Customer) error
	FindByPhoneNumber(phoneNumber string) (*models.Customer, error)
}

type CustomerService struct {
	customerRepo CustomerStore
}

func NewCustomerService() *CustomerService {
	return NewCustomerServiceWithStore(repositories.NewCustomerRepository())
}

func NewCustomerServiceWithStore(store CustomerStore) *CustomerService {
	return &CustomerService{customerRepo: store}
}

func (s *CustomerService) Signup(req models.SignupRequest) (*models.Customer, error) {
	log.Printf("Attempting to sign up customer with phone number: %s", req.PhoneNumber)

	if err := validateSignup(req); err != nil {
		return nil, err
	}

	if existing, _ := s.customerRepo.FindByPhoneNumber(req.PhoneNumber); existing != nil {
		log.Printf("Phone number %s is already registered", req.PhoneNumber)
		return nil, models.ErrDuplicatePhone
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Password:    hashedPassword,
		Address:     strings.TrimSpace(req.Address),
		CreatedBy:   "system",
		UpdatedBy:   "system",
	}

	if err := s.customerRepo.Create(customer); err != nil {
		log.Printf("Failed to register customer with phone number %s: %v", req.PhoneNumber, err)
		return nil, err
	}

	log.Printf("Customer with phone number %s registered successfully", req.PhoneNumber)
	return customer, nil
}

func (s *CustomerService) Login(req models.LoginRequest) (*models.Customer, error) {
	log.Printf("Attempting to log in customer with phone number: %s", req.PhoneNumber)

	customer, err := s.customerRepo.FindByPhoneNumber(strings.TrimSpace(req.PhoneNumber))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	ok, err := utils.VerifyPassword(customer.Password, req.Password)
	if err != nil || !ok {
		log.Printf("Invalid password for phone number: %s", req.PhoneNumber)
		return nil, models.ErrInvalidCredentials
	}

	log.Printf("Customer with phone number %s logged in successfully", req.PhoneNumber)
	return customer, nil
}

func (s *CustomerService) FindByPhoneNumber(phoneNumber string) (*models.Customer, error) {
	return s.customerRepo.FindByPhoneNumber(phoneNumber)
}

func validateSignup(req models.SignupRequest) error {
	fields := []struct {
		name  string
		value string
	}{
		{"First name", req.FirstName},
		{"Last name", req.LastName},
		{"Phone number", req.PhoneNumber},
		{"Password", req.Password},
		{"Address", req.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", models.ErrInvalidRequest, f.name)
		}
	}
	return nil
}
