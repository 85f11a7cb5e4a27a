package services

import (
	"fmt"

	"servibook_backend/internal/email"
	"servibook_backend/internal/logger"
	"servibook_backend/internal/models"
	"servibook_backend/internal/repositories"
	"servibook_backend/internal/services/dto"
	"servibook_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CustomerService interface {
	Create(req *dto.CreateCustomerRequest) (*models.Customer, error)
	GetOne(id string) (*models.Customer, error)
	GetAll(filters *dto.ListFilters) (*dto.ListCustomersResponse, error)
	Delete(id string) error
}

type CustomerServiceImpl struct {
	repo   repositories.CustomerRepository
	mailer email.Provider
}

func NewCustomerService(repo repositories.CustomerRepository, mailer email.Provider) CustomerService {
	return &CustomerServiceImpl{repo: repo, mailer: mailer}
}

func (s *CustomerServiceImpl) Create(req *dto.CreateCustomerRequest) (*models.Customer, error) {
	if _, err := s.repo.FindActiveByEmail(req.Email); err == nil {
		return nil, apperrors.ErrConflict("customer", "Customer already exists")
	} else if !apperrors.Is(err, repositories.ErrCustomerNotFound) {
		return nil, err
	}

	customer := &models.Customer{
		FullName:  req.FullName,
		CellPhone: req.CellPhone,
		Email:     req.Email,
		Status:    models.StatusActive,
	}

	if err := s.repo.Create(customer); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict("customer", "Customer already exists")
		}
		return nil, err
	}

	s.sendWelcome(customer.Email, customer.FullName)
	return customer, nil
}

func (s *CustomerServiceImpl) GetOne(id string) (*models.Customer, error) {
	customer, err := s.repo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.ErrNotFound(err, "customer", "Customer does not exist")
		}
		return nil, err
	}
	return customer, nil
}

// GetAll lists customers. Unlike workers there is no implicit active-only
// default: the status filter applies only when the caller sends one.
func (s *CustomerServiceImpl) GetAll(filters *dto.ListFilters) (*dto.ListCustomersResponse, error) {
	criteria := repositories.CustomerFilter{
		Name: filters.Name,
		Take: filters.Take,
		Skip: filters.Skip,
	}
	if filters.Status != nil {
		status := models.StatusFromBool(*filters.Status)
		criteria.Status = &status
	}

	customers, total, err := s.repo.FindWithFilter(criteria)
	if err != nil {
		return nil, err
	}

	return &dto.ListCustomersResponse{Data: customers, Count: total}, nil
}

func (s *CustomerServiceImpl) Delete(id string) error {
	customer, err := s.GetOne(id)
	if err != nil {
		return err
	}

	if customer.Status == models.StatusInactive {
		return apperrors.ErrInvalidStatus("customer", "Customer is already inactive")
	}

	customer.Status = models.StatusInactive
	return s.repo.Save(customer)
}

func (s *CustomerServiceImpl) sendWelcome(to, name string) {
	msg := &email.Message{
		To:      []string{to},
		Subject: "Welcome to Servibook",
		Body:    fmt.Sprintf("Hello %s, your account is ready.", name),
	}
	if err := s.mailer.Send(msg); err != nil {
		logger.Warn("failed to send welcome email", "to", to, "error", err)
	}
}
