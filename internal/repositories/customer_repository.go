package repositories

import (
	"errors"

	"servibook_backend/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerRepository interface {
	FindByID(id string) (*models.Customer, error)
	FindActiveByEmail(email string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Save(customer *models.Customer) error
	FindWithFilter(criteria CustomerFilter) ([]models.Customer, int64, error)
}

type CustomerFilter struct {
	Name   string
	Status *models.RecordStatus
	Take   int
	Skip   int
}

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) FindByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepositoryImpl) FindActiveByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("email = ?", email).Where("status = ?", models.StatusActive).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepositoryImpl) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepositoryImpl) Save(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *CustomerRepositoryImpl) FindWithFilter(criteria CustomerFilter) ([]models.Customer, int64, error) {
	var (
		customers []models.Customer
		total     int64
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		return r.filtered(criteria).
			Order("created_at DESC").
			Limit(criteria.Take).Offset(criteria.Skip).
			Find(&customers).Error
	})
	g.Go(func() error {
		return r.filtered(criteria).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *CustomerRepositoryImpl) filtered(criteria CustomerFilter) *gorm.DB {
	query := r.db.Model(&models.Customer{})
	if criteria.Name != "" {
		query = query.Where("full_name ILIKE ?", "%"+criteria.Name+"%")
	}
	if criteria.Status != nil {
		query = query.Where("status = ?", *criteria.Status)
	}
	return query
}
