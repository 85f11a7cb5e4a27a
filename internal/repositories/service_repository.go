package repositories

import (
	"errors"

	"servibook_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceRepository interface {
	FindByID(id string) (*models.Service, error)
	FindByWorker(workerID string) ([]models.Service, error)
	Create(service *models.Service) error
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) FindByID(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepositoryImpl) FindByWorker(workerID string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("worker_id = ?", workerID).Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepositoryImpl) Create(service *models.Service) error {
	return r.db.Create(service).Error
}
