package services

import (
	"servibook_backend/internal/models"
	"servibook_backend/internal/repositories"
	"servibook_backend/internal/services/dto"
	"servibook_backend/pkg/apperrors"
)

type ServiceCatalog interface {
	Create(req *dto.CreateServiceRequest) (*models.Service, error)
	ListByWorker(workerID string) ([]models.Service, error)
}

type ServiceCatalogImpl struct {
	services repositories.ServiceRepository
	workers  repositories.WorkerRepository
}

func NewServiceCatalog(services repositories.ServiceRepository, workers repositories.WorkerRepository) ServiceCatalog {
	return &ServiceCatalogImpl{services: services, workers: workers}
}

// Create attaches a new service to an existing active worker.
func (s *ServiceCatalogImpl) Create(req *dto.CreateServiceRequest) (*models.Service, error) {
	worker, err := s.workers.FindByID(req.WorkerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkerNotFound) {
			return nil, apperrors.ErrNotFound(err, "service", "Worker does not exist")
		}
		return nil, err
	}

	if worker.Status == models.StatusInactive {
		return nil, apperrors.ErrInvalidStatus("service", "Worker is inactive")
	}

	service := &models.Service{
		WorkerID:    worker.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := s.services.Create(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *ServiceCatalogImpl) ListByWorker(workerID string) ([]models.Service, error) {
	if _, err := s.workers.FindByID(workerID); err != nil {
		if apperrors.Is(err, repositories.ErrWorkerNotFound) {
			return nil, apperrors.ErrNotFound(err, "service", "Worker does not exist")
		}
		return nil, err
	}
	return s.services.FindByWorker(workerID)
}
