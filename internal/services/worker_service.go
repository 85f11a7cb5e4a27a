package services

import (
	"fmt"
	"time"

	"servibook_backend/internal/auth"
	"servibook_backend/internal/email"
	"servibook_backend/internal/logger"
	"servibook_backend/internal/models"
	"servibook_backend/internal/repositories"
	"servibook_backend/internal/services/dto"
	"servibook_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type WorkerService interface {
	Create(req *dto.CreateWorkerRequest) (*models.Worker, error)
	GetOne(id string) (*models.Worker, error)
	GetAll(filters *dto.ListFilters) (*dto.ListWorkersResponse, error)
	Delete(id string) error
}

type WorkerServiceImpl struct {
	repo   repositories.WorkerRepository
	hasher auth.Hasher
	mailer email.Provider
}

func NewWorkerService(repo repositories.WorkerRepository, hasher auth.Hasher, mailer email.Provider) WorkerService {
	return &WorkerServiceImpl{repo: repo, hasher: hasher, mailer: mailer}
}

// Create registers a worker. Uniqueness of document and email among active
// workers is probed first for a friendly error; the partial unique indexes
// remain authoritative, so a lost race still surfaces as a conflict.
func (s *WorkerServiceImpl) Create(req *dto.CreateWorkerRequest) (*models.Worker, error) {
	taken, err := s.isTaken(req.Document, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrConflict("worker", "Worker already exists")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid birth_date format, expected YYYY-MM-DD")
	}

	worker := &models.Worker{
		FullName:     req.FullName,
		Gender:       req.Gender,
		CellPhone:    req.CellPhone,
		Email:        req.Email,
		Document:     req.Document,
		PasswordHash: hash,
		Status:       models.StatusActive,
		Available:    true,
		BirthDate:    birthDate,
	}

	if err := s.repo.Create(worker); err != nil {
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict("worker", "Worker already exists")
		}
		return nil, err
	}

	s.sendWelcome(worker.Email, worker.FullName)

	worker.PasswordHash = ""
	return worker, nil
}

// isTaken reports whether an active worker already holds the document or the
// email. A not-found sentinel from either probe means the value is free; any
// other store failure propagates.
func (s *WorkerServiceImpl) isTaken(document, email string) (bool, error) {
	if _, err := s.repo.FindActiveByDocument(document); err == nil {
		return true, nil
	} else if !apperrors.Is(err, repositories.ErrWorkerNotFound) {
		return false, err
	}

	if _, err := s.repo.FindActiveByEmail(email); err == nil {
		return true, nil
	} else if !apperrors.Is(err, repositories.ErrWorkerNotFound) {
		return false, err
	}

	return false, nil
}

func (s *WorkerServiceImpl) GetOne(id string) (*models.Worker, error) {
	worker, err := s.repo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkerNotFound) {
			return nil, apperrors.ErrNotFound(err, "worker", "Worker does not exist")
		}
		return nil, err
	}

	worker.PasswordHash = ""
	return worker, nil
}

// GetAll lists workers. When no status filter is given only active workers
// are returned.
func (s *WorkerServiceImpl) GetAll(filters *dto.ListFilters) (*dto.ListWorkersResponse, error) {
	status := models.StatusActive
	if filters.Status != nil {
		status = models.StatusFromBool(*filters.Status)
	}

	criteria := repositories.WorkerFilter{
		Name:   filters.Name,
		Status: &status,
		Take:   filters.Take,
		Skip:   filters.Skip,
	}

	workers, total, err := s.repo.FindWithFilter(criteria)
	if err != nil {
		return nil, err
	}

	items := make([]dto.WorkerListItem, 0, len(workers))
	for i := range workers {
		items = append(items, dto.WorkerToListItem(&workers[i]))
	}

	return &dto.ListWorkersResponse{Data: items, Count: total}, nil
}

// Delete soft-deletes a worker. The record stays queryable by ID and through
// status=false listings; deleting an already inactive worker fails.
func (s *WorkerServiceImpl) Delete(id string) error {
	worker, err := s.repo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkerNotFound) {
			return apperrors.ErrNotFound(err, "worker", "Worker does not exist")
		}
		return err
	}

	if worker.Status == models.StatusInactive {
		return apperrors.ErrInvalidStatus("worker", "Worker is already inactive")
	}

	worker.Status = models.StatusInactive
	return s.repo.Save(worker)
}

func (s *WorkerServiceImpl) sendWelcome(to, name string) {
	msg := &email.Message{
		To:      []string{to},
		Subject: "Welcome to Servibook",
		Body:    fmt.Sprintf("Hello %s, your worker account is ready.", name),
	}
	if err := s.mailer.Send(msg); err != nil {
		logger.Warn("failed to send welcome email", "to", to, "error", err)
	}
}
