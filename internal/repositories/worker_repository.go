package repositories

import (
	"errors"

	"servibook_backend/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var ErrWorkerNotFound = errors.New("worker not found")

type WorkerRepository interface {
	FindByID(id string) (*models.Worker, error)
	FindActiveByDocument(document string) (*models.Worker, error)
	FindActiveByEmail(email string) (*models.Worker, error)
	Create(worker *models.Worker) error
	Save(worker *models.Worker) error
	FindWithFilter(criteria WorkerFilter) ([]models.Worker, int64, error)
}

type WorkerFilter struct {
	Name   string
	Status *models.RecordStatus
	Take   int
	Skip   int
}

type WorkerRepositoryImpl struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &WorkerRepositoryImpl{db: db}
}

// FindByID loads a worker with its owned services attached.
func (r *WorkerRepositoryImpl) FindByID(id string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.Preload("Services").First(&worker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepositoryImpl) FindActiveByDocument(document string) (*models.Worker, error) {
	return r.findActiveBy("document = ?", document)
}

func (r *WorkerRepositoryImpl) FindActiveByEmail(email string) (*models.Worker, error) {
	return r.findActiveBy("email = ?", email)
}

func (r *WorkerRepositoryImpl) findActiveBy(cond string, value string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.Where(cond, value).Where("status = ?", models.StatusActive).
		First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepositoryImpl) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

func (r *WorkerRepositoryImpl) Save(worker *models.Worker) error {
	return r.db.Save(worker).Error
}

// FindWithFilter returns one page of workers plus the total count over the
// same predicate, ignoring pagination. Both queries are read-only and
// independent, so they run concurrently.
func (r *WorkerRepositoryImpl) FindWithFilter(criteria WorkerFilter) ([]models.Worker, int64, error) {
	var (
		workers []models.Worker
		total   int64
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		return r.filtered(criteria).
			Order("created_at DESC").
			Limit(criteria.Take).Offset(criteria.Skip).
			Find(&workers).Error
	})
	g.Go(func() error {
		return r.filtered(criteria).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return workers, total, nil
}

// filtered builds a fresh query chain; each caller gets its own builder so
// the page and count goroutines never share a statement.
func (r *WorkerRepositoryImpl) filtered(criteria WorkerFilter) *gorm.DB {
	query := r.db.Model(&models.Worker{})
	if criteria.Name != "" {
		query = query.Where("full_name ILIKE ?", "%"+criteria.Name+"%")
	}
	if criteria.Status != nil {
		query = query.Where("status = ?", *criteria.Status)
	}
	return query
}
