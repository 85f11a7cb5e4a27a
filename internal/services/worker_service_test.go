package services

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"testing"
	"time"

	"servibook_backend/internal/email"
	"servibook_backend/internal/models"
	"servibook_backend/internal/repositories"
	"servibook_backend/internal/services/dto"
	"servibook_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWorkerRepo is an in-memory WorkerRepository with the same filtering
// semantics as the real one.
type fakeWorkerRepo struct {
	workers map[string]*models.Worker
	seq     int
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: make(map[string]*models.Worker)}
}

func (f *fakeWorkerRepo) FindByID(id string) (*models.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, repositories.ErrWorkerNotFound
	}
	copied := *w
	return &copied, nil
}

func (f *fakeWorkerRepo) FindActiveByDocument(document string) (*models.Worker, error) {
	for _, w := range f.workers {
		if w.Document == document && w.Status == models.StatusActive {
			copied := *w
			return &copied, nil
		}
	}
	return nil, repositories.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) FindActiveByEmail(emailAddr string) (*models.Worker, error) {
	for _, w := range f.workers {
		if w.Email == emailAddr && w.Status == models.StatusActive {
			copied := *w
			return &copied, nil
		}
	}
	return nil, repositories.ErrWorkerNotFound
}

func (f *fakeWorkerRepo) Create(worker *models.Worker) error {
	f.seq++
	worker.ID = uuid.NewString()
	worker.CreatedAt = time.Unix(int64(f.seq), 0)
	copied := *worker
	f.workers[worker.ID] = &copied
	return nil
}

func (f *fakeWorkerRepo) Save(worker *models.Worker) error {
	copied := *worker
	f.workers[worker.ID] = &copied
	return nil
}

func (f *fakeWorkerRepo) FindWithFilter(criteria repositories.WorkerFilter) ([]models.Worker, int64, error) {
	var matched []models.Worker
	for _, w := range f.workers {
		if criteria.Name != "" &&
			!strings.Contains(strings.ToLower(w.FullName), strings.ToLower(criteria.Name)) {
			continue
		}
		if criteria.Status != nil && w.Status != *criteria.Status {
			continue
		}
		matched = append(matched, *w)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if criteria.Skip >= len(matched) {
		return nil, total, nil
	}
	matched = matched[criteria.Skip:]
	if criteria.Take < len(matched) {
		matched = matched[:criteria.Take]
	}
	return matched, total, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Check(password, hash string) bool     { return hash == "hashed:"+password }

func newWorkerService(repo repositories.WorkerRepository) WorkerService {
	return NewWorkerService(repo, fakeHasher{}, email.NoopProvider{})
}

func validWorkerRequest() *dto.CreateWorkerRequest {
	return &dto.CreateWorkerRequest{
		FullName:  "Ana Souza",
		Gender:    "female",
		CellPhone: "11987654321",
		Email:     "ana@example.com",
		Document:  "11122233344",
		BirthDate: "1995-04-12",
		Password:  "secret123",
	}
}

func TestWorkerCreate(t *testing.T) {
	t.Run("creates an active worker without exposing the credential", func(t *testing.T) {
		repo := newFakeWorkerRepo()
		svc := newWorkerService(repo)

		worker, err := svc.Create(validWorkerRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, worker.ID)
		assert.Equal(t, models.StatusActive, worker.Status)
		assert.True(t, worker.Available)
		assert.Empty(t, worker.PasswordHash, "credential must be stripped from the response")

		// The stored record keeps the hash, never the plaintext.
		stored := repo.workers[worker.ID]
		assert.Equal(t, "hashed:secret123", stored.PasswordHash)
	})

	t.Run("rejects a duplicate document among active workers", func(t *testing.T) {
		repo := newFakeWorkerRepo()
		svc := newWorkerService(repo)

		_, err := svc.Create(validWorkerRequest())
		require.NoError(t, err)

		dup := validWorkerRequest()
		dup.Email = "other@example.com"
		_, err = svc.Create(dup)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeConflict, appErr.Code)
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	})

	t.Run("rejects a duplicate email among active workers", func(t *testing.T) {
		repo := newFakeWorkerRepo()
		svc := newWorkerService(repo)

		_, err := svc.Create(validWorkerRequest())
		require.NoError(t, err)

		dup := validWorkerRequest()
		dup.Document = "99988877766"
		_, err = svc.Create(dup)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeConflict, appErr.Code)
	})

	t.Run("allows reuse of document and email after soft delete", func(t *testing.T) {
		repo := newFakeWorkerRepo()
		svc := newWorkerService(repo)

		first, err := svc.Create(validWorkerRequest())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(first.ID))

		second, err := svc.Create(validWorkerRequest())
		require.NoError(t, err, "inactive records must not block creation")
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("rejects an unparseable birth date", func(t *testing.T) {
		svc := newWorkerService(newFakeWorkerRepo())

		req := validWorkerRequest()
		req.BirthDate = "12/04/1995"
		_, err := svc.Create(req)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})
}

func TestWorkerGetOne(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := newWorkerService(repo)

	created, err := svc.Create(validWorkerRequest())
	require.NoError(t, err)

	t.Run("returns the worker without the credential", func(t *testing.T) {
		worker, err := svc.GetOne(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, worker.ID)
		assert.Empty(t, worker.PasswordHash)
	})

	t.Run("reports not found for an unknown id", func(t *testing.T) {
		_, err := svc.GetOne(uuid.NewString())

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	})
}

func TestWorkerGetAll(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := newWorkerService(repo)

	names := []string{"Ana Souza", "Bruno Lima", "Carla Dias", "Anabela Cruz", "Diego Rocha"}
	ids := make([]string, 0, len(names))
	for i, name := range names {
		req := validWorkerRequest()
		req.FullName = name
		req.Email = fmt.Sprintf("worker%d@example.com", i)
		req.Document = fmt.Sprintf("%011d", i)
		w, err := svc.Create(req)
		require.NoError(t, err)
		ids = append(ids, w.ID)
	}
	// Soft-delete one so default listing excludes it.
	require.NoError(t, svc.Delete(ids[4]))

	t.Run("defaults to active workers only", func(t *testing.T) {
		result, err := svc.GetAll(&dto.ListFilters{Take: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 4, result.Count)
		for _, item := range result.Data {
			assert.Equal(t, models.StatusActive, item.Status)
		}
	})

	t.Run("status=false returns only inactive workers", func(t *testing.T) {
		inactive := false
		result, err := svc.GetAll(&dto.ListFilters{Status: &inactive, Take: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.Count)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "Diego Rocha", result.Data[0].FullName)
	})

	t.Run("name filter is a case-insensitive substring match", func(t *testing.T) {
		result, err := svc.GetAll(&dto.ListFilters{Name: "ana", Take: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Count)
		for _, item := range result.Data {
			assert.Contains(t, strings.ToLower(item.FullName), "ana")
		}
	})

	t.Run("pages are disjoint and the count is stable", func(t *testing.T) {
		page1, err := svc.GetAll(&dto.ListFilters{Take: 2, Skip: 0})
		require.NoError(t, err)
		page2, err := svc.GetAll(&dto.ListFilters{Take: 2, Skip: 2})
		require.NoError(t, err)

		assert.Equal(t, page1.Count, page2.Count)

		seen := make(map[string]bool)
		for _, item := range page1.Data {
			seen[item.ID] = true
		}
		for _, item := range page2.Data {
			assert.False(t, seen[item.ID], "pages must not overlap")
			seen[item.ID] = true
		}
		assert.EqualValues(t, page1.Count, len(seen))
	})

	t.Run("projection never includes the credential field", func(t *testing.T) {
		result, err := svc.GetAll(&dto.ListFilters{Take: 10})
		require.NoError(t, err)
		require.NotEmpty(t, result.Data)
		// WorkerListItem has no credential field at all; spot-check the
		// projected values instead.
		first := result.Data[0]
		assert.NotEmpty(t, first.ID)
		assert.NotEmpty(t, first.Document)
	})
}

func TestWorkerDelete(t *testing.T) {
	repo := newFakeWorkerRepo()
	svc := newWorkerService(repo)

	created, err := svc.Create(validWorkerRequest())
	require.NoError(t, err)

	t.Run("first delete flips the worker to inactive", func(t *testing.T) {
		require.NoError(t, svc.Delete(created.ID))

		worker, err := svc.GetOne(created.ID)
		require.NoError(t, err, "soft-deleted workers stay queryable by id")
		assert.Equal(t, models.StatusInactive, worker.Status)
	})

	t.Run("second delete fails with an invalid-state error", func(t *testing.T) {
		err := svc.Delete(created.ID)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		err := svc.Delete(uuid.NewString())

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})
}
