package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"servibook_backend/internal/auth"
	"servibook_backend/internal/middleware"
	"servibook_backend/internal/models"
	"servibook_backend/internal/services/dto"
	"servibook_backend/internal/validator"
	"servibook_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWorkerService lets each test script the service layer's answers.
type stubWorkerService struct {
	createFn func(req *dto.CreateWorkerRequest) (*models.Worker, error)
	getOneFn func(id string) (*models.Worker, error)
	getAllFn func(filters *dto.ListFilters) (*dto.ListWorkersResponse, error)
	deleteFn func(id string) error
}

func (s *stubWorkerService) Create(req *dto.CreateWorkerRequest) (*models.Worker, error) {
	return s.createFn(req)
}

func (s *stubWorkerService) GetOne(id string) (*models.Worker, error) {
	return s.getOneFn(id)
}

func (s *stubWorkerService) GetAll(filters *dto.ListFilters) (*dto.ListWorkersResponse, error) {
	return s.getAllFn(filters)
}

func (s *stubWorkerService) Delete(id string) error {
	return s.deleteFn(id)
}

func newWorkerTestRouter(svc *stubWorkerService) (*gin.Engine, *auth.TokenManager) {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", 60)
	handler := NewWorkerHandler(NewBaseHandler(validator.New()), svc)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, middleware.AuthMiddleware(tokens))
	return router, tokens
}

func workerRequestBody() string {
	return `{
		"fullName": "Ana Souza",
		"gender": "female",
		"cellPhone": "11987654321",
		"email": "ana@example.com",
		"document": "11122233344",
		"birth_date": "1995-04-12",
		"password": "secret123"
	}`
}

func TestWorkerHandlerCreate(t *testing.T) {
	t.Run("201 on success, credential absent from the body", func(t *testing.T) {
		svc := &stubWorkerService{
			createFn: func(req *dto.CreateWorkerRequest) (*models.Worker, error) {
				return &models.Worker{
					BaseModel: models.BaseModel{ID: uuid.NewString()},
					FullName:  req.FullName,
					Email:     req.Email,
					Document:  req.Document,
					Status:    models.StatusActive,
					Available: true,
					BirthDate: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		router, _ := newWorkerTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/worker", strings.NewReader(workerRequestBody()))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.Contains(t, rec.Body.String(), `"fullName":"Ana Souza"`)
	})

	t.Run("400 on a body failing validation", func(t *testing.T) {
		svc := &stubWorkerService{
			createFn: func(req *dto.CreateWorkerRequest) (*models.Worker, error) {
				t.Fatal("service must not be called on invalid input")
				return nil, nil
			},
		}
		router, _ := newWorkerTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/worker", strings.NewReader(`{"fullName":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})

	t.Run("409 when the service reports a conflict", func(t *testing.T) {
		svc := &stubWorkerService{
			createFn: func(req *dto.CreateWorkerRequest) (*models.Worker, error) {
				return nil, apperrors.ErrConflict("worker", "Worker already exists")
			},
		}
		router, _ := newWorkerTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/worker", strings.NewReader(workerRequestBody()))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "CONFLICT")
	})
}

func TestWorkerHandlerGetOne(t *testing.T) {
	t.Run("400 on a malformed id before the service is reached", func(t *testing.T) {
		svc := &stubWorkerService{
			getOneFn: func(id string) (*models.Worker, error) {
				t.Fatal("service must not see malformed ids")
				return nil, nil
			},
		}
		router, _ := newWorkerTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/worker/not-a-uuid", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("404 for an unknown id", func(t *testing.T) {
		svc := &stubWorkerService{
			getOneFn: func(id string) (*models.Worker, error) {
				return nil, apperrors.ErrNotFound(nil, "worker", "Worker does not exist")
			},
		}
		router, _ := newWorkerTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/worker/"+uuid.NewString(), nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWorkerHandlerGetAll(t *testing.T) {
	t.Run("applies defaults and forwards the filters", func(t *testing.T) {
		var seen *dto.ListFilters
		svc := &stubWorkerService{
			getAllFn: func(filters *dto.ListFilters) (*dto.ListWorkersResponse, error) {
				seen = filters
				return &dto.ListWorkersResponse{Data: []dto.WorkerListItem{}, Count: 0}, nil
			},
		}
		router, _ := newWorkerTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/worker?name=ana&status=false", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "ana", seen.Name)
		require.NotNil(t, seen.Status)
		assert.False(t, *seen.Status)
		assert.Equal(t, 10, seen.Take)
		assert.Equal(t, 0, seen.Skip)
	})

	t.Run("returns the data and count envelope", func(t *testing.T) {
		svc := &stubWorkerService{
			getAllFn: func(filters *dto.ListFilters) (*dto.ListWorkersResponse, error) {
				return &dto.ListWorkersResponse{
					Data: []dto.WorkerListItem{{
						ID:       uuid.NewString(),
						FullName: "Ana Souza",
						Status:   models.StatusActive,
					}},
					Count: 7,
				}, nil
			},
		}
		router, _ := newWorkerTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/worker", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body dto.ListWorkersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 7, body.Count)
		require.Len(t, body.Data, 1)
	})
}

func TestWorkerHandlerDelete(t *testing.T) {
	id := uuid.NewString()

	t.Run("401 without a bearer token", func(t *testing.T) {
		svc := &stubWorkerService{
			deleteFn: func(string) error {
				t.Fatal("delete must not run unauthenticated")
				return nil
			},
		}
		router, _ := newWorkerTestRouter(svc)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/worker/"+id, nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("204 on success", func(t *testing.T) {
		svc := &stubWorkerService{
			deleteFn: func(string) error { return nil },
		}
		router, tokens := newWorkerTestRouter(svc)

		token, err := tokens.Generate(uuid.NewString(), "ana@example.com")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/worker/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("400 when the worker is already inactive", func(t *testing.T) {
		svc := &stubWorkerService{
			deleteFn: func(string) error {
				return apperrors.ErrInvalidStatus("worker", "Worker is already inactive")
			},
		}
		router, tokens := newWorkerTestRouter(svc)

		token, err := tokens.Generate(uuid.NewString(), "ana@example.com")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/worker/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_STATUS")
	})
}
