package handlers

import (
	"net/http"

	"servibook_backend/internal/services"
	"servibook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	*BaseHandler
	workerService services.WorkerService
}

func NewWorkerHandler(base *BaseHandler, workerService services.WorkerService) *WorkerHandler {
	return &WorkerHandler{
		BaseHandler:   base,
		workerService: workerService,
	}
}

func (h *WorkerHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	workers := r.Group("/worker")
	{
		workers.POST("", h.Create)
		workers.GET("", h.GetAll)
		workers.GET("/:id", h.GetOne)
		workers.DELETE("/:id", authMW, h.Delete)
	}
}

// Create godoc
// @Summary Register a worker
// @Description Creates a worker account. Document and email must be unique among active workers.
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.CreateWorkerRequest true "Worker data"
// @Success 201 {object} models.Worker
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Worker already exists"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /worker [post]
func (h *WorkerHandler) Create(c *gin.Context) {
	var req dto.CreateWorkerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	worker, err := h.workerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, worker)
}

// GetAll godoc
// @Summary List workers
// @Description Paginated worker listing with optional case-insensitive name filter. Defaults to active workers only.
// @Tags workers
// @Produce json
// @Param name query string false "Name substring"
// @Param status query bool false "Active status filter"
// @Param take query int false "Page size" default(10)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} dto.ListWorkersResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /worker [get]
func (h *WorkerHandler) GetAll(c *gin.Context) {
	var filters dto.ListFilters
	if !h.BindQuery(c, &filters) {
		return
	}

	result, err := h.workerService.GetAll(&filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOne godoc
// @Summary Get a worker by ID
// @Description Returns one worker with its services attached.
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID (UUID)"
// @Success 200 {object} models.Worker
// @Failure 404 {object} apperrors.ErrorResponse "Worker does not exist"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /worker/{id} [get]
func (h *WorkerHandler) GetOne(c *gin.Context) {
	id, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	worker, err := h.workerService.GetOne(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// Delete godoc
// @Summary Soft-delete a worker
// @Description Flips the worker to inactive. The record remains queryable by ID and by status=false listings.
// @Tags workers
// @Security BearerAuth
// @Param id path string true "Worker ID (UUID)"
// @Success 204
// @Failure 400 {object} apperrors.ErrorResponse "Worker is already inactive"
// @Failure 404 {object} apperrors.ErrorResponse "Worker does not exist"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /worker/{id} [delete]
func (h *WorkerHandler) Delete(c *gin.Context) {
	id, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workerService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
