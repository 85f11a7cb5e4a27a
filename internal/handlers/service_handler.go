package handlers

import (
	"net/http"

	"servibook_backend/internal/services"
	"servibook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	*BaseHandler
	catalog services.ServiceCatalog
}

func NewServiceHandler(base *BaseHandler, catalog services.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

func (h *ServiceHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	group := r.Group("/service")
	{
		group.POST("", authMW, h.Create)
		group.GET("/worker/:workerId", h.ListByWorker)
	}
}

// Create godoc
// @Summary Create a service offering
// @Description Attaches a service to an existing active worker.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param service body dto.CreateServiceRequest true "Service data"
// @Success 201 {object} models.Service
// @Failure 400 {object} apperrors.ErrorResponse "Worker is inactive"
// @Failure 404 {object} apperrors.ErrorResponse "Worker does not exist"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /service [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	service, err := h.catalog.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// ListByWorker godoc
// @Summary List a worker's services
// @Tags services
// @Produce json
// @Param workerId path string true "Worker ID (UUID)"
// @Success 200 {array} models.Service
// @Failure 404 {object} apperrors.ErrorResponse "Worker does not exist"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /service/worker/{workerId} [get]
func (h *ServiceHandler) ListByWorker(c *gin.Context) {
	workerID, ok := h.UUIDParam(c, "workerId")
	if !ok {
		return
	}

	services, err := h.catalog.ListByWorker(workerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}
