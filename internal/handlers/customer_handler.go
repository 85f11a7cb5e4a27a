package handlers

import (
	"net/http"

	"servibook_backend/internal/services"
	"servibook_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	*BaseHandler
	customerService services.CustomerService
}

func NewCustomerHandler(base *BaseHandler, customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		BaseHandler:     base,
		customerService: customerService,
	}
}

func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	customers := r.Group("/customer")
	{
		customers.POST("", h.Create)
		customers.GET("", h.GetAll)
		customers.GET("/:id", h.GetOne)
		customers.DELETE("/:id", authMW, h.Delete)
	}
}

// Create godoc
// @Summary Register a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer data"
// @Success 201 {object} models.Customer
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Customer already exists"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /customer [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetAll godoc
// @Summary List customers
// @Description Paginated customer listing. The status filter applies only when given; there is no active-only default.
// @Tags customers
// @Produce json
// @Param name query string false "Name substring"
// @Param status query bool false "Active status filter"
// @Param take query int false "Page size" default(10)
// @Param skip query int false "Offset" default(0)
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /customer [get]
func (h *CustomerHandler) GetAll(c *gin.Context) {
	var filters dto.ListFilters
	if !h.BindQuery(c, &filters) {
		return
	}

	result, err := h.customerService.GetAll(&filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOne godoc
// @Summary Get a customer by ID
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID (UUID)"
// @Success 200 {object} models.Customer
// @Failure 404 {object} apperrors.ErrorResponse "Customer does not exist"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /customer/{id} [get]
func (h *CustomerHandler) GetOne(c *gin.Context) {
	id, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetOne(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete godoc
// @Summary Soft-delete a customer
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID (UUID)"
// @Success 204
// @Failure 400 {object} apperrors.ErrorResponse "Customer is already inactive"
// @Failure 404 {object} apperrors.ErrorResponse "Customer does not exist"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /customer/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
