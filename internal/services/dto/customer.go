package dto

import "servibook_backend/internal/models"

type CreateCustomerRequest struct {
	FullName  string `json:"fullName" validate:"required,min=3,max=100"`
	CellPhone string `json:"cellPhone" validate:"omitempty,min=8,max=20"`
	Email     string `json:"email" validate:"required,email"`
}

type ListCustomersResponse struct {
	Data  []models.Customer `json:"data"`
	Count int64             `json:"count"`
}
