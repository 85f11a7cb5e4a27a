package dto

import (
	"time"

	"servibook_backend/internal/models"
)

type CreateWorkerRequest struct {
	FullName  string `json:"fullName" validate:"required,min=3,max=100"`
	Gender    string `json:"gender" validate:"omitempty,oneof=male female other"`
	CellPhone string `json:"cellPhone" validate:"required,min=8,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Document  string `json:"document" validate:"required,min=11,max=20"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
}

// ListFilters are the query parameters shared by the worker and customer
// list endpoints. Status is the API-level boolean; nil means "not given".
type ListFilters struct {
	Name   string `form:"name" validate:"omitempty,max=100"`
	Status *bool  `form:"status"`
	Take   int    `form:"take,default=10" validate:"min=1,max=100"`
	Skip   int    `form:"skip,default=0" validate:"min=0"`
}

// WorkerListItem is the getAll projection: every listed field except the
// credential.
type WorkerListItem struct {
	ID        string              `json:"id"`
	FullName  string              `json:"fullName"`
	Gender    string              `json:"gender"`
	CellPhone string              `json:"cellPhone"`
	Email     string              `json:"email"`
	Status    models.RecordStatus `json:"status"`
	Document  string              `json:"document"`
	Available bool                `json:"available"`
	BirthDate time.Time           `json:"birth_date"`
}

type ListWorkersResponse struct {
	Data  []WorkerListItem `json:"data"`
	Count int64            `json:"count"`
}

func WorkerToListItem(w *models.Worker) WorkerListItem {
	return WorkerListItem{
		ID:        w.ID,
		FullName:  w.FullName,
		Gender:    w.Gender,
		CellPhone: w.CellPhone,
		Email:     w.Email,
		Status:    w.Status,
		Document:  w.Document,
		Available: w.Available,
		BirthDate: w.BirthDate,
	}
}
