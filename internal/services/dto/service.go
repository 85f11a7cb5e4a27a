package dto

type CreateServiceRequest struct {
	WorkerID    string  `json:"worker_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
}
