package models

// Service is a job a worker offers. The worker owns the collection; a
// service never exists without its worker.
type Service struct {
	BaseModel
	WorkerID    string  `gorm:"type:uuid;not null;index" json:"worker_id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500" json:"description"`
	Price       float64 `json:"price"`
}
