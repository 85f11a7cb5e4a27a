package models

import "time"

type Worker struct {
	BaseModel
	FullName     string       `gorm:"size:100;not null" json:"fullName"`
	Gender       string       `gorm:"size:20" json:"gender"`
	CellPhone    string       `gorm:"size:20" json:"cellPhone"`
	Email        string       `gorm:"size:100;not null;index" json:"email"`
	Document     string       `gorm:"size:20;not null;index" json:"document"`
	PasswordHash string       `gorm:"size:255;not null" json:"-"`
	Status       RecordStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Available    bool         `gorm:"default:true" json:"available"`
	BirthDate    time.Time    `json:"birth_date"`

	// Relations
	Services []Service `gorm:"foreignKey:WorkerID" json:"services,omitempty"`
}
