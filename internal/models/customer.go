package models

type Customer struct {
	BaseModel
	FullName  string       `gorm:"size:100;not null" json:"fullName"`
	CellPhone string       `gorm:"size:20" json:"cellPhone"`
	Email     string       `gorm:"size:100;not null;index" json:"email"`
	Status    RecordStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
}
