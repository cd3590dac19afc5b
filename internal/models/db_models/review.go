package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ReviewerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment    string    `gorm:"type:text"`
}

func (Review) TableName() string {
	return "reviews"
}
