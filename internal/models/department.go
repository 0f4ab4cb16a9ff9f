package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department names are unique within a company, not globally.
type Department struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	CompanyID    uuid.UUID `gorm:"type:char(36);index;not null;uniqueIndex:idx_department_company_name" json:"companyId"`
	Name         string    `gorm:"size:100;not null;uniqueIndex:idx_department_company_name" json:"name"`
	NumEmployees int64     `gorm:"not null;default:0" json:"numEmployees"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (d *Department) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
