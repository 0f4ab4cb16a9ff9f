package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company carries two denormalized counters. They are authoritative recounts
// of live child rows, refreshed by the records service inside the same
// transaction as any mutation that changes membership.
type Company struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	NumDepartments int64     `gorm:"not null;default:0" json:"numDepartments"`
	NumEmployees   int64     `gorm:"not null;default:0" json:"numEmployees"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
