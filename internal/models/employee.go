package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeStatus is the closed set of hiring-pipeline states.
type EmployeeStatus string

const (
	StatusApplicationReceived EmployeeStatus = "application_received"
	StatusInterviewScheduled  EmployeeStatus = "interview_scheduled"
	StatusHired               EmployeeStatus = "hired"
	StatusNotAccepted         EmployeeStatus = "not_accepted"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case StatusApplicationReceived, StatusInterviewScheduled, StatusHired, StatusNotAccepted:
		return true
	}
	return false
}

// Employee belongs to a Department and, redundantly, to that Department's
// Company. The records service rejects any write where the two disagree.
// HiredOn is stamped the first time status becomes hired and is never cleared
// afterwards, so DaysEmployed keeps accruing even if the status later changes.
type Employee struct {
	ID           uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	CompanyID    uuid.UUID      `gorm:"type:char(36);index;not null" json:"companyId"`
	DepartmentID uuid.UUID      `gorm:"type:char(36);index;not null" json:"departmentId"`
	Status       EmployeeStatus `gorm:"size:30;not null;default:application_received" json:"status"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	MobileNumber string         `gorm:"size:16;not null" json:"mobileNumber"`
	Address      string         `gorm:"size:500" json:"address"`
	Designation  string         `gorm:"size:100" json:"designation"`
	HiredOn      *time.Time     `json:"hiredOn,omitempty"`
	DaysEmployed int64          `gorm:"not null;default:0" json:"daysEmployed"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
