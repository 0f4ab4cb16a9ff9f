// Package records is the record service: it orchestrates CRUD over companies,
// departments, employees, and users, and keeps the denormalized counters and
// hire-date fields consistent. Every mutation runs its invariant recomputation
// inside the same transaction as the triggering write.
package records

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
)

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// today truncates the clock to a date; HiredOn and DaysEmployed are
// date-granular.
func (s *Service) today() time.Time {
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type Summary struct {
	Companies   int64 `json:"companies"`
	Departments int64 `json:"departments"`
	Employees   int64 `json:"employees"`
	Hired       int64 `json:"hired"`
}

// Summarize reports live record totals across the whole store.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	db := s.db.WithContext(ctx)
	var summary Summary
	if err := db.Model(&models.Company{}).Count(&summary.Companies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Department{}).Count(&summary.Departments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Employee{}).Count(&summary.Employees).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Employee{}).Where("status = ?", models.StatusHired).Count(&summary.Hired).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}
