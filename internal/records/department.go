package records

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
)

type DepartmentInput struct {
	CompanyID uuid.UUID
	Name      string
}

func (s *Service) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (s *Service) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	var department models.Department
	if err := s.db.WithContext(ctx).First(&department, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

func (s *Service) CreateDepartment(ctx context.Context, in DepartmentInput) (*models.Department, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, newValidationError("name", "must not be empty")
	}

	department := models.Department{CompanyID: in.CompanyID, Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.First(&company, "id = ?", in.CompanyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.Department
		if err := tx.Where("company_id = ? AND name = ?", in.CompanyID, name).First(&existing).Error; err == nil {
			return errDuplicate("name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&department).Error; err != nil {
			return err
		}
		return recomputeCompanyCounters(tx, in.CompanyID)
	})
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// UpdateDepartment renames only; membership is untouched so no counters are
// recomputed.
func (s *Service) UpdateDepartment(ctx context.Context, id uuid.UUID, name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newValidationError("name", "must not be empty")
	}

	var department models.Department
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&department, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.Department
		if err := tx.Where("company_id = ? AND name = ? AND id <> ?", department.CompanyID, name, id).
			First(&existing).Error; err == nil {
			return errDuplicate("name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		department.Name = name
		return tx.Save(&department).Error
	})
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// DeleteDepartment removes member employees in one statement and recounts the
// parent company once after the cascade, not per employee.
func (s *Service) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var department models.Department
		if err := tx.First(&department, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("department_id = ?", id).Delete(&models.Employee{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Department{}, "id = ?", id).Error; err != nil {
			return err
		}
		return recomputeCompanyCounters(tx, department.CompanyID)
	})
}
