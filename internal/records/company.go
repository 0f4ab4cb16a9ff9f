package records

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
)

type CompanyInput struct {
	Name string
}

func (s *Service) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *Service) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := s.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (s *Service) CreateCompany(ctx context.Context, in CompanyInput) (*models.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, newValidationError("name", "must not be empty")
	}

	company := models.Company{Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Company
		if err := tx.Where("name = ?", name).First(&existing).Error; err == nil {
			return errDuplicate("name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&company).Error
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *Service) UpdateCompany(ctx context.Context, id uuid.UUID, in CompanyInput) (*models.Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, newValidationError("name", "must not be empty")
	}

	var company models.Company
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&company, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.Company
		if err := tx.Where("name = ? AND id <> ?", name, id).First(&existing).Error; err == nil {
			return errDuplicate("name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		company.Name = name
		return tx.Save(&company).Error
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// DeleteCompany cascades explicitly: employees first, then departments, then
// the company itself, all in one transaction.
func (s *Service) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.First(&company, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("company_id = ?", id).Delete(&models.Employee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&models.Department{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Company{}, "id = ?", id).Error
	})
}
