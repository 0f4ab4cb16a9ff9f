package records

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
)

// Counter maintenance is an authoritative recount of live child rows, never
// an increment, so replaying it is idempotent and concurrent mutations cannot
// drift the totals. Callers must pass the transaction of the triggering
// mutation.

func recomputeCompanyCounters(tx *gorm.DB, companyID uuid.UUID) error {
	var numDepartments int64
	if err := tx.Model(&models.Department{}).Where("company_id = ?", companyID).Count(&numDepartments).Error; err != nil {
		return err
	}

	var numEmployees int64
	if err := tx.Model(&models.Employee{}).Where("company_id = ?", companyID).Count(&numEmployees).Error; err != nil {
		return err
	}

	return tx.Model(&models.Company{}).Where("id = ?", companyID).Updates(map[string]any{
		"num_departments": numDepartments,
		"num_employees":   numEmployees,
	}).Error
}

// recomputeDepartmentCounters recounts the department and then its parent
// company, mirroring the ownership chain Employee -> Department -> Company.
func recomputeDepartmentCounters(tx *gorm.DB, departmentID uuid.UUID) error {
	var department models.Department
	if err := tx.First(&department, "id = ?", departmentID).Error; err != nil {
		return err
	}

	var numEmployees int64
	if err := tx.Model(&models.Employee{}).Where("department_id = ?", departmentID).Count(&numEmployees).Error; err != nil {
		return err
	}

	if err := tx.Model(&models.Department{}).Where("id = ?", departmentID).
		Update("num_employees", numEmployees).Error; err != nil {
		return err
	}

	return recomputeCompanyCounters(tx, department.CompanyID)
}
