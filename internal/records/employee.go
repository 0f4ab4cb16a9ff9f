package records

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
)

// Up to 15 digits, optional leading + and country code 1.
var mobileNumberPattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

type EmployeeInput struct {
	CompanyID    uuid.UUID
	DepartmentID uuid.UUID
	Status       models.EmployeeStatus
	Name         string
	Email        string
	MobileNumber string
	Address      string
	Designation  string
}

func (s *Service) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (s *Service) CreateEmployee(ctx context.Context, in EmployeeInput) (*models.Employee, error) {
	if in.Status == "" {
		in.Status = models.StatusApplicationReceived
	}
	if err := validateEmployeeInput(in); err != nil {
		return nil, err
	}

	employee := models.Employee{
		CompanyID:    in.CompanyID,
		DepartmentID: in.DepartmentID,
		Status:       in.Status,
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		MobileNumber: in.MobileNumber,
		Address:      in.Address,
		Designation:  in.Designation,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkAssignment(tx, in.CompanyID, in.DepartmentID); err != nil {
			return err
		}

		var existing models.Employee
		if err := tx.Where("email = ?", employee.Email).First(&existing).Error; err == nil {
			return errDuplicate("email")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if employee.Status == models.StatusHired {
			today := s.today()
			employee.HiredOn = &today
		}
		employee.DaysEmployed = s.daysEmployed(employee.HiredOn)

		if err := tx.Create(&employee).Error; err != nil {
			return err
		}
		return recomputeDepartmentCounters(tx, employee.DepartmentID)
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, id uuid.UUID, in EmployeeInput) (*models.Employee, error) {
	if in.Status == "" {
		in.Status = models.StatusApplicationReceived
	}
	if err := validateEmployeeInput(in); err != nil {
		return nil, err
	}

	var employee models.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&employee, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := s.checkAssignment(tx, in.CompanyID, in.DepartmentID); err != nil {
			return err
		}

		email := strings.ToLower(strings.TrimSpace(in.Email))
		var existing models.Employee
		if err := tx.Where("email = ? AND id <> ?", email, id).First(&existing).Error; err == nil {
			return errDuplicate("email")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		previousStatus := employee.Status
		previousDepartment := employee.DepartmentID

		employee.CompanyID = in.CompanyID
		employee.DepartmentID = in.DepartmentID
		employee.Status = in.Status
		employee.Name = strings.TrimSpace(in.Name)
		employee.Email = email
		employee.MobileNumber = in.MobileNumber
		employee.Address = in.Address
		employee.Designation = in.Designation

		// Stamp the hire date on any transition into hired. Transitions away
		// from hired leave HiredOn in place.
		if in.Status == models.StatusHired && previousStatus != models.StatusHired {
			today := s.today()
			employee.HiredOn = &today
		}
		employee.DaysEmployed = s.daysEmployed(employee.HiredOn)

		if err := tx.Save(&employee).Error; err != nil {
			return err
		}

		if err := recomputeDepartmentCounters(tx, employee.DepartmentID); err != nil {
			return err
		}
		if previousDepartment != employee.DepartmentID {
			return recomputeDepartmentCounters(tx, previousDepartment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var employee models.Employee
		if err := tx.First(&employee, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&models.Employee{}, "id = ?", id).Error; err != nil {
			return err
		}
		return recomputeDepartmentCounters(tx, employee.DepartmentID)
	})
}

// checkAssignment verifies the department exists and belongs to the selected
// company. A mismatch is a validation failure, not a server fault.
func (s *Service) checkAssignment(tx *gorm.DB, companyID, departmentID uuid.UUID) error {
	var department models.Department
	if err := tx.First(&department, "id = ?", departmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if department.CompanyID != companyID {
		return ErrInvalidAssignment
	}
	return nil
}

func (s *Service) daysEmployed(hiredOn *time.Time) int64 {
	if hiredOn == nil {
		return 0
	}
	days := int64(s.today().Sub(*hiredOn).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func validateEmployeeInput(in EmployeeInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "must not be empty"
	}
	if !in.Status.Valid() {
		fields["status"] = "must be one of application_received, interview_scheduled, hired, not_accepted"
	}
	if !mobileNumberPattern.MatchString(in.MobileNumber) {
		fields["mobileNumber"] = "must be entered in the format '+999999999', up to 15 digits"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
