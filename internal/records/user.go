package records

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
	"github.com/ah0048/BrainWise-JobTask/internal/utils"
)

type UserInput struct {
	Email    string
	Name     string
	Password string
	Role     models.Role
}

// UserUpdate is partial; nil fields are left untouched.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
	Role     *models.Role
}

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) CreateUser(ctx context.Context, in UserInput) (*models.User, error) {
	if !in.Role.Valid() {
		return nil, newValidationError("role", "must be one of admin, manager, employee")
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(in.Name),
		Role:         in.Role,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			return errDuplicate("email")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, in UserUpdate) (*models.User, error) {
	if in.Role != nil && !in.Role.Valid() {
		return nil, newValidationError("role", "must be one of admin, manager, employee")
	}

	var user models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if in.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*in.Email))
			var existing models.User
			if err := tx.Where("email = ? AND id <> ?", email, id).First(&existing).Error; err == nil {
				return errDuplicate("email")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			user.Email = email
		}
		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if in.Password != nil {
			hash, err := utils.HashPassword(*in.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}
		if in.Role != nil {
			user.Role = *in.Role
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
