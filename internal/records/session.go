package records

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
	"github.com/ah0048/BrainWise-JobTask/internal/utils"
)

// Authenticate verifies the credential against the stored bcrypt hash. Lookup
// misses and hash mismatches are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// IssueSession returns the user's active session token, creating one when
// none exists. Repeated logins share the single active token.
func (s *Service) IssueSession(ctx context.Context, user *models.User) (string, error) {
	var token string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session models.SessionToken
		err := tx.Where("user_id = ?", user.ID).First(&session).Error
		if err == nil {
			token = session.Token
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		generated, err := utils.GenerateSessionToken()
		if err != nil {
			return err
		}
		session = models.SessionToken{UserID: user.ID, Token: generated}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		token = generated
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *Service) RevokeSession(ctx context.Context, token string) error {
	result := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.SessionToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoActiveSession
	}
	return nil
}
