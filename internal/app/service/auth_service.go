package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/smreview/smreview-backend/config"
	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/app/repository"
	"github.com/smreview/smreview-backend/pkg/logger"
	"github.com/smreview/smreview-backend/pkg/util"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthUnavailable    = errors.New("admin login requires a configured database")
)

type AuthService interface {
	Login(email, password string) (*model.LoginResponse, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	jwtCfg    config.JWTConfig
}

// NewAuthService creates the admin auth service. adminRepo is nil in
// demo mode, in which case logins are refused.
func NewAuthService(adminRepo repository.AdminRepository, jwtCfg config.JWTConfig) AuthService {
	return &authService{
		adminRepo: adminRepo,
		jwtCfg:    jwtCfg,
	}
}

func (s *authService) Login(email, password string) (*model.LoginResponse, error) {
	if s.adminRepo == nil {
		return nil, ErrAuthUnavailable
	}

	admin, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login attempt for unknown admin", map[string]interface{}{
				"email": email,
			})
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to look up admin", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	if !util.VerifyPassword(admin.PasswordHash, password) {
		logger.Warn("Login attempt with wrong password", map[string]interface{}{
			"email": email,
		})
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateToken(admin.ID, admin.Email, admin.Role, s.jwtCfg.Secret, s.jwtCfg.TokenExpiry)
	if err != nil {
		logger.Error("Failed to sign token", err, nil)
		return nil, err
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"admin_id": admin.ID,
		"email":    admin.Email,
	})

	return &model.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwtCfg.TokenExpiry),
		Email:     admin.Email,
	}, nil
}
