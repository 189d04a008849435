// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/flipbase/flipbase-backend/internal/config"
	"github.com/flipbase/flipbase-backend/internal/models"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	// Username doubles as the email: lookup tries email first, then
	// username.
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing models.User
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrDuplicateUser
	}

	user := &models.User{
		Name:     req.Name,
		Company:  req.Company,
		Username: req.Username,
		Role:     models.UserRoleUser,
		Status:   models.UserStatusActive,
	}
	if strings.Contains(req.Username, "@") {
		user.Email = req.Username
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login authenticates by email or username and issues a short-lived
// token carrying only the user id. The last-login timestamp and source
// address are stamped on success.
func (s *AuthService) Login(req *LoginRequest, clientIP string) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	err := s.db.Where("email = ?", req.Username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("username = ?", req.Username).First(&user).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Backfill missing emails from the login identifier; some early
	// accounts were created with only a username.
	if user.Email == "" && strings.Contains(req.Username, "@") {
		user.Email = req.Username
	}

	now := time.Now()
	user.LastLoginDate = &now
	user.LastLoginIP = clientIP
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update login info: %w", err)
	}

	token, err := utils.GenerateJWT(user.ID, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  &user,
	}, nil
}
