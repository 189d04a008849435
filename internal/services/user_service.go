// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flipbase/flipbase-backend/internal/models"
	"github.com/flipbase/flipbase-backend/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpdateProfileRequest is the self-service profile patch.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Country  *string `json:"country,omitempty"`
	Company  *string `json:"company,omitempty"`
}

// CreateUserRequest is the admin's user-creation form.
type CreateUserRequest struct {
	Name     string          `json:"name" validate:"required"`
	Username string          `json:"username" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Company  string          `json:"company" validate:"required"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// ChangePasswordRequest is the self-service password change form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// AdminUpdateUserRequest is the admin's edit of another account.
type AdminUpdateUserRequest struct {
	Name     *string          `json:"name,omitempty"`
	Username *string          `json:"username,omitempty"`
	Email    *string          `json:"email,omitempty" validate:"omitempty,email"`
	Role     *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Nickname != nil {
		updates["nickname"] = *req.Nickname
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// ChangePassword re-hashes the account password after verifying the
// current one.
func (s *UserService) ChangePassword(userID uuid.UUID, req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.CurrentPassword); err != nil {
		return ErrWrongPassword
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&user).Update("password_hash", user.PasswordHash).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return users, nil
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing models.User
	if err := s.db.Where("username = ? OR email = ?", req.Username, req.Email).
		First(&existing).Error; err == nil {
		return nil, ErrDuplicateUser
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}

	user := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Company:  req.Company,
		Role:     role,
		Status:   models.UserStatusActive,
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

func (s *UserService) UpdateUser(userID uuid.UUID, req *AdminUpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicateUser
			}
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// DeleteUser removes an account. Admins cannot delete their own.
func (s *UserService) DeleteUser(userID, actorID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if user.ID == actorID {
		return ErrSelfDelete
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
