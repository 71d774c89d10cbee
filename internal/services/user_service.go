package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// UpdateUserRequest is a partial-field user update. Absent fields keep
// their prior values.
type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// --- UserService Interface ---
type UserService interface {
	GetUserByID(userID int64) (*models.User, error)
	GetUsers(limit, offset int, searchTerm *string) ([]models.User, int, error)
	UpdateUser(userID int64, req UpdateUserRequest) (*models.User, error)
	DeleteUser(userID int64) error
}

type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(userID int64) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUsers(limit, offset int, searchTerm *string) ([]models.User, int, error) {
	users, totalCount, err := s.userRepo.GetUsers(limit, offset, searchTerm)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get users: %w", err)
	}
	return users, totalCount, nil
}

func (s *userService) UpdateUser(userID int64, req UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	if req.FullName != nil {
		if utils.IsEmpty(*req.FullName) {
			return nil, fmt.Errorf("%w: full name cannot be empty", ErrUserValidation)
		}
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !utils.IsValidEmail(email) {
			return nil, fmt.Errorf("%w: email format is invalid", ErrUserValidation)
		}
		user.Email = email
	}
	if req.Role != nil {
		if !models.IsValidUserRole(*req.Role) {
			return nil, fmt.Errorf("%w: invalid role '%s'", ErrUserValidation, *req.Role)
		}
		user.Role = *req.Role
	}
	if req.Status != nil {
		if !models.IsValidUserStatus(*req.Status) {
			return nil, fmt.Errorf("%w: invalid status '%s'", ErrUserValidation, *req.Status)
		}
		user.Status = *req.Status
	}

	if err := s.userRepo.UpdateUser(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.userRepo.FindUserByID(userID)
}

func (s *userService) DeleteUser(userID int64) error {
	if err := s.userRepo.DeleteUser(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
