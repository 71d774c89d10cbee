package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserValidation     = errors.New("user data validation error")
	ErrAccountNotActive   = errors.New("user account is not active")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- DTOs ---

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserRequest carries a new operator account.
type RegisterUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

// AuthResponse is the login payload: the principal and their access token.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

// --- AuthService Interface ---
type AuthService interface {
	RegisterUser(req RegisterUserRequest) (*models.User, error)
	LoginUser(req LoginRequest) (*AuthResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// RegisterUser handles the business logic for creating an operator account.
// The admin-only gate is enforced by the route middleware.
func (s *authService) RegisterUser(req RegisterUserRequest) (*models.User, error) {
	if utils.IsEmpty(req.FullName) {
		return nil, fmt.Errorf("%w: full name cannot be empty", ErrUserValidation)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: email format is invalid", ErrUserValidation)
	}
	if !utils.IsValidPasswordLength(req.Password, 8) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrUserValidation)
	}

	role := req.Role
	if role == "" {
		role = models.RoleViewer
	}
	if !models.IsValidUserRole(role) {
		return nil, fmt.Errorf("%w: invalid role '%s'", ErrUserValidation, req.Role)
	}
	status := req.Status
	if status == "" {
		status = models.UserStatusActive
	}
	if !models.IsValidUserStatus(status) {
		return nil, fmt.Errorf("%w: invalid status '%s'", ErrUserValidation, req.Status)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		FullName: req.FullName,
		Email:    email,
		Role:     role,
		Status:   status,
	}

	createdID, err := s.userRepo.CreateUser(&user, string(hashedPasswordBytes))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	registered, fetchErr := s.userRepo.FindUserByID(createdID)
	if fetchErr != nil {
		user.ID = createdID
		return &user, nil
	}
	return registered, nil
}

// LoginUser verifies credentials and issues an access token.
func (s *authService) LoginUser(req LoginRequest) (*AuthResponse, error) {
	user, storedHash, err := s.userRepo.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if user.Status != models.UserStatusActive {
		return nil, ErrAccountNotActive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return &AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	}, nil
}
