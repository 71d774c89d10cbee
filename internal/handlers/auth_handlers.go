package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// AuthHandler holds the auth service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// LoginUser handles POST /users/login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: email and password are required")
		return
	}

	resp, err := h.authService.LoginUser(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrAccountNotActive) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid email or password"))
			return
		}
		utils.LogError(err, "LoginUser: login failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterUser handles POST /users/register. Admin-only via route middleware.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req services.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.authService.RegisterUser(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Email already exists"))
			return
		}
		if errors.Is(err, services.ErrUserValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "RegisterUser: registration failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, user)
}
