package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/middleware"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// UserHandler holds the user service.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// GetCurrentUser handles GET /users/me.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Not authenticated"))
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found"))
			return
		}
		utils.LogError(err, "GetCurrentUser: lookup failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUsers handles GET /users with search and pagination.
func (h *UserHandler) GetUsers(c *gin.Context) {
	p := utils.ParsePagination(c)
	var searchTerm *string
	if s := c.Query("search"); s != "" {
		searchTerm = &s
	}

	users, totalCount, err := h.userService.GetUsers(p.Limit, p.Offset, searchTerm)
	if err != nil {
		utils.LogError(err, "GetUsers: listing failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":   users,
		"total":  totalCount,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetUserByID handles GET /users/:id.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	userID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid user ID format")
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found"))
			return
		}
		utils.LogError(err, "GetUserByID: lookup failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id. A non-admin may only edit their own
// profile and may not change role or status.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid user ID format")
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	principalID, _ := middleware.CurrentUserID(c)
	isAdmin := middleware.CurrentUserRole(c) == models.RoleAdmin
	if !isAdmin {
		if principalID != userID {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You may only edit your own profile"))
			return
		}
		if req.Role != nil || req.Status != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Only an admin may change role or status"))
			return
		}
	}

	user, err := h.userService.UpdateUser(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found"))
			return
		}
		if errors.Is(err, services.ErrEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Email already exists"))
			return
		}
		if errors.Is(err, services.ErrUserValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdateUser: update failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id. Admin-only via route middleware.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid user ID format")
		return
	}

	if err := h.userService.DeleteUser(userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found"))
			return
		}
		utils.LogError(err, "DeleteUser: deletion failed")
		utils.RespondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
