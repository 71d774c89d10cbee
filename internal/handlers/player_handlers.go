package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// PlayerHandler holds the player service.
type PlayerHandler struct {
	playerService services.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: ps}
}

// CreatePlayer handles POST /players.
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req services.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	player, err := h.playerService.CreatePlayer(req)
	if err != nil {
		if errors.Is(err, services.ErrPlayerValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreatePlayer: creation failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// GetPlayers handles GET /players with name/phone search and pagination.
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	p := utils.ParsePagination(c)
	var searchTerm *string
	if s := c.Query("search"); s != "" {
		searchTerm = &s
	}

	players, totalCount, err := h.playerService.GetPlayers(p.Limit, p.Offset, searchTerm)
	if err != nil {
		utils.LogError(err, "GetPlayers: listing failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":   players,
		"total":  totalCount,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetPlayerByID handles GET /players/:id.
func (h *PlayerHandler) GetPlayerByID(c *gin.Context) {
	playerID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid player ID format")
		return
	}

	player, err := h.playerService.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found"))
			return
		}
		utils.LogError(err, "GetPlayerByID: lookup failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, player)
}

// UpdatePlayer handles PUT /players/:id.
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	playerID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid player ID format")
		return
	}

	var req services.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	player, err := h.playerService.UpdatePlayer(playerID, req)
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found"))
			return
		}
		if errors.Is(err, services.ErrPlayerValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdatePlayer: update failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /players/:id.
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	playerID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid player ID format")
		return
	}

	if err := h.playerService.DeletePlayer(playerID); err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found"))
			return
		}
		utils.LogError(err, "DeletePlayer: deletion failed")
		utils.RespondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
