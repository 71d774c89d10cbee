package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// MatchDayHandler holds the match day service.
type MatchDayHandler struct {
	matchDayService services.MatchDayService
}

// NewMatchDayHandler creates a new MatchDayHandler.
func NewMatchDayHandler(ms services.MatchDayService) *MatchDayHandler {
	return &MatchDayHandler{matchDayService: ms}
}

func respondMatchDayError(c *gin.Context, err error, logPrefix string) {
	switch {
	case errors.Is(err, services.ErrMatchDayNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Match day not found"))
	case errors.Is(err, services.ErrDuplicateMatchDate):
		utils.RespondValidationFailed(c, "A match day already exists on this date")
	case errors.Is(err, services.ErrMatchDayValidation), errors.Is(err, services.ErrDateFormat):
		utils.RespondValidationFailed(c, err.Error())
	default:
		utils.LogError(err, logPrefix)
		utils.RespondInternalError(c)
	}
}

// CreateMatchDay handles POST /match-days.
func (h *MatchDayHandler) CreateMatchDay(c *gin.Context) {
	var req services.CreateMatchDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	matchDay, err := h.matchDayService.CreateMatchDay(req)
	if err != nil {
		respondMatchDayError(c, err, "CreateMatchDay: creation failed")
		return
	}
	c.JSON(http.StatusCreated, matchDay)
}

// GetMatchDays handles GET /match-days with a date-range filter.
func (h *MatchDayHandler) GetMatchDays(c *gin.Context) {
	p := utils.ParsePagination(c)

	filter := services.MatchDayListFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	matchDays, totalCount, err := h.matchDayService.GetMatchDays(filter, p.Limit, p.Offset)
	if err != nil {
		respondMatchDayError(c, err, "GetMatchDays: listing failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":   matchDays,
		"total":  totalCount,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetMatchDayByID handles GET /match-days/:id.
func (h *MatchDayHandler) GetMatchDayByID(c *gin.Context) {
	matchDayID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid match day ID format")
		return
	}

	matchDay, err := h.matchDayService.GetMatchDayByID(matchDayID)
	if err != nil {
		respondMatchDayError(c, err, "GetMatchDayByID: lookup failed")
		return
	}
	c.JSON(http.StatusOK, matchDay)
}

// UpdateMatchDay handles PUT /match-days/:id.
func (h *MatchDayHandler) UpdateMatchDay(c *gin.Context) {
	matchDayID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid match day ID format")
		return
	}

	var req services.UpdateMatchDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	matchDay, err := h.matchDayService.UpdateMatchDay(matchDayID, req)
	if err != nil {
		respondMatchDayError(c, err, "UpdateMatchDay: update failed")
		return
	}
	c.JSON(http.StatusOK, matchDay)
}

// DeleteMatchDay handles DELETE /match-days/:id.
func (h *MatchDayHandler) DeleteMatchDay(c *gin.Context) {
	matchDayID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid match day ID format")
		return
	}

	if err := h.matchDayService.DeleteMatchDay(matchDayID); err != nil {
		respondMatchDayError(c, err, "DeleteMatchDay: deletion failed")
		return
	}
	c.Status(http.StatusNoContent)
}
