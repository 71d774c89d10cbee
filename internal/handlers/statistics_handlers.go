package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// StatisticsHandler holds the statistics service.
type StatisticsHandler struct {
	statisticsService services.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(ss services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: ss}
}

// GetUpcomingPayments handles GET /statistics/upcoming-payments?limit=.
func (h *StatisticsHandler) GetUpcomingPayments(c *gin.Context) {
	limit := services.DefaultUpcomingLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	upcoming, err := h.statisticsService.GetUpcomingPayments(limit)
	if err != nil {
		utils.LogError(err, "GetUpcomingPayments: computation failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": upcoming, "count": len(upcoming)})
}

// GetPaymentSummary handles GET /statistics/payment-summary.
func (h *StatisticsHandler) GetPaymentSummary(c *gin.Context) {
	summary, err := h.statisticsService.GetPaymentSummary()
	if err != nil {
		utils.LogError(err, "GetPaymentSummary: computation failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, summary)
}
