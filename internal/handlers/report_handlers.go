package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// queryInt reads an integer query parameter, falling back on absent or
// malformed values.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// GetMonthlyReport handles GET /reports/monthly?month=&year=.
// Absent or out-of-range parameters default to the current month and year.
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	p := utils.ParsePagination(c)
	month := queryInt(c, "month", 0)
	year := queryInt(c, "year", 0)

	report, err := h.reportService.GetMonthlyReport(month, year, p.Limit, p.Offset)
	if err != nil {
		utils.LogError(err, "GetMonthlyReport: report computation failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetPitchReport handles GET /reports/pitch?start_date=&end_date=.
func (h *ReportHandler) GetPitchReport(c *gin.Context) {
	p := utils.ParsePagination(c)

	report, err := h.reportService.GetPitchReport(c.Query("start_date"), c.Query("end_date"), p.Limit, p.Offset)
	if err != nil {
		if errors.Is(err, services.ErrDateFormat) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "GetPitchReport: report computation failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetMatchDayReport handles GET /reports/match-day. With a match_day_id
// query parameter it settles that single match day; without one it lists
// the settlement of every match day in the optional date range.
func (h *ReportHandler) GetMatchDayReport(c *gin.Context) {
	if idStr := c.Query("match_day_id"); idStr != "" {
		matchDayID, err := utils.StrToInt64(idStr)
		if err != nil {
			utils.RespondValidationFailed(c, "Invalid match day ID format")
			return
		}

		report, err := h.reportService.GetMatchDayReport(matchDayID)
		if err != nil {
			if errors.Is(err, services.ErrMatchDayNotFound) {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Match day not found"))
				return
			}
			utils.LogError(err, "GetMatchDayReport: report computation failed")
			utils.RespondInternalError(c)
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	p := utils.ParsePagination(c)
	reports, err := h.reportService.ListMatchDayReports(c.Query("start_date"), c.Query("end_date"), p.Limit, p.Offset)
	if err != nil {
		if errors.Is(err, services.ErrDateFormat) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "GetMatchDayReport: listing failed")
		utils.RespondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, reports)
}
