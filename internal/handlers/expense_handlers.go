package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// ExpenseHandler holds the expense service.
type ExpenseHandler struct {
	expenseService services.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(es services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: es}
}

func respondExpenseError(c *gin.Context, err error, logPrefix string) {
	switch {
	case errors.Is(err, services.ErrExpenseNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Expense not found"))
	case errors.Is(err, services.ErrMatchDayNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Match day not found"))
	case errors.Is(err, services.ErrExpenseValidation), errors.Is(err, services.ErrDateFormat):
		utils.RespondValidationFailed(c, err.Error())
	default:
		utils.LogError(err, logPrefix)
		utils.RespondInternalError(c)
	}
}

// CreateExpense handles POST /expenses.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req services.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(req)
	if err != nil {
		respondExpenseError(c, err, "CreateExpense: creation failed")
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// GetExpenses handles GET /expenses with category/match-day/date-range filters.
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	p := utils.ParsePagination(c)

	filter := services.ExpenseListFilter{
		Category:  c.Query("category"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if matchDayIDStr := c.Query("match_day_id"); matchDayIDStr != "" {
		if matchDayID, err := utils.StrToInt64(matchDayIDStr); err == nil {
			filter.MatchDayID = &matchDayID
		}
	}

	expenses, totalCount, err := h.expenseService.GetExpenses(filter, p.Limit, p.Offset)
	if err != nil {
		respondExpenseError(c, err, "GetExpenses: listing failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":   expenses,
		"total":  totalCount,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetExpenseByID handles GET /expenses/:id.
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	expenseID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid expense ID format")
		return
	}

	expense, err := h.expenseService.GetExpenseByID(expenseID)
	if err != nil {
		respondExpenseError(c, err, "GetExpenseByID: lookup failed")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// UpdateExpense handles PUT /expenses/:id.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	expenseID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid expense ID format")
		return
	}

	var req services.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(expenseID, req)
	if err != nil {
		respondExpenseError(c, err, "UpdateExpense: update failed")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles DELETE /expenses/:id.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid expense ID format")
		return
	}

	if err := h.expenseService.DeleteExpense(expenseID); err != nil {
		respondExpenseError(c, err, "DeleteExpense: deletion failed")
		return
	}
	c.Status(http.StatusNoContent)
}
