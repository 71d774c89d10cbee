package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/services"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// PaymentHandler holds the payment service.
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

func respondPaymentError(c *gin.Context, err error, logPrefix string) {
	switch {
	case errors.Is(err, services.ErrPaymentNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Payment not found"))
	case errors.Is(err, services.ErrPlayerNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Player not found"))
	case errors.Is(err, services.ErrMatchDayNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Match day not found"))
	case errors.Is(err, services.ErrPaymentValidation), errors.Is(err, services.ErrDateFormat):
		utils.RespondValidationFailed(c, err.Error())
	default:
		utils.LogError(err, logPrefix)
		utils.RespondInternalError(c)
	}
}

// CreatePayment handles POST /payments.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req services.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	payment, err := h.paymentService.CreatePayment(req)
	if err != nil {
		respondPaymentError(c, err, "CreatePayment: creation failed")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GetPayments handles GET /payments with player/type/date-range filters.
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	p := utils.ParsePagination(c)

	filter := services.PaymentListFilter{
		PaymentType: c.Query("payment_type"),
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
	}
	if playerIDStr := c.Query("player_id"); playerIDStr != "" {
		if playerID, err := utils.StrToInt64(playerIDStr); err == nil {
			filter.PlayerID = &playerID
		}
	}

	payments, totalCount, err := h.paymentService.GetPayments(filter, p.Limit, p.Offset)
	if err != nil {
		respondPaymentError(c, err, "GetPayments: listing failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":   payments,
		"total":  totalCount,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetPaymentByID handles GET /payments/:id.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	paymentID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid payment ID format")
		return
	}

	payment, err := h.paymentService.GetPaymentByID(paymentID)
	if err != nil {
		respondPaymentError(c, err, "GetPaymentByID: lookup failed")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// UpdatePayment handles PUT /payments/:id.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	paymentID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid payment ID format")
		return
	}

	var req services.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, "Invalid request payload: "+err.Error())
		return
	}

	payment, err := h.paymentService.UpdatePayment(paymentID, req)
	if err != nil {
		respondPaymentError(c, err, "UpdatePayment: update failed")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// DeletePayment handles DELETE /payments/:id.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	paymentID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid payment ID format")
		return
	}

	if err := h.paymentService.DeletePayment(paymentID); err != nil {
		respondPaymentError(c, err, "DeletePayment: deletion failed")
		return
	}
	c.Status(http.StatusNoContent)
}
