package services

import (
	"errors"
	"fmt"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
)

// --- Custom Service Errors for Payment ---
var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentValidation = errors.New("payment data validation error")
)

// --- Payment DTOs ---

// CreatePaymentRequest records money received from a player. MatchDayID is
// the explicit link for matchday-type payments.
type CreatePaymentRequest struct {
	PlayerID    int64   `json:"player_id" binding:"required"`
	PaymentType string  `json:"payment_type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required"`
	MatchDayID  *int64  `json:"match_day_id"`
}

// UpdatePaymentRequest is a partial-field payment update.
type UpdatePaymentRequest struct {
	PlayerID    *int64   `json:"player_id"`
	PaymentType *string  `json:"payment_type"`
	Amount      *float64 `json:"amount"`
	PaymentDate *string  `json:"payment_date"`
	MatchDayID  *int64   `json:"match_day_id"`
}

// PaymentListFilter carries the list endpoint's query filters as raw strings.
type PaymentListFilter struct {
	PlayerID    *int64
	PaymentType string
	StartDate   string
	EndDate     string
}

// --- PaymentService Interface ---
type PaymentService interface {
	CreatePayment(req CreatePaymentRequest) (*models.Payment, error)
	GetPaymentByID(paymentID int64) (*models.Payment, error)
	GetPayments(filter PaymentListFilter, limit, offset int) ([]models.Payment, int, error)
	UpdatePayment(paymentID int64, req UpdatePaymentRequest) (*models.Payment, error)
	DeletePayment(paymentID int64) error
}

type paymentService struct {
	paymentRepo  repositories.PaymentRepository
	playerRepo   repositories.PlayerRepository
	matchDayRepo repositories.MatchDayRepository
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentRepository, playerRepo repositories.PlayerRepository, matchDayRepo repositories.MatchDayRepository) PaymentService {
	return &paymentService{
		paymentRepo:  paymentRepo,
		playerRepo:   playerRepo,
		matchDayRepo: matchDayRepo,
	}
}

func (s *paymentService) CreatePayment(req CreatePaymentRequest) (*models.Payment, error) {
	if !models.IsValidPaymentType(req.PaymentType) {
		return nil, fmt.Errorf("%w: invalid payment type '%s'", ErrPaymentValidation, req.PaymentType)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrPaymentValidation)
	}
	paymentDate, err := ParseDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	// Snapshot the player name at creation time.
	player, err := s.playerRepo.GetPlayerByID(req.PlayerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to resolve player for payment: %w", err)
	}

	if req.MatchDayID != nil {
		if _, err := s.matchDayRepo.GetMatchDayByID(*req.MatchDayID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrMatchDayNotFound
			}
			return nil, fmt.Errorf("failed to resolve match day for payment: %w", err)
		}
	}

	payment := &models.Payment{
		PlayerID:    player.ID,
		PlayerName:  player.FullName,
		PaymentType: req.PaymentType,
		Amount:      req.Amount,
		PaymentDate: paymentDate,
		MatchDayID:  req.MatchDayID,
	}

	id, err := s.paymentRepo.CreatePayment(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return s.paymentRepo.GetPaymentByID(id)
}

func (s *paymentService) GetPaymentByID(paymentID int64) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment by ID: %w", err)
	}
	return payment, nil
}

func (s *paymentService) GetPayments(filter PaymentListFilter, limit, offset int) ([]models.Payment, int, error) {
	repoFilter := repositories.PaymentFilter{PlayerID: filter.PlayerID}

	if filter.PaymentType != "" {
		if !models.IsValidPaymentType(filter.PaymentType) {
			return nil, 0, fmt.Errorf("%w: invalid payment type '%s'", ErrPaymentValidation, filter.PaymentType)
		}
		repoFilter.PaymentType = &filter.PaymentType
	}
	start, err := ParseOptionalDate(filter.StartDate)
	if err != nil {
		return nil, 0, err
	}
	end, err := ParseOptionalDate(filter.EndDate)
	if err != nil {
		return nil, 0, err
	}
	repoFilter.StartDate = start
	repoFilter.EndDate = end

	payments, totalCount, err := s.paymentRepo.GetPayments(repoFilter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get payments: %w", err)
	}
	return payments, totalCount, nil
}

func (s *paymentService) UpdatePayment(paymentID int64, req UpdatePaymentRequest) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find payment for update: %w", err)
	}

	if req.PlayerID != nil {
		player, err := s.playerRepo.GetPlayerByID(*req.PlayerID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrPlayerNotFound
			}
			return nil, fmt.Errorf("failed to resolve player for payment update: %w", err)
		}
		payment.PlayerID = player.ID
		payment.PlayerName = player.FullName
	}
	if req.PaymentType != nil {
		if !models.IsValidPaymentType(*req.PaymentType) {
			return nil, fmt.Errorf("%w: invalid payment type '%s'", ErrPaymentValidation, *req.PaymentType)
		}
		payment.PaymentType = *req.PaymentType
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrPaymentValidation)
		}
		payment.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		paymentDate, err := ParseDate(*req.PaymentDate)
		if err != nil {
			return nil, err
		}
		payment.PaymentDate = paymentDate
	}
	if req.MatchDayID != nil {
		if _, err := s.matchDayRepo.GetMatchDayByID(*req.MatchDayID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrMatchDayNotFound
			}
			return nil, fmt.Errorf("failed to resolve match day for payment update: %w", err)
		}
		payment.MatchDayID = req.MatchDayID
	}

	if err := s.paymentRepo.UpdatePayment(payment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return s.paymentRepo.GetPaymentByID(paymentID)
}

func (s *paymentService) DeletePayment(paymentID int64) error {
	if err := s.paymentRepo.DeletePayment(paymentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPaymentNotFound
		}
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
