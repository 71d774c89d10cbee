package services

import (
	"errors"
	"fmt"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// --- Custom Service Errors for Expense ---
var (
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrExpenseValidation = errors.New("expense data validation error")
)

// --- Expense DTOs ---

// CreateExpenseRequest records money spent by the team.
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
	MatchDayID  *int64  `json:"match_day_id"`
}

// UpdateExpenseRequest is a partial-field expense update.
type UpdateExpenseRequest struct {
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	ExpenseDate *string  `json:"expense_date"`
	MatchDayID  *int64   `json:"match_day_id"`
}

// ExpenseListFilter carries the list endpoint's query filters as raw strings.
type ExpenseListFilter struct {
	Category   string
	MatchDayID *int64
	StartDate  string
	EndDate    string
}

// --- ExpenseService Interface ---
type ExpenseService interface {
	CreateExpense(req CreateExpenseRequest) (*models.Expense, error)
	GetExpenseByID(expenseID int64) (*models.Expense, error)
	GetExpenses(filter ExpenseListFilter, limit, offset int) ([]models.Expense, int, error)
	UpdateExpense(expenseID int64, req UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(expenseID int64) error
}

type expenseService struct {
	expenseRepo  repositories.ExpenseRepository
	matchDayRepo repositories.MatchDayRepository
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(expenseRepo repositories.ExpenseRepository, matchDayRepo repositories.MatchDayRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo, matchDayRepo: matchDayRepo}
}

func (s *expenseService) CreateExpense(req CreateExpenseRequest) (*models.Expense, error) {
	if utils.IsEmpty(req.Description) {
		return nil, fmt.Errorf("%w: description cannot be empty", ErrExpenseValidation)
	}
	if !models.IsValidExpenseCategory(req.Category) {
		return nil, fmt.Errorf("%w: invalid category '%s'", ErrExpenseValidation, req.Category)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrExpenseValidation)
	}
	expenseDate, err := ParseDate(req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	if req.MatchDayID != nil {
		if _, err := s.matchDayRepo.GetMatchDayByID(*req.MatchDayID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrMatchDayNotFound
			}
			return nil, fmt.Errorf("failed to resolve match day for expense: %w", err)
		}
	}

	expense := &models.Expense{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
		MatchDayID:  req.MatchDayID,
	}

	id, err := s.expenseRepo.CreateExpense(expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return s.expenseRepo.GetExpenseByID(id)
}

func (s *expenseService) GetExpenseByID(expenseID int64) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(expenseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID: %w", err)
	}
	return expense, nil
}

func (s *expenseService) GetExpenses(filter ExpenseListFilter, limit, offset int) ([]models.Expense, int, error) {
	repoFilter := repositories.ExpenseFilter{MatchDayID: filter.MatchDayID}

	if filter.Category != "" {
		if !models.IsValidExpenseCategory(filter.Category) {
			return nil, 0, fmt.Errorf("%w: invalid category '%s'", ErrExpenseValidation, filter.Category)
		}
		repoFilter.Category = &filter.Category
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

	expenses, totalCount, err := s.expenseRepo.GetExpenses(repoFilter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get expenses: %w", err)
	}
	return expenses, totalCount, nil
}

func (s *expenseService) UpdateExpense(expenseID int64, req UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(expenseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to find expense for update: %w", err)
	}

	if req.Description != nil {
		if utils.IsEmpty(*req.Description) {
			return nil, fmt.Errorf("%w: description cannot be empty", ErrExpenseValidation)
		}
		expense.Description = *req.Description
	}
	if req.Category != nil {
		if !models.IsValidExpenseCategory(*req.Category) {
			return nil, fmt.Errorf("%w: invalid category '%s'", ErrExpenseValidation, *req.Category)
		}
		expense.Category = *req.Category
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrExpenseValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.ExpenseDate != nil {
		expenseDate, err := ParseDate(*req.ExpenseDate)
		if err != nil {
			return nil, err
		}
		expense.ExpenseDate = expenseDate
	}
	if req.MatchDayID != nil {
		if _, err := s.matchDayRepo.GetMatchDayByID(*req.MatchDayID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrMatchDayNotFound
			}
			return nil, fmt.Errorf("failed to resolve match day for expense update: %w", err)
		}
		expense.MatchDayID = req.MatchDayID
	}

	if err := s.expenseRepo.UpdateExpense(expense); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return s.expenseRepo.GetExpenseByID(expenseID)
}

func (s *expenseService) DeleteExpense(expenseID int64) error {
	if err := s.expenseRepo.DeleteExpense(expenseID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
