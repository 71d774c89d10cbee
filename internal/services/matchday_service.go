package services

import (
	"errors"
	"fmt"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
)

// --- Custom Service Errors for MatchDay ---
var (
	ErrMatchDayNotFound   = errors.New("match day not found")
	ErrMatchDayValidation = errors.New("match day data validation error")
	ErrDuplicateMatchDate = errors.New("a match day already exists on this date")
)

// --- MatchDay DTOs ---

// CreateMatchDayRequest carries a new match day.
type CreateMatchDayRequest struct {
	MatchDate string  `json:"match_date" binding:"required"`
	Opponent  *string `json:"opponent"`
	Venue     *string `json:"venue"`
	MatchType string  `json:"match_type"`
}

// UpdateMatchDayRequest is a partial-field match-day update.
type UpdateMatchDayRequest struct {
	MatchDate *string `json:"match_date"`
	Opponent  *string `json:"opponent"`
	Venue     *string `json:"venue"`
	MatchType *string `json:"match_type"`
}

// MatchDayListFilter carries the list endpoint's query filters as raw strings.
type MatchDayListFilter struct {
	StartDate string
	EndDate   string
}

// --- MatchDayService Interface ---
type MatchDayService interface {
	CreateMatchDay(req CreateMatchDayRequest) (*models.MatchDay, error)
	GetMatchDayByID(matchDayID int64) (*models.MatchDay, error)
	GetMatchDays(filter MatchDayListFilter, limit, offset int) ([]models.MatchDay, int, error)
	UpdateMatchDay(matchDayID int64, req UpdateMatchDayRequest) (*models.MatchDay, error)
	DeleteMatchDay(matchDayID int64) error
}

type matchDayService struct {
	matchDayRepo repositories.MatchDayRepository
}

// NewMatchDayService creates a new instance of MatchDayService.
func NewMatchDayService(matchDayRepo repositories.MatchDayRepository) MatchDayService {
	return &matchDayService{matchDayRepo: matchDayRepo}
}

func (s *matchDayService) CreateMatchDay(req CreateMatchDayRequest) (*models.MatchDay, error) {
	matchDate, err := ParseDate(req.MatchDate)
	if err != nil {
		return nil, err
	}

	matchType := req.MatchType
	if matchType == "" {
		matchType = models.MatchTypeFriendly
	}
	if !models.IsValidMatchType(matchType) {
		return nil, fmt.Errorf("%w: invalid match type '%s'", ErrMatchDayValidation, req.MatchType)
	}

	matchDay := &models.MatchDay{
		MatchDate: matchDate,
		Opponent:  req.Opponent,
		Venue:     req.Venue,
		MatchType: matchType,
	}

	id, err := s.matchDayRepo.CreateMatchDay(matchDay)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateMatchDate
		}
		return nil, fmt.Errorf("failed to create match day: %w", err)
	}
	return s.matchDayRepo.GetMatchDayByID(id)
}

func (s *matchDayService) GetMatchDayByID(matchDayID int64) (*models.MatchDay, error) {
	matchDay, err := s.matchDayRepo.GetMatchDayByID(matchDayID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMatchDayNotFound
		}
		return nil, fmt.Errorf("failed to get match day by ID: %w", err)
	}
	return matchDay, nil
}

func (s *matchDayService) GetMatchDays(filter MatchDayListFilter, limit, offset int) ([]models.MatchDay, int, error) {
	start, err := ParseOptionalDate(filter.StartDate)
	if err != nil {
		return nil, 0, err
	}
	end, err := ParseOptionalDate(filter.EndDate)
	if err != nil {
		return nil, 0, err
	}

	matchDays, totalCount, err := s.matchDayRepo.GetMatchDays(repositories.MatchDayFilter{StartDate: start, EndDate: end}, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get match days: %w", err)
	}
	return matchDays, totalCount, nil
}

func (s *matchDayService) UpdateMatchDay(matchDayID int64, req UpdateMatchDayRequest) (*models.MatchDay, error) {
	matchDay, err := s.matchDayRepo.GetMatchDayByID(matchDayID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMatchDayNotFound
		}
		return nil, fmt.Errorf("failed to find match day for update: %w", err)
	}

	if req.MatchDate != nil {
		matchDate, err := ParseDate(*req.MatchDate)
		if err != nil {
			return nil, err
		}
		matchDay.MatchDate = matchDate
	}
	if req.Opponent != nil {
		matchDay.Opponent = req.Opponent
	}
	if req.Venue != nil {
		matchDay.Venue = req.Venue
	}
	if req.MatchType != nil {
		if !models.IsValidMatchType(*req.MatchType) {
			return nil, fmt.Errorf("%w: invalid match type '%s'", ErrMatchDayValidation, *req.MatchType)
		}
		matchDay.MatchType = *req.MatchType
	}

	if err := s.matchDayRepo.UpdateMatchDay(matchDay); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateMatchDate
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMatchDayNotFound
		}
		return nil, fmt.Errorf("failed to update match day: %w", err)
	}
	return s.matchDayRepo.GetMatchDayByID(matchDayID)
}

func (s *matchDayService) DeleteMatchDay(matchDayID int64) error {
	if err := s.matchDayRepo.DeleteMatchDay(matchDayID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMatchDayNotFound
		}
		return fmt.Errorf("failed to delete match day: %w", err)
	}
	return nil
}
