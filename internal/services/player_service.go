package services

import (
	"errors"
	"fmt"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/repositories"
	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/pkg/utils"
)

// --- Custom Service Errors for Player ---
var (
	ErrPlayerNotFound   = errors.New("player not found")
	ErrPlayerValidation = errors.New("player data validation error")
)

// --- Player DTOs ---

// CreatePlayerRequest carries a new player. Fee fields are optional and
// default to the team's standard amounts when omitted.
type CreatePlayerRequest struct {
	FullName    string   `json:"full_name" binding:"required"`
	PhoneNumber string   `json:"phone_number" binding:"required"`
	AnnualFee   *float64 `json:"annual_fee"`
	MonthlyFee  *float64 `json:"monthly_fee"`
	PitchFee    *float64 `json:"pitch_fee"`
	MatchDay    *string  `json:"match_day"`
}

// UpdatePlayerRequest is a partial-field player update.
type UpdatePlayerRequest struct {
	FullName    *string  `json:"full_name"`
	PhoneNumber *string  `json:"phone_number"`
	AnnualFee   *float64 `json:"annual_fee"`
	MonthlyFee  *float64 `json:"monthly_fee"`
	PitchFee    *float64 `json:"pitch_fee"`
	MatchDay    *string  `json:"match_day"`
}

// --- PlayerService Interface ---
type PlayerService interface {
	CreatePlayer(req CreatePlayerRequest) (*models.Player, error)
	GetPlayerByID(playerID int64) (*models.Player, error)
	GetPlayers(limit, offset int, searchTerm *string) ([]models.Player, int, error)
	UpdatePlayer(playerID int64, req UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(playerID int64) error
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

// NewPlayerService creates a new instance of PlayerService.
func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

func validateFee(name string, fee float64) error {
	if fee < 0 {
		return fmt.Errorf("%w: %s cannot be negative", ErrPlayerValidation, name)
	}
	return nil
}

func (s *playerService) CreatePlayer(req CreatePlayerRequest) (*models.Player, error) {
	if utils.IsEmpty(req.FullName) {
		return nil, fmt.Errorf("%w: full name cannot be empty", ErrPlayerValidation)
	}
	if utils.IsEmpty(req.PhoneNumber) {
		return nil, fmt.Errorf("%w: phone number cannot be empty", ErrPlayerValidation)
	}

	player := &models.Player{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		AnnualFee:   models.DefaultAnnualFee,
		MonthlyFee:  models.DefaultMonthlyFee,
		PitchFee:    models.DefaultPitchFee,
		MatchDay:    req.MatchDay,
	}
	if req.AnnualFee != nil {
		player.AnnualFee = *req.AnnualFee
	}
	if req.MonthlyFee != nil {
		player.MonthlyFee = *req.MonthlyFee
	}
	if req.PitchFee != nil {
		player.PitchFee = *req.PitchFee
	}

	if err := validateFee("annual fee", player.AnnualFee); err != nil {
		return nil, err
	}
	if err := validateFee("monthly fee", player.MonthlyFee); err != nil {
		return nil, err
	}
	if err := validateFee("pitch fee", player.PitchFee); err != nil {
		return nil, err
	}

	id, err := s.playerRepo.CreatePlayer(player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return s.playerRepo.GetPlayerByID(id)
}

func (s *playerService) GetPlayerByID(playerID int64) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}
	return player, nil
}

func (s *playerService) GetPlayers(limit, offset int, searchTerm *string) ([]models.Player, int, error) {
	players, totalCount, err := s.playerRepo.GetPlayers(limit, offset, searchTerm)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get players: %w", err)
	}
	return players, totalCount, nil
}

func (s *playerService) UpdatePlayer(playerID int64, req UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.playerRepo.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player for update: %w", err)
	}

	if req.FullName != nil {
		if utils.IsEmpty(*req.FullName) {
			return nil, fmt.Errorf("%w: full name cannot be empty", ErrPlayerValidation)
		}
		player.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		if utils.IsEmpty(*req.PhoneNumber) {
			return nil, fmt.Errorf("%w: phone number cannot be empty", ErrPlayerValidation)
		}
		player.PhoneNumber = *req.PhoneNumber
	}
	if req.AnnualFee != nil {
		if err := validateFee("annual fee", *req.AnnualFee); err != nil {
			return nil, err
		}
		player.AnnualFee = *req.AnnualFee
	}
	if req.MonthlyFee != nil {
		if err := validateFee("monthly fee", *req.MonthlyFee); err != nil {
			return nil, err
		}
		player.MonthlyFee = *req.MonthlyFee
	}
	if req.PitchFee != nil {
		if err := validateFee("pitch fee", *req.PitchFee); err != nil {
			return nil, err
		}
		player.PitchFee = *req.PitchFee
	}
	if req.MatchDay != nil {
		player.MatchDay = req.MatchDay
	}

	if err := s.playerRepo.UpdatePlayer(player); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return s.playerRepo.GetPlayerByID(playerID)
}

func (s *playerService) DeletePlayer(playerID int64) error {
	if err := s.playerRepo.DeletePlayer(playerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}
