package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
)

// PlayerRepository defines the interface for player database operations.
type PlayerRepository interface {
	CreatePlayer(player *models.Player) (int64, error)
	GetPlayerByID(id int64) (*models.Player, error)
	GetPlayers(limit, offset int, searchTerm *string) ([]models.Player, int, error)
	GetAllPlayers() ([]models.Player, error)
	UpdatePlayer(player *models.Player) error
	DeletePlayer(id int64) error
}

type playerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *sql.DB) PlayerRepository {
	return &playerRepository{db: db}
}

const playerColumns = `id, full_name, phone_number, annual_fee, monthly_fee, pitch_fee, match_day, created_at, updated_at`

func scanPlayer(s interface{ Scan(...interface{}) error }, p *models.Player) error {
	return s.Scan(
		&p.ID, &p.FullName, &p.PhoneNumber, &p.AnnualFee, &p.MonthlyFee,
		&p.PitchFee, &p.MatchDay, &p.CreatedAt, &p.UpdatedAt,
	)
}

// CreatePlayer inserts a new player.
func (r *playerRepository) CreatePlayer(player *models.Player) (int64, error) {
	query := `INSERT INTO players (full_name, phone_number, annual_fee, monthly_fee, pitch_fee, match_day, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	now := time.Now()
	player.CreatedAt = now
	player.UpdatedAt = now

	err := r.db.QueryRow(query,
		player.FullName, player.PhoneNumber, player.AnnualFee, player.MonthlyFee,
		player.PitchFee, player.MatchDay, player.CreatedAt, player.UpdatedAt,
	).Scan(&player.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating player: %v", ErrDatabaseError, err)
	}
	return player.ID, nil
}

// GetPlayerByID retrieves a player by their ID.
func (r *playerRepository) GetPlayerByID(id int64) (*models.Player, error) {
	player := &models.Player{}
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	err := scanPlayer(r.db.QueryRow(query, id), player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting player by ID %d: %v", ErrDatabaseError, id, err)
	}
	return player, nil
}

// GetPlayers retrieves players with pagination and optional name/phone search.
func (r *playerRepository) GetPlayers(limit, offset int, searchTerm *string) ([]models.Player, int, error) {
	players := []models.Player{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + playerColumns + `, COUNT(*) OVER() as total_count FROM players`)

	var args []interface{}
	argCount := 1

	if searchTerm != nil && *searchTerm != "" {
		searchPattern := "%" + strings.ToLower(*searchTerm) + "%"
		queryBuilder.WriteString(fmt.Sprintf(" WHERE (full_name ILIKE $%d OR phone_number ILIKE $%d)", argCount, argCount))
		args = append(args, searchPattern)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY full_name ASC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying players: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Player
		if err := rows.Scan(
			&p.ID, &p.FullName, &p.PhoneNumber, &p.AnnualFee, &p.MonthlyFee,
			&p.PitchFee, &p.MatchDay, &p.CreatedAt, &p.UpdatedAt, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning player: %v", ErrDatabaseError, err)
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating player rows: %v", ErrDatabaseError, err)
	}
	return players, totalCount, nil
}

// GetAllPlayers retrieves the full roster, for report computation.
func (r *playerRepository) GetAllPlayers() ([]models.Player, error) {
	players := []models.Player{}
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY full_name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying all players: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, fmt.Errorf("%w: scanning player: %v", ErrDatabaseError, err)
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating player rows: %v", ErrDatabaseError, err)
	}
	return players, nil
}

// UpdatePlayer updates an existing player.
func (r *playerRepository) UpdatePlayer(player *models.Player) error {
	query := `UPDATE players SET
	            full_name = $1, phone_number = $2, annual_fee = $3, monthly_fee = $4,
	            pitch_fee = $5, match_day = $6, updated_at = $7
	          WHERE id = $8`

	player.UpdatedAt = time.Now()
	result, err := r.db.Exec(query,
		player.FullName, player.PhoneNumber, player.AnnualFee, player.MonthlyFee,
		player.PitchFee, player.MatchDay, player.UpdatedAt, player.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating player ID %d: %v", ErrDatabaseError, player.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for player ID %d: %v", ErrDatabaseError, player.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePlayer removes a player.
func (r *playerRepository) DeletePlayer(id int64) error {
	result, err := r.db.Exec(`DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting player ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting player ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
