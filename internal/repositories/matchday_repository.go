package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/kasasa22/Munyonyo-Soccer-Team-sub001/internal/models"
)

// MatchDayFilter narrows a match-day listing by date range.
type MatchDayFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// MatchDayRepository defines the interface for match-day database operations.
type MatchDayRepository interface {
	CreateMatchDay(matchDay *models.MatchDay) (int64, error)
	GetMatchDayByID(id int64) (*models.MatchDay, error)
	GetMatchDays(filter MatchDayFilter, limit, offset int) ([]models.MatchDay, int, error)
	GetAllMatchDays(filter MatchDayFilter) ([]models.MatchDay, error)
	UpdateMatchDay(matchDay *models.MatchDay) error
	DeleteMatchDay(id int64) error
}

type matchDayRepository struct {
	db *sql.DB
}

// NewMatchDayRepository creates a new instance of MatchDayRepository.
func NewMatchDayRepository(db *sql.DB) MatchDayRepository {
	return &matchDayRepository{db: db}
}

const matchDayColumns = `id, match_date, opponent, venue, match_type, created_at, updated_at`

func scanMatchDay(s interface{ Scan(...interface{}) error }, m *models.MatchDay) error {
	return s.Scan(
		&m.ID, &m.MatchDate, &m.Opponent, &m.Venue, &m.MatchType,
		&m.CreatedAt, &m.UpdatedAt,
	)
}

// CreateMatchDay inserts a new match day. The match_date column carries a
// unique constraint; a second match day on the same date returns ErrDuplicateKey.
func (r *matchDayRepository) CreateMatchDay(matchDay *models.MatchDay) (int64, error) {
	query := `INSERT INTO match_days (match_date, opponent, venue, match_type, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	now := time.Now()
	matchDay.CreatedAt = now
	matchDay.UpdatedAt = now

	err := r.db.QueryRow(query,
		matchDay.MatchDate, matchDay.Opponent, matchDay.Venue, matchDay.MatchType,
		matchDay.CreatedAt, matchDay.UpdatedAt,
	).Scan(&matchDay.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating match day: %v", ErrDatabaseError, err)
	}
	return matchDay.ID, nil
}

// GetMatchDayByID retrieves a match day by its ID.
func (r *matchDayRepository) GetMatchDayByID(id int64) (*models.MatchDay, error) {
	matchDay := &models.MatchDay{}
	query := `SELECT ` + matchDayColumns + ` FROM match_days WHERE id = $1`

	err := scanMatchDay(r.db.QueryRow(query, id), matchDay)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting match day by ID %d: %v", ErrDatabaseError, id, err)
	}
	return matchDay, nil
}

func buildMatchDayWhere(filter MatchDayFilter, args *[]interface{}) string {
	var conditions []string
	argCount := len(*args) + 1

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("match_date >= $%d", argCount))
		*args = append(*args, *filter.StartDate)
		argCount++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("match_date <= $%d", argCount))
		*args = append(*args, *filter.EndDate)
		argCount++
	}

	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// GetMatchDays retrieves match days in the date range, newest first.
func (r *matchDayRepository) GetMatchDays(filter MatchDayFilter, limit, offset int) ([]models.MatchDay, int, error) {
	matchDays := []models.MatchDay{}
	totalCount := 0

	var args []interface{}
	query := `SELECT ` + matchDayColumns + `, COUNT(*) OVER() as total_count FROM match_days` +
		buildMatchDayWhere(filter, &args) +
		" ORDER BY match_date DESC" +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying match days: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.MatchDay
		if err := rows.Scan(
			&m.ID, &m.MatchDate, &m.Opponent, &m.Venue, &m.MatchType,
			&m.CreatedAt, &m.UpdatedAt, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning match day: %v", ErrDatabaseError, err)
		}
		matchDays = append(matchDays, m)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating match day rows: %v", ErrDatabaseError, err)
	}
	return matchDays, totalCount, nil
}

// GetAllMatchDays retrieves every match day in the range, newest first,
// for report computation.
func (r *matchDayRepository) GetAllMatchDays(filter MatchDayFilter) ([]models.MatchDay, error) {
	matchDays := []models.MatchDay{}

	var args []interface{}
	query := `SELECT ` + matchDayColumns + ` FROM match_days` +
		buildMatchDayWhere(filter, &args) +
		" ORDER BY match_date DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying all match days: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.MatchDay
		if err := scanMatchDay(rows, &m); err != nil {
			return nil, fmt.Errorf("%w: scanning match day: %v", ErrDatabaseError, err)
		}
		matchDays = append(matchDays, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating match day rows: %v", ErrDatabaseError, err)
	}
	return matchDays, nil
}

// UpdateMatchDay updates an existing match day.
func (r *matchDayRepository) UpdateMatchDay(matchDay *models.MatchDay) error {
	query := `UPDATE match_days SET
	            match_date = $1, opponent = $2, venue = $3, match_type = $4, updated_at = $5
	          WHERE id = $6`

	matchDay.UpdatedAt = time.Now()
	result, err := r.db.Exec(query,
		matchDay.MatchDate, matchDay.Opponent, matchDay.Venue, matchDay.MatchType,
		matchDay.UpdatedAt, matchDay.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating match day ID %d: %v", ErrDatabaseError, matchDay.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for match day ID %d: %v", ErrDatabaseError, matchDay.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMatchDay removes a match day.
func (r *matchDayRepository) DeleteMatchDay(id int64) error {
	result, err := r.db.Exec(`DELETE FROM match_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting match day ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting match day ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
