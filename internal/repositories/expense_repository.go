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

// ExpenseFilter narrows an expense listing. All fields are optional.
type ExpenseFilter struct {
	Category   *string
	MatchDayID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExpenseRepository defines the interface for expense database operations.
type ExpenseRepository interface {
	CreateExpense(expense *models.Expense) (int64, error)
	GetExpenseByID(id int64) (*models.Expense, error)
	GetExpenses(filter ExpenseFilter, limit, offset int) ([]models.Expense, int, error)
	GetAllExpenses(filter ExpenseFilter) ([]models.Expense, error)
	GetExpensesByMatchDay(matchDayID int64) ([]models.Expense, error)
	UpdateExpense(expense *models.Expense) error
	DeleteExpense(id int64) error
}

type expenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new instance of ExpenseRepository.
func NewExpenseRepository(db *sql.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `id, description, category, amount, expense_date, match_day_id, created_at, updated_at`

func scanExpense(s interface{ Scan(...interface{}) error }, e *models.Expense) error {
	return s.Scan(
		&e.ID, &e.Description, &e.Category, &e.Amount,
		&e.ExpenseDate, &e.MatchDayID, &e.CreatedAt, &e.UpdatedAt,
	)
}

// CreateExpense inserts a new expense.
func (r *expenseRepository) CreateExpense(expense *models.Expense) (int64, error) {
	query := `INSERT INTO expenses (description, category, amount, expense_date, match_day_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	now := time.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	err := r.db.QueryRow(query,
		expense.Description, expense.Category, expense.Amount,
		expense.ExpenseDate, expense.MatchDayID, expense.CreatedAt, expense.UpdatedAt,
	).Scan(&expense.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return 0, fmt.Errorf("%w: expense references a missing match day (constraint: %s)", ErrNotFound, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating expense: %v", ErrDatabaseError, err)
	}
	return expense.ID, nil
}

// GetExpenseByID retrieves an expense by its ID.
func (r *expenseRepository) GetExpenseByID(id int64) (*models.Expense, error) {
	expense := &models.Expense{}
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`

	err := scanExpense(r.db.QueryRow(query, id), expense)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting expense by ID %d: %v", ErrDatabaseError, id, err)
	}
	return expense, nil
}

// GetExpenses retrieves expenses matching the filter, newest expense date first.
func (r *expenseRepository) GetExpenses(filter ExpenseFilter, limit, offset int) ([]models.Expense, int, error) {
	expenses := []models.Expense{}
	totalCount := 0

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.Category != nil && *filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filter.Category)
		argCount++
	}
	if filter.MatchDayID != nil {
		conditions = append(conditions, fmt.Sprintf("match_day_id = $%d", argCount))
		args = append(args, *filter.MatchDayID)
		argCount++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("expense_date >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("expense_date <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + expenseColumns + `, COUNT(*) OVER() as total_count FROM expenses`)
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY expense_date DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying expenses: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(
			&e.ID, &e.Description, &e.Category, &e.Amount,
			&e.ExpenseDate, &e.MatchDayID, &e.CreatedAt, &e.UpdatedAt, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning expense: %v", ErrDatabaseError, err)
		}
		expenses = append(expenses, e)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return expenses, totalCount, nil
}

// GetAllExpenses retrieves every expense matching the filter, without
// pagination, for report computation.
func (r *expenseRepository) GetAllExpenses(filter ExpenseFilter) ([]models.Expense, error) {
	expenses := []models.Expense{}

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.Category != nil && *filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filter.Category)
		argCount++
	}
	if filter.MatchDayID != nil {
		conditions = append(conditions, fmt.Sprintf("match_day_id = $%d", argCount))
		args = append(args, *filter.MatchDayID)
		argCount++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("expense_date >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("expense_date <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY expense_date DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying all expenses: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Expense
		if err := scanExpense(rows, &e); err != nil {
			return nil, fmt.Errorf("%w: scanning expense: %v", ErrDatabaseError, err)
		}
		expenses = append(expenses, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return expenses, nil
}

// GetExpensesByMatchDay retrieves every expense explicitly linked to a match day.
func (r *expenseRepository) GetExpensesByMatchDay(matchDayID int64) ([]models.Expense, error) {
	expenses := []models.Expense{}
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE match_day_id = $1 ORDER BY expense_date DESC`

	rows, err := r.db.Query(query, matchDayID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying expenses for match day %d: %v", ErrDatabaseError, matchDayID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Expense
		if err := scanExpense(rows, &e); err != nil {
			return nil, fmt.Errorf("%w: scanning expense: %v", ErrDatabaseError, err)
		}
		expenses = append(expenses, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating expense rows: %v", ErrDatabaseError, err)
	}
	return expenses, nil
}

// UpdateExpense updates an existing expense.
func (r *expenseRepository) UpdateExpense(expense *models.Expense) error {
	query := `UPDATE expenses SET
	            description = $1, category = $2, amount = $3, expense_date = $4,
	            match_day_id = $5, updated_at = $6
	          WHERE id = $7`

	expense.UpdatedAt = time.Now()
	result, err := r.db.Exec(query,
		expense.Description, expense.Category, expense.Amount, expense.ExpenseDate,
		expense.MatchDayID, expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating expense ID %d: %v", ErrDatabaseError, expense.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for expense ID %d: %v", ErrDatabaseError, expense.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense.
func (r *expenseRepository) DeleteExpense(id int64) error {
	result, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting expense ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting expense ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
