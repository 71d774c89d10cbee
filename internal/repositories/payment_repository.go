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

// PaymentFilter narrows a payment listing. All fields are optional.
type PaymentFilter struct {
	PlayerID    *int64
	PaymentType *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// PaymentRepository defines the interface for payment database operations.
type PaymentRepository interface {
	CreatePayment(payment *models.Payment) (int64, error)
	GetPaymentByID(id int64) (*models.Payment, error)
	GetPayments(filter PaymentFilter, limit, offset int) ([]models.Payment, int, error)
	GetAllPayments(filter PaymentFilter) ([]models.Payment, error)
	UpdatePayment(payment *models.Payment) error
	DeletePayment(id int64) error
}

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, player_id, player_name, payment_type, amount, payment_date, match_day_id, created_at, updated_at`

func scanPayment(s interface{ Scan(...interface{}) error }, p *models.Payment) error {
	return s.Scan(
		&p.ID, &p.PlayerID, &p.PlayerName, &p.PaymentType, &p.Amount,
		&p.PaymentDate, &p.MatchDayID, &p.CreatedAt, &p.UpdatedAt,
	)
}

// CreatePayment inserts a new payment.
func (r *paymentRepository) CreatePayment(payment *models.Payment) (int64, error) {
	query := `INSERT INTO payments (player_id, player_name, payment_type, amount, payment_date, match_day_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	err := r.db.QueryRow(query,
		payment.PlayerID, payment.PlayerName, payment.PaymentType, payment.Amount,
		payment.PaymentDate, payment.MatchDayID, payment.CreatedAt, payment.UpdatedAt,
	).Scan(&payment.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return 0, fmt.Errorf("%w: payment references a missing record (constraint: %s)", ErrNotFound, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating payment: %v", ErrDatabaseError, err)
	}
	return payment.ID, nil
}

// GetPaymentByID retrieves a payment by its ID.
func (r *paymentRepository) GetPaymentByID(id int64) (*models.Payment, error) {
	payment := &models.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	err := scanPayment(r.db.QueryRow(query, id), payment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting payment by ID %d: %v", ErrDatabaseError, id, err)
	}
	return payment, nil
}

func buildPaymentWhere(filter PaymentFilter, args *[]interface{}) string {
	var conditions []string
	argCount := len(*args) + 1

	if filter.PlayerID != nil {
		conditions = append(conditions, fmt.Sprintf("player_id = $%d", argCount))
		*args = append(*args, *filter.PlayerID)
		argCount++
	}
	if filter.PaymentType != nil && *filter.PaymentType != "" {
		conditions = append(conditions, fmt.Sprintf("payment_type = $%d", argCount))
		*args = append(*args, *filter.PaymentType)
		argCount++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("payment_date >= $%d", argCount))
		*args = append(*args, *filter.StartDate)
		argCount++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("payment_date <= $%d", argCount))
		*args = append(*args, *filter.EndDate)
		argCount++
	}

	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// GetPayments retrieves payments matching the filter, newest payment date first.
func (r *paymentRepository) GetPayments(filter PaymentFilter, limit, offset int) ([]models.Payment, int, error) {
	payments := []models.Payment{}
	totalCount := 0

	var args []interface{}
	query := `SELECT ` + paymentColumns + `, COUNT(*) OVER() as total_count FROM payments` +
		buildPaymentWhere(filter, &args) +
		" ORDER BY payment_date DESC" +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(
			&p.ID, &p.PlayerID, &p.PlayerName, &p.PaymentType, &p.Amount,
			&p.PaymentDate, &p.MatchDayID, &p.CreatedAt, &p.UpdatedAt, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating payment rows: %v", ErrDatabaseError, err)
	}
	return payments, totalCount, nil
}

// GetAllPayments retrieves every payment matching the filter, without
// pagination, for report computation.
func (r *paymentRepository) GetAllPayments(filter PaymentFilter) ([]models.Payment, error) {
	payments := []models.Payment{}

	var args []interface{}
	query := `SELECT ` + paymentColumns + ` FROM payments` +
		buildPaymentWhere(filter, &args) +
		" ORDER BY payment_date DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying all payments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating payment rows: %v", ErrDatabaseError, err)
	}
	return payments, nil
}

// UpdatePayment updates an existing payment.
func (r *paymentRepository) UpdatePayment(payment *models.Payment) error {
	query := `UPDATE payments SET
	            player_id = $1, player_name = $2, payment_type = $3, amount = $4,
	            payment_date = $5, match_day_id = $6, updated_at = $7
	          WHERE id = $8`

	payment.UpdatedAt = time.Now()
	result, err := r.db.Exec(query,
		payment.PlayerID, payment.PlayerName, payment.PaymentType, payment.Amount,
		payment.PaymentDate, payment.MatchDayID, payment.UpdatedAt, payment.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating payment ID %d: %v", ErrDatabaseError, payment.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for payment ID %d: %v", ErrDatabaseError, payment.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePayment removes a payment.
func (r *paymentRepository) DeletePayment(id int64) error {
	result, err := r.db.Exec(`DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting payment ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting payment ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
