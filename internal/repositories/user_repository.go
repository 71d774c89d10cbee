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

// UserRepository defines the interface for user database operations.
// The password hash travels separately from the User model so it never
// leaks through a serialized struct.
type UserRepository interface {
	CreateUser(user *models.User, passwordHash string) (int64, error)
	FindUserByID(id int64) (*models.User, error)
	FindUserByEmail(email string) (*models.User, string, error)
	GetUsers(limit, offset int, searchTerm *string) ([]models.User, int, error)
	UpdateUser(user *models.User) error
	UpdateUserPassword(id int64, passwordHash string) error
	DeleteUser(id int64) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, full_name, email, role, status, created_at, updated_at`

// CreateUser inserts a new user with their password hash.
func (r *userRepository) CreateUser(user *models.User, passwordHash string) (int64, error) {
	query := `INSERT INTO users (full_name, email, role, status, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.QueryRow(query,
		user.FullName, user.Email, user.Role, user.Status, passwordHash,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user.ID, nil
}

// FindUserByID retrieves a user by their ID, without the password hash.
func (r *userRepository) FindUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Role, &user.Status,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user by ID %d: %v", ErrDatabaseError, id, err)
	}
	return user, nil
}

// FindUserByEmail retrieves a user and their stored password hash for
// credential verification.
func (r *userRepository) FindUserByEmail(email string) (*models.User, string, error) {
	user := &models.User{}
	var passwordHash string
	query := `SELECT id, full_name, email, role, status, password_hash, created_at, updated_at
	          FROM users WHERE LOWER(email) = LOWER($1)`

	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Role, &user.Status,
		&passwordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: getting user by email: %v", ErrDatabaseError, err)
	}
	return user, passwordHash, nil
}

// GetUsers retrieves users with pagination and optional name/email search.
func (r *userRepository) GetUsers(limit, offset int, searchTerm *string) ([]models.User, int, error) {
	users := []models.User{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + userColumns + `, COUNT(*) OVER() as total_count FROM users`)

	var args []interface{}
	argCount := 1

	if searchTerm != nil && *searchTerm != "" {
		searchPattern := "%" + strings.ToLower(*searchTerm) + "%"
		queryBuilder.WriteString(fmt.Sprintf(" WHERE (full_name ILIKE $%d OR email ILIKE $%d)", argCount, argCount))
		args = append(args, searchPattern)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY full_name ASC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying users: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.FullName, &u.Email, &u.Role, &u.Status,
			&u.CreatedAt, &u.UpdatedAt, &totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating user rows: %v", ErrDatabaseError, err)
	}
	return users, totalCount, nil
}

// UpdateUser updates a user's profile fields (not the password hash).
func (r *userRepository) UpdateUser(user *models.User) error {
	query := `UPDATE users SET
	            full_name = $1, email = $2, role = $3, status = $4, updated_at = $5
	          WHERE id = $6`

	user.UpdatedAt = time.Now()
	result, err := r.db.Exec(query,
		user.FullName, user.Email, user.Role, user.Status, user.UpdatedAt, user.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating user ID %d: %v", ErrDatabaseError, user.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for user ID %d: %v", ErrDatabaseError, user.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateUserPassword replaces a user's password hash.
func (r *userRepository) UpdateUserPassword(id int64, passwordHash string) error {
	result, err := r.db.Exec(
		`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`,
		passwordHash, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("%w: updating password for user ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for user ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes a user.
func (r *userRepository) DeleteUser(id int64) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting user ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for deleting user ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
