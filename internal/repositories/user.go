package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

var (
	// ErrDuplicateUsername is returned when an insert hits the username unique constraint.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail is returned when an insert hits the email unique constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

const userColumns = `user_id, username, email, password_hash, is_active, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user or nil when no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByUsername returns the user or nil when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// GetByEmail returns the user or nil when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	// Log with query in single line
	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{arg},
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user. Unique violations are reported as ErrDuplicateUsername or ErrDuplicateEmail.
func (r *UserWriteRepository) Create(ctx context.Context, username, email, passwordHash string, active bool) (*models.UserDB, error) {
	query := `
		INSERT INTO users (username, email, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + userColumns
	args := []any{username, email, passwordHash, active}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	// Log with query in single line, without the hash
	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{username, email, active},
		"result", user.UserID,
		"error", err,
	)

	if err != nil {
		switch uniqueConstraint(err) {
		case "users_username_key":
			return nil, ErrDuplicateUsername
		case "users_email_key":
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// Activate marks the user active.
func (r *UserWriteRepository) Activate(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET is_active = TRUE, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, []any{userID}, []any{userID})
}

// SetPassword replaces the password hash.
func (r *UserWriteRepository) SetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE user_id = $1`
	return r.exec(ctx, query, []any{userID, passwordHash}, []any{userID})
}

func (r *UserWriteRepository) exec(ctx context.Context, query string, args, logArgs []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", logArgs,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
