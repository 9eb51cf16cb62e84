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

type PreferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get returns the user's preferences or nil when none were saved.
func (r *PreferenceRepository) Get(ctx context.Context, userID uuid.UUID) (*models.PreferenceDB, error) {
	const query = `SELECT user_id, currency FROM preferences WHERE user_id = $1`

	var pref models.PreferenceDB
	err := r.db.GetContext(ctx, &pref, query, userID)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{userID},
		"result", pref.Currency,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Save creates or replaces the user's preferences.
func (r *PreferenceRepository) Save(ctx context.Context, userID uuid.UUID, currency string) error {
	const query = `
		INSERT INTO preferences (user_id, currency)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET currency = EXCLUDED.currency
	`
	args := []any{userID, currency}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
