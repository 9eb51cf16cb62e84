package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

// CategoryReadRepository reads the seeded category and income source lists.
type CategoryReadRepository struct {
	db *sqlx.DB
}

func NewCategoryReadRepository(db *sqlx.DB) *CategoryReadRepository {
	return &CategoryReadRepository{db: db}
}

// ListByKind returns the lookup list for a ledger, ordered by name.
func (r *CategoryReadRepository) ListByKind(ctx context.Context, kind models.Kind) ([]models.CategoryDB, error) {
	const query = `
		SELECT category_id, name, kind
		FROM categories
		WHERE kind = $1
		ORDER BY name
	`

	categories := []models.CategoryDB{}
	err := r.db.SelectContext(ctx, &categories, query, kind)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{kind},
		"result", len(categories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return categories, nil
}
