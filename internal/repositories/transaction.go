package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

const transactionColumns = `transaction_id, owner_id, kind, amount, date, description, category, created_at, updated_at`

// TransactionReadRepository reads ledger rows. Every query is scoped to one owner and one kind.
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter TxGetter) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

// Search returns rows whose amount or date starts with text, or whose description
// or category contains it, ignoring case. Empty text matches every row.
func (r *TransactionReadRepository) Search(ctx context.Context, ownerID uuid.UUID, kind models.Kind, text string) ([]models.TransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1
		  AND kind = $2
		  AND (
		        amount::text ILIKE $3
		     OR date::text ILIKE $3
		     OR description ILIKE $4
		     OR category ILIKE $4
		  )
		ORDER BY date DESC, transaction_id DESC
	`
	escaped := escapeLike(text)
	args := []any{ownerID, kind, escaped + "%", "%" + escaped + "%"}
	return r.selectRows(ctx, query, args)
}

// ListPage returns one page of rows, newest first.
func (r *TransactionReadRepository) ListPage(ctx context.Context, ownerID uuid.UUID, kind models.Kind, limit, offset int) ([]models.TransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND kind = $2
		ORDER BY date DESC, transaction_id DESC
		LIMIT $3 OFFSET $4
	`
	return r.selectRows(ctx, query, []any{ownerID, kind, limit, offset})
}

// ListAll returns every row of the ledger, newest first.
func (r *TransactionReadRepository) ListAll(ctx context.Context, ownerID uuid.UUID, kind models.Kind) ([]models.TransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND kind = $2
		ORDER BY date DESC, transaction_id DESC
	`
	return r.selectRows(ctx, query, []any{ownerID, kind})
}

// ListBetween returns rows dated within [from, to], both inclusive.
func (r *TransactionReadRepository) ListBetween(ctx context.Context, ownerID uuid.UUID, kind models.Kind, from, to time.Time) ([]models.TransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND kind = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date DESC, transaction_id DESC
	`
	args := []any{ownerID, kind, from.Format(models.DateLayout), to.Format(models.DateLayout)}
	return r.selectRows(ctx, query, args)
}

// Count returns the number of rows in the ledger.
func (r *TransactionReadRepository) Count(ctx context.Context, ownerID uuid.UUID, kind models.Kind) (int, error) {
	const query = `SELECT COUNT(*) FROM transactions WHERE owner_id = $1 AND kind = $2`

	var total int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, query, ownerID, kind)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", []any{ownerID, kind},
		"result", total,
		"error", err,
	)

	return total, err
}

// Get returns the row or nil when it does not exist or belongs to someone else.
func (r *TransactionReadRepository) Get(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64) (*models.TransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2 AND kind = $3
	`
	args := []any{id, ownerID, kind}

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &txn, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", txn.TransactionID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *TransactionReadRepository) selectRows(ctx context.Context, query string, args []any) ([]models.TransactionDB, error) {
	rows := []models.TransactionDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TransactionWriteRepository mutates ledger rows inside the request transaction when one is bound.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a row and returns it.
func (r *TransactionWriteRepository) Create(ctx context.Context, ownerID uuid.UUID, kind models.Kind, in models.TransactionInput) (*models.TransactionDB, error) {
	const query = `
		INSERT INTO transactions (owner_id, kind, amount, date, description, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + transactionColumns
	args := []any{ownerID, kind, in.Amount, in.Date.Format(models.DateLayout), in.Description, in.Category}

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &txn, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", txn.TransactionID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Update replaces the editable fields. Returns nil when the row is not owned by ownerID.
func (r *TransactionWriteRepository) Update(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64, in models.TransactionInput) (*models.TransactionDB, error) {
	const query = `
		UPDATE transactions
		SET amount = $4, date = $5, description = $6, category = $7, updated_at = NOW()
		WHERE transaction_id = $1 AND owner_id = $2 AND kind = $3
		RETURNING ` + transactionColumns
	args := []any{id, ownerID, kind, in.Amount, in.Date.Format(models.DateLayout), in.Description, in.Category}

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &txn, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", txn.TransactionID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Delete removes the row and returns it. Returns nil when the row is not owned by ownerID.
func (r *TransactionWriteRepository) Delete(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64) (*models.TransactionDB, error) {
	const query = `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2 AND kind = $3
		RETURNING ` + transactionColumns
	args := []any{id, ownerID, kind}

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &txn, query, args...)

	logger.Log.Infow(
		"query", oneLine(query),
		"args", args,
		"result", txn.TransactionID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
