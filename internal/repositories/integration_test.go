//go:build integration

package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/database"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dsn))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestIntegration_UserLifecycle(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	reader := NewUserReadRepository(db)
	writer := NewUserWriteRepository(db)

	user, err := writer.Create(ctx, "alice", "alice@example.com", "hash", false)
	require.NoError(t, err)
	assert.False(t, user.IsActive)

	_, err = writer.Create(ctx, "alice", "other@example.com", "hash", false)
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = writer.Create(ctx, "bob", "alice@example.com", "hash", false)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	require.NoError(t, writer.Activate(ctx, user.UserID))
	require.NoError(t, writer.SetPassword(ctx, user.UserID, "newhash"))

	got, err := reader.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, "newhash", got.PasswordHash)

	missing, err := reader.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_LedgerQueries(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db)
	reader := NewTransactionReadRepository(db, nil)
	writer := NewTransactionWriteRepository(db, nil)

	alice, err := users.Create(ctx, "alice", "alice@example.com", "hash", true)
	require.NoError(t, err)
	bob, err := users.Create(ctx, "bob", "bob@example.com", "hash", true)
	require.NoError(t, err)

	day := func(s string) time.Time {
		d, _ := time.Parse(models.DateLayout, s)
		return d
	}
	add := func(owner *models.UserDB, amount, date, desc, category string) {
		_, err := writer.Create(ctx, owner.UserID, models.KindExpense, models.TransactionInput{
			Amount:      decimal.RequireFromString(amount),
			Date:        day(date),
			Description: desc,
			Category:    category,
		})
		require.NoError(t, err)
	}

	add(alice, "12.50", "2025-03-10", "Lunch with team", "Food")
	add(alice, "120.00", "2025-02-01", "Train ticket", "Travel")
	add(alice, "7.00", "2024-01-15", "100% juice", "Food")
	add(bob, "12.00", "2025-03-10", "lunch", "Food")

	tests := []struct {
		name string
		text string
		want int
	}{
		{"description ignores case", "LUNCH", 1},
		{"category contains", "trav", 1},
		{"amount prefix", "12", 2},
		{"date prefix", "2025-03", 1},
		{"literal percent", "100%", 1},
		{"percent is not a wildcard", "%", 1},
		{"empty matches all owned rows", "", 3},
		{"no match", "zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := reader.Search(ctx, alice.UserID, models.KindExpense, tt.text)
			require.NoError(t, err)
			assert.Len(t, rows, tt.want)
			for _, row := range rows {
				assert.Equal(t, alice.UserID, row.OwnerID)
			}
		})
	}

	total, err := reader.Count(ctx, alice.UserID, models.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	window, err := reader.ListBetween(ctx, alice.UserID, models.KindExpense, day("2025-02-01"), day("2025-03-10"))
	require.NoError(t, err)
	assert.Len(t, window, 2, "both bounds are inclusive")

	page, err := reader.ListPage(ctx, alice.UserID, models.KindExpense, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "2025-03-10", page[0].DateString())

	// bob cannot touch alice's rows
	deleted, err := writer.Delete(ctx, bob.UserID, models.KindExpense, page[0].TransactionID)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	income, err := reader.ListAll(ctx, alice.UserID, models.KindIncome)
	require.NoError(t, err)
	assert.Empty(t, income)
}

func TestIntegration_CategoriesSeeded(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewCategoryReadRepository(db)
	expense, err := repo.ListByKind(context.Background(), models.KindExpense)
	require.NoError(t, err)
	assert.NotEmpty(t, expense)

	income, err := repo.ListByKind(context.Background(), models.KindIncome)
	require.NoError(t, err)
	assert.NotEmpty(t, income)
}
