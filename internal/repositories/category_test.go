package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryReadRepository_ListByKind(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE kind = $1 ORDER BY name")).
		WithArgs("income").
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "name", "kind"}).
			AddRow(1, "Business", "income").
			AddRow(2, "Salary", "income"))

	categories, err := repo.ListByKind(ctx, models.KindIncome)
	require.NoError(t, err)
	assert.Equal(t, []models.CategoryDB{
		{CategoryID: 1, Name: "Business", Kind: models.KindIncome},
		{CategoryID: 2, Name: "Salary", Kind: models.KindIncome},
	}, categories)

	mock.ExpectQuery("FROM categories").WillReturnError(errors.New("db down"))
	_, err = repo.ListByKind(ctx, models.KindExpense)
	assert.EqualError(t, err, "db down")
}

func TestCategoryCacheRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := NewCategoryCacheRepository(client, time.Minute)
	ctx := context.Background()

	_, err := repo.ListByKind(ctx, models.KindExpense)
	assert.ErrorIs(t, err, ErrCacheMiss)

	want := []models.CategoryDB{{CategoryID: 1, Name: "Food", Kind: models.KindExpense}}
	require.NoError(t, repo.SetByKind(ctx, models.KindExpense, want))

	got, err := repo.ListByKind(ctx, models.KindExpense)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// kinds are cached separately
	_, err = repo.ListByKind(ctx, models.KindIncome)
	assert.ErrorIs(t, err, ErrCacheMiss)

	mr.FastForward(2 * time.Minute)
	_, err = repo.ListByKind(ctx, models.KindExpense)
	assert.ErrorIs(t, err, ErrCacheMiss)

	mr.Set("categories:income", "{broken")
	_, err = repo.ListByKind(ctx, models.KindIncome)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
