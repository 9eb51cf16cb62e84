package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerMocks struct {
	reader     *services.MockTransactionReader
	writer     *services.MockTransactionWriter
	categories *services.MockCategoryReader
	cache      *services.MockCategoryCache
	kafka      *services.MockKafkaWriter
}

func newLedgerService(t *testing.T) (*services.LedgerService, ledgerMocks) {
	ctrl := gomock.NewController(t)

	m := ledgerMocks{
		reader:     services.NewMockTransactionReader(ctrl),
		writer:     services.NewMockTransactionWriter(ctrl),
		categories: services.NewMockCategoryReader(ctrl),
		cache:      services.NewMockCategoryCache(ctrl),
		kafka:      services.NewMockKafkaWriter(ctrl),
	}
	return services.NewLedgerService(m.reader, m.writer, m.categories, m.cache, m.kafka), m
}

var foodAndTravel = []models.CategoryDB{
	{CategoryID: 1, Name: "Food", Kind: models.KindExpense},
	{CategoryID: 2, Name: "Travel", Kind: models.KindExpense},
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedgerService_Page(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name       string
		total      int
		requested  int
		wantPage   int
		wantPages  int
		wantOffset int
	}{
		{name: "first page", total: 25, requested: 1, wantPage: 1, wantPages: 3, wantOffset: 0},
		{name: "last page", total: 25, requested: 3, wantPage: 3, wantPages: 3, wantOffset: 20},
		{name: "past the end clamps to last", total: 25, requested: 9, wantPage: 3, wantPages: 3, wantOffset: 20},
		{name: "zero clamps to first", total: 25, requested: 0, wantPage: 1, wantPages: 3, wantOffset: 0},
		{name: "empty ledger has one page", total: 0, requested: 2, wantPage: 1, wantPages: 1, wantOffset: 0},
		{name: "exact multiple", total: 20, requested: 2, wantPage: 2, wantPages: 2, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newLedgerService(t)

			m.reader.EXPECT().Count(gomock.Any(), owner, models.KindExpense).Return(tt.total, nil)
			m.reader.EXPECT().
				ListPage(gomock.Any(), owner, models.KindExpense, services.PageSize, tt.wantOffset).
				Return([]models.TransactionDB{}, nil)

			page, err := svc.Page(context.Background(), owner, models.KindExpense, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.total, page.Total)
		})
	}
}

func TestLedgerService_PageErrors(t *testing.T) {
	owner := uuid.New()

	svc, m := newLedgerService(t)
	m.reader.EXPECT().Count(gomock.Any(), owner, models.KindIncome).Return(0, errors.New("db error"))
	_, err := svc.Page(context.Background(), owner, models.KindIncome, 1)
	assert.EqualError(t, err, "db error")

	svc, m = newLedgerService(t)
	m.reader.EXPECT().Count(gomock.Any(), owner, models.KindIncome).Return(3, nil)
	m.reader.EXPECT().ListPage(gomock.Any(), owner, models.KindIncome, services.PageSize, 0).Return(nil, errors.New("db error"))
	_, err = svc.Page(context.Background(), owner, models.KindIncome, 1)
	assert.EqualError(t, err, "db error")
}

func TestLedgerService_Create(t *testing.T) {
	owner := uuid.New()
	created := &models.TransactionDB{TransactionID: 42, OwnerID: owner, Kind: models.KindExpense, Amount: dec("12.50"), Category: "Food"}

	t.Run("stores and publishes", func(t *testing.T) {
		svc, m := newLedgerService(t)

		m.cache.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(foodAndTravel, nil)
		m.writer.EXPECT().
			Create(gomock.Any(), owner, models.KindExpense, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Kind, in models.TransactionInput) (*models.TransactionDB, error) {
				assert.True(t, dec("12.5").Equal(in.Amount))
				assert.Equal(t, "2025-03-10", in.Date.Format(models.DateLayout))
				assert.Equal(t, "lunch", in.Description)
				assert.Equal(t, "Food", in.Category)
				return created, nil
			})
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "42", string(msgs[0].Key))

			var event models.LedgerEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.OperationCreate, event.Operation)
			assert.Equal(t, owner.String(), event.UserID)
			assert.Equal(t, "12.50", event.Amount)
			assert.Equal(t, models.KindExpense, event.Kind)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

		txn, err := svc.Create(context.Background(), owner, models.KindExpense, models.TransactionForm{
			Amount: " 12.50 ", Description: " lunch ", Date: "2025-03-10", Category: "Food",
		})
		require.NoError(t, err)
		assert.Equal(t, created, txn)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc, m := newLedgerService(t)

		m.cache.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(foodAndTravel, nil)
		m.writer.EXPECT().Create(gomock.Any(), owner, models.KindExpense, gomock.Any()).Return(created, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := svc.Create(context.Background(), owner, models.KindExpense, models.TransactionForm{
			Amount: "12.50", Description: "lunch", Category: "Food",
		})
		assert.NoError(t, err)
	})

	t.Run("without kafka", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockTransactionReader(ctrl)
		writer := services.NewMockTransactionWriter(ctrl)
		categories := services.NewMockCategoryReader(ctrl)
		svc := services.NewLedgerService(reader, writer, categories, nil, nil)

		categories.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(foodAndTravel, nil)
		writer.EXPECT().Create(gomock.Any(), owner, models.KindExpense, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Kind, in models.TransactionInput) (*models.TransactionDB, error) {
				assert.False(t, in.Date.IsZero(), "blank date defaults to today")
				return created, nil
			})

		_, err := svc.Create(context.Background(), owner, models.KindExpense, models.TransactionForm{
			Amount: "12.50", Description: "lunch", Category: "Food",
		})
		assert.NoError(t, err)
	})
}

func TestLedgerService_CreateValidation(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name       string
		form       models.TransactionForm
		categories bool
		wantErr    error
	}{
		{name: "missing amount", form: models.TransactionForm{Description: "x", Category: "Food"}, wantErr: services.ErrAmountRequired},
		{name: "missing description", form: models.TransactionForm{Amount: "1", Description: "  ", Category: "Food"}, wantErr: services.ErrDescriptionRequired},
		{name: "amount before description", form: models.TransactionForm{Category: "Food"}, wantErr: services.ErrAmountRequired},
		{name: "not a number", form: models.TransactionForm{Amount: "abc", Description: "x", Category: "Food"}, wantErr: services.ErrInvalidAmount},
		{name: "negative", form: models.TransactionForm{Amount: "-5", Description: "x", Category: "Food"}, wantErr: services.ErrInvalidAmount},
		{name: "zero", form: models.TransactionForm{Amount: "0", Description: "x", Category: "Food"}, wantErr: services.ErrInvalidAmount},
		{name: "rounds to zero", form: models.TransactionForm{Amount: "0.001", Description: "x", Category: "Food"}, wantErr: services.ErrInvalidAmount},
		{name: "too large", form: models.TransactionForm{Amount: "10000000000", Description: "x", Category: "Food"}, wantErr: services.ErrInvalidAmount},
		{name: "bad date", form: models.TransactionForm{Amount: "1", Description: "x", Date: "10/03/2025", Category: "Food"}, wantErr: services.ErrInvalidDate},
		{name: "unknown category", form: models.TransactionForm{Amount: "1", Description: "x", Category: "Yachts"}, categories: true, wantErr: services.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newLedgerService(t)
			if tt.categories {
				m.cache.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(foodAndTravel, nil)
			}

			txn, err := svc.Create(context.Background(), owner, models.KindExpense, tt.form)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, txn)
		})
	}
}

func TestLedgerService_UpdateAndDelete(t *testing.T) {
	owner := uuid.New()
	form := models.TransactionForm{Amount: "3", Description: "bus", Date: "2025-01-02", Category: "Travel"}
	updated := &models.TransactionDB{TransactionID: 7, OwnerID: owner, Kind: models.KindExpense, Amount: dec("3")}

	t.Run("update publishes", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.cache.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(foodAndTravel, nil)
		m.writer.EXPECT().Update(gomock.Any(), owner, models.KindExpense, int64(7), gomock.Any()).Return(updated, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		txn, err := svc.Update(context.Background(), owner, models.KindExpense, 7, form)
		require.NoError(t, err)
		assert.Equal(t, updated, txn)
	})

	t.Run("update of foreign row", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.cache.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(foodAndTravel, nil)
		m.writer.EXPECT().Update(gomock.Any(), owner, models.KindExpense, int64(8), gomock.Any()).Return(nil, nil)

		_, err := svc.Update(context.Background(), owner, models.KindExpense, 8, form)
		assert.ErrorIs(t, err, services.ErrTransactionNotFound)
	})

	t.Run("delete publishes", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.writer.EXPECT().Delete(gomock.Any(), owner, models.KindExpense, int64(7)).Return(updated, nil)
		m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			var event models.LedgerEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, models.OperationDelete, event.Operation)
			return nil
		})

		assert.NoError(t, svc.Delete(context.Background(), owner, models.KindExpense, 7))
	})

	t.Run("delete of foreign row", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.writer.EXPECT().Delete(gomock.Any(), owner, models.KindExpense, int64(8)).Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), owner, models.KindExpense, 8), services.ErrTransactionNotFound)
	})

	t.Run("delete error", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.writer.EXPECT().Delete(gomock.Any(), owner, models.KindExpense, int64(7)).Return(nil, errors.New("db error"))

		assert.EqualError(t, svc.Delete(context.Background(), owner, models.KindExpense, 7), "db error")
	})
}

func TestLedgerService_Get(t *testing.T) {
	owner := uuid.New()
	svc, m := newLedgerService(t)

	row := &models.TransactionDB{TransactionID: 1}
	m.reader.EXPECT().Get(gomock.Any(), owner, models.KindIncome, int64(1)).Return(row, nil)
	m.reader.EXPECT().Get(gomock.Any(), owner, models.KindIncome, int64(2)).Return(nil, nil)

	got, err := svc.Get(context.Background(), owner, models.KindIncome, 1)
	require.NoError(t, err)
	assert.Equal(t, row, got)

	_, err = svc.Get(context.Background(), owner, models.KindIncome, 2)
	assert.ErrorIs(t, err, services.ErrTransactionNotFound)
}

func TestLedgerService_Search(t *testing.T) {
	owner := uuid.New()
	svc, m := newLedgerService(t)

	rows := []models.TransactionDB{{TransactionID: 1, OwnerID: owner}}
	m.reader.EXPECT().Search(gomock.Any(), owner, models.KindExpense, "lun").Return(rows, nil)
	m.reader.EXPECT().Search(gomock.Any(), owner, models.KindExpense, "x").Return(nil, errors.New("db error"))

	got, err := svc.Search(context.Background(), owner, models.KindExpense, "lun")
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	_, err = svc.Search(context.Background(), owner, models.KindExpense, "x")
	assert.Error(t, err)
}

func TestLedgerService_CategorySummary(t *testing.T) {
	owner := uuid.New()
	svc, m := newLedgerService(t)

	m.reader.EXPECT().
		ListBetween(gomock.Any(), owner, models.KindExpense, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Kind, from, to time.Time) ([]models.TransactionDB, error) {
			assert.Equal(t, services.SummaryWindowDays*24*time.Hour, to.Sub(from))
			return []models.TransactionDB{
				{Category: "Food", Amount: dec("12.50")},
				{Category: "Travel", Amount: dec("100")},
				{Category: "Food", Amount: dec("7.25")},
			}, nil
		})

	summary, err := svc.CategorySummary(context.Background(), owner, models.KindExpense)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	assert.True(t, dec("19.75").Equal(summary["Food"]))
	assert.True(t, dec("100").Equal(summary["Travel"]))
}

func TestSummaryWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	from, to := services.SummaryWindow(now)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), to)
	assert.Equal(t, time.Date(2024, 9, 11, 0, 0, 0, 0, time.UTC), from)
}

func TestSumByCategory(t *testing.T) {
	assert.Empty(t, services.SumByCategory(nil))

	sums := services.SumByCategory([]models.TransactionDB{
		{Category: "Salary", Amount: dec("1000")},
		{Category: "Gifts", Amount: dec("0.10")},
		{Category: "Gifts", Amount: dec("0.20")},
	})
	assert.True(t, dec("0.30").Equal(sums["Gifts"]))
	assert.True(t, dec("1000").Equal(sums["Salary"]))
	assert.True(t, dec("1000.30").Equal(services.Total([]models.TransactionDB{
		{Amount: dec("1000")}, {Amount: dec("0.10")}, {Amount: dec("0.20")},
	})))
}

func TestLedgerService_Categories(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.cache.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(foodAndTravel, nil)

		got, err := svc.Categories(context.Background(), models.KindExpense)
		require.NoError(t, err)
		assert.Equal(t, foodAndTravel, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.cache.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(nil, repositories.ErrCacheMiss)
		m.categories.EXPECT().ListByKind(gomock.Any(), models.KindExpense).Return(foodAndTravel, nil)
		m.cache.EXPECT().SetByKind(gomock.Any(), models.KindExpense, foodAndTravel).Return(errors.New("redis down"))

		got, err := svc.Categories(context.Background(), models.KindExpense)
		require.NoError(t, err)
		assert.Equal(t, foodAndTravel, got)
	})

	t.Run("database error", func(t *testing.T) {
		svc, m := newLedgerService(t)
		m.cache.EXPECT().ListByKind(gomock.Any(), models.KindIncome).Return(nil, repositories.ErrCacheMiss)
		m.categories.EXPECT().ListByKind(gomock.Any(), models.KindIncome).Return(nil, errors.New("db error"))

		_, err := svc.Categories(context.Background(), models.KindIncome)
		assert.EqualError(t, err, "db error")
	})
}
