package services

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// PageSize is the number of rows shown per ledger page.
const PageSize = 10

// SummaryWindowDays is the length of the category summary window.
const SummaryWindowDays = 180

var (
	ErrAmountRequired      = errors.New("amount is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidDate         = errors.New("date is invalid")
	ErrInvalidCategory     = errors.New("category is not in the list")
	ErrTransactionNotFound = errors.New("transaction not found")
)

var maxAmount = decimal.New(1, 10) // NUMERIC(12,2)

// TransactionReader defines read operations over one user's ledger.
type TransactionReader interface {
	Search(ctx context.Context, ownerID uuid.UUID, kind models.Kind, text string) ([]models.TransactionDB, error)
	ListPage(ctx context.Context, ownerID uuid.UUID, kind models.Kind, limit, offset int) ([]models.TransactionDB, error)
	ListAll(ctx context.Context, ownerID uuid.UUID, kind models.Kind) ([]models.TransactionDB, error)
	ListBetween(ctx context.Context, ownerID uuid.UUID, kind models.Kind, from, to time.Time) ([]models.TransactionDB, error)
	Count(ctx context.Context, ownerID uuid.UUID, kind models.Kind) (int, error)
	Get(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64) (*models.TransactionDB, error)
}

// TransactionWriter defines owner-scoped mutations.
type TransactionWriter interface {
	Create(ctx context.Context, ownerID uuid.UUID, kind models.Kind, in models.TransactionInput) (*models.TransactionDB, error)
	Update(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64, in models.TransactionInput) (*models.TransactionDB, error)
	Delete(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64) (*models.TransactionDB, error)
}

// CategoryReader lists the lookup values of a ledger.
type CategoryReader interface {
	ListByKind(ctx context.Context, kind models.Kind) ([]models.CategoryDB, error)
}

// CategoryCache caches lookup values.
type CategoryCache interface {
	ListByKind(ctx context.Context, kind models.Kind) ([]models.CategoryDB, error)
	SetByKind(ctx context.Context, kind models.Kind, categories []models.CategoryDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService handles ledger queries and mutations and publishes ledger events.
type LedgerService struct {
	reader      TransactionReader
	writer      TransactionWriter
	categories  CategoryReader
	cache       CategoryCache
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewLedgerService creates a new LedgerService. kafkaWriter may be nil.
func NewLedgerService(
	reader TransactionReader,
	writer TransactionWriter,
	categories CategoryReader,
	cache CategoryCache,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		reader:      reader,
		writer:      writer,
		categories:  categories,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Page returns one page of the ledger, newest first.
// Pages below 1 show the first page, pages past the end show the last.
func (s *LedgerService) Page(ctx context.Context, ownerID uuid.UUID, kind models.Kind, page int) (*models.TransactionPage, error) {
	total, err := s.reader.Count(ctx, ownerID, kind)
	if err != nil {
		logger.Log.Errorw("failed to count transactions", "user_id", ownerID, "kind", kind, "error", err)
		return nil, err
	}

	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	items, err := s.reader.ListPage(ctx, ownerID, kind, PageSize, (page-1)*PageSize)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "user_id", ownerID, "kind", kind, "error", err)
		return nil, err
	}

	return &models.TransactionPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// Get returns one owned transaction.
func (s *LedgerService) Get(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64) (*models.TransactionDB, error) {
	txn, err := s.reader.Get(ctx, ownerID, kind, id)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "user_id", ownerID, "id", id, "error", err)
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}

// Create validates the form and stores a new transaction.
func (s *LedgerService) Create(ctx context.Context, ownerID uuid.UUID, kind models.Kind, form models.TransactionForm) (*models.TransactionDB, error) {
	in, err := s.parseForm(ctx, kind, form)
	if err != nil {
		return nil, err
	}

	txn, err := s.writer.Create(ctx, ownerID, kind, in)
	if err != nil {
		logger.Log.Errorw("failed to create transaction", "user_id", ownerID, "kind", kind, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, txn, models.OperationCreate)
	return txn, nil
}

// Update validates the form and replaces an owned transaction.
func (s *LedgerService) Update(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64, form models.TransactionForm) (*models.TransactionDB, error) {
	in, err := s.parseForm(ctx, kind, form)
	if err != nil {
		return nil, err
	}

	txn, err := s.writer.Update(ctx, ownerID, kind, id, in)
	if err != nil {
		logger.Log.Errorw("failed to update transaction", "user_id", ownerID, "id", id, "error", err)
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}

	s.publishEvent(ctx, txn, models.OperationUpdate)
	return txn, nil
}

// Delete removes an owned transaction.
func (s *LedgerService) Delete(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64) error {
	txn, err := s.writer.Delete(ctx, ownerID, kind, id)
	if err != nil {
		logger.Log.Errorw("failed to delete transaction", "user_id", ownerID, "id", id, "error", err)
		return err
	}
	if txn == nil {
		return ErrTransactionNotFound
	}

	s.publishEvent(ctx, txn, models.OperationDelete)
	return nil
}

// Search returns the owned rows matching text. Empty text matches every row.
func (s *LedgerService) Search(ctx context.Context, ownerID uuid.UUID, kind models.Kind, text string) ([]models.TransactionDB, error) {
	rows, err := s.reader.Search(ctx, ownerID, kind, text)
	if err != nil {
		logger.Log.Errorw("failed to search transactions", "user_id", ownerID, "kind", kind, "error", err)
		return nil, err
	}
	return rows, nil
}

// CategorySummary sums amounts per category over the last SummaryWindowDays days, today included.
func (s *LedgerService) CategorySummary(ctx context.Context, ownerID uuid.UUID, kind models.Kind) (map[string]decimal.Decimal, error) {
	from, to := SummaryWindow(s.now())

	rows, err := s.reader.ListBetween(ctx, ownerID, kind, from, to)
	if err != nil {
		logger.Log.Errorw("failed to list transactions for summary", "user_id", ownerID, "kind", kind, "error", err)
		return nil, err
	}

	return SumByCategory(rows), nil
}

// Categories returns the lookup list of a ledger, served from cache when possible.
func (s *LedgerService) Categories(ctx context.Context, kind models.Kind) ([]models.CategoryDB, error) {
	if s.cache != nil {
		if cached, err := s.cache.ListByKind(ctx, kind); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categories.ListByKind(ctx, kind)
	if err != nil {
		logger.Log.Errorw("failed to list categories", "kind", kind, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetByKind(ctx, kind, categories); err != nil {
			logger.Log.Errorw("failed to cache categories", "kind", kind, "error", err)
		}
	}

	return categories, nil
}

// SummaryWindow returns the inclusive date range ending on the calendar day of now.
func SummaryWindow(now time.Time) (from, to time.Time) {
	y, m, d := now.Date()
	to = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	from = to.AddDate(0, 0, -SummaryWindowDays)
	return from, to
}

// SumByCategory totals amounts per category. Categories without rows are absent.
func SumByCategory(rows []models.TransactionDB) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, row := range rows {
		sums[row.Category] = sums[row.Category].Add(row.Amount)
	}
	return sums
}

// Total sums the amounts of rows.
func Total(rows []models.TransactionDB) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total
}

func (s *LedgerService) parseForm(ctx context.Context, kind models.Kind, form models.TransactionForm) (models.TransactionInput, error) {
	amountText := strings.TrimSpace(form.Amount)
	if amountText == "" {
		return models.TransactionInput{}, ErrAmountRequired
	}

	description := strings.TrimSpace(form.Description)
	if description == "" {
		return models.TransactionInput{}, ErrDescriptionRequired
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil || !amount.IsPositive() || amount.GreaterThanOrEqual(maxAmount) {
		return models.TransactionInput{}, ErrInvalidAmount
	}
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return models.TransactionInput{}, ErrInvalidAmount
	}

	date := s.now()
	if text := strings.TrimSpace(form.Date); text != "" {
		date, err = time.Parse(models.DateLayout, text)
		if err != nil {
			return models.TransactionInput{}, ErrInvalidDate
		}
	}

	categories, err := s.Categories(ctx, kind)
	if err != nil {
		return models.TransactionInput{}, err
	}
	if !containsCategory(categories, form.Category) {
		return models.TransactionInput{}, ErrInvalidCategory
	}

	return models.TransactionInput{
		Amount:      amount,
		Date:        date,
		Description: description,
		Category:    form.Category,
	}, nil
}

func containsCategory(categories []models.CategoryDB, name string) bool {
	for _, c := range categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// publishEvent publishes a ledger event to Kafka. Failures are logged only.
func (s *LedgerService) publishEvent(ctx context.Context, txn *models.TransactionDB, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.LedgerEvent{
		EventID:       uuid.NewString(),
		Timestamp:     s.now().Unix(),
		UserID:        txn.OwnerID.String(),
		TransactionID: txn.TransactionID,
		Kind:          txn.Kind,
		Operation:     operation,
		Amount:        txn.AmountString(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(txn.TransactionID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Ledger event published to Kafka", "transaction_id", txn.TransactionID, "operation", operation)
	}
}
