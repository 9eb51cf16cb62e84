package services

//go:generate mockgen -source=preference.go -destination=preference_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

var ErrUnknownCurrency = errors.New("currency is not in the list")

// PreferenceStore reads and writes per-user display settings.
type PreferenceStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.PreferenceDB, error)
	Save(ctx context.Context, userID uuid.UUID, currency string) error
}

// PreferenceService manages the display currency label.
type PreferenceService struct {
	store PreferenceStore
}

func NewPreferenceService(store PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// Currency returns the user's currency label, or the default when none was chosen.
func (s *PreferenceService) Currency(ctx context.Context, userID uuid.UUID) (string, error) {
	pref, err := s.store.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get preferences", "user_id", userID, "error", err)
		return "", err
	}
	if pref == nil || pref.Currency == "" {
		return models.DefaultCurrency, nil
	}
	return pref.Currency, nil
}

// SetCurrency stores the user's currency label.
func (s *PreferenceService) SetCurrency(ctx context.Context, userID uuid.UUID, currency string) error {
	known := false
	for _, c := range models.Currencies {
		if c == currency {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownCurrency
	}

	if err := s.store.Save(ctx, userID, currency); err != nil {
		logger.Log.Errorw("failed to save preferences", "user_id", userID, "error", err)
		return err
	}
	return nil
}
