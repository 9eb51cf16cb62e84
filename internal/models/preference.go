package models

import "github.com/google/uuid"

// DefaultCurrency is shown when the user never chose a currency.
const DefaultCurrency = "United States Dollar"

// Currencies lists the display labels a user may pick from.
var Currencies = []string{
	"United States Dollar",
	"Euro",
	"British Pound",
	"Japanese Yen",
	"Swiss Franc",
	"Canadian Dollar",
	"Australian Dollar",
	"Russian Ruble",
	"Indian Rupee",
	"Chinese Yuan",
}

// PreferenceDB represents per-user display settings
type PreferenceDB struct {
	UserID   uuid.UUID `json:"user_id" db:"user_id"`   // Owning user
	Currency string    `json:"currency" db:"currency"` // Display label only
}
