package models

// CategoryDB represents an expense category or income source lookup row
type CategoryDB struct {
	CategoryID int64  `json:"id" db:"category_id"` // Primary key
	Name       string `json:"name" db:"name"`      // Display name
	Kind       Kind   `json:"kind" db:"kind"`      // Ledger the entry belongs to
}
