package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes the two ledgers a user keeps.
type Kind string

// Supported ledger kinds
const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Valid reports whether k is a known ledger kind.
func (k Kind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// Title returns the plural display name used in pages and export filenames.
func (k Kind) Title() string {
	if k == KindIncome {
		return "Income"
	}
	return "Expenses"
}

// Path returns the URL prefix of the ledger, without slashes.
func (k Kind) Path() string {
	if k == KindIncome {
		return "income"
	}
	return "expenses"
}

// CategoryLabel names the lookup column of the ledger.
func (k Kind) CategoryLabel() string {
	if k == KindIncome {
		return "Source"
	}
	return "Category"
}

// TransactionDB represents an expense or income row in the database
type TransactionDB struct {
	TransactionID int64           `json:"id" db:"transaction_id"`       // Primary key
	OwnerID       uuid.UUID       `json:"owner" db:"owner_id"`          // Owning user
	Kind          Kind            `json:"kind" db:"kind"`               // expense or income
	Amount        decimal.Decimal `json:"amount" db:"amount"`           // Positive amount, two decimals
	Date          time.Time       `json:"date" db:"date"`               // Calendar date of the transaction
	Description   string          `json:"description" db:"description"` // Free text
	Category      string          `json:"category" db:"category"`       // Expense category or income source
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// DateString formats the transaction date the way it is stored.
func (t TransactionDB) DateString() string {
	return t.Date.Format(DateLayout)
}

// AmountString formats the amount with two decimals.
func (t TransactionDB) AmountString() string {
	return t.Amount.StringFixed(2)
}

// DateLayout is the textual form of a transaction date.
const DateLayout = "2006-01-02"

// TransactionInput carries the user-editable fields of a transaction.
type TransactionInput struct {
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Category    string
}

// TransactionPage is one page of a ledger listing.
type TransactionPage struct {
	Items      []TransactionDB
	Page       int
	TotalPages int
	Total      int
}

// HasPrevious reports whether a previous page exists.
func (p TransactionPage) HasPrevious() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p TransactionPage) HasNext() bool { return p.Page < p.TotalPages }

// TransactionForm is the raw form input of the add and edit pages.
type TransactionForm struct {
	Amount      string
	Description string
	Date        string
	Category    string
}
