package models

// Ledger operations published to the event stream
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// LedgerEvent describes a ledger mutation published to Kafka.
type LedgerEvent struct {
	EventID       string `json:"event_id"`       // Unique identifier of the event
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp (seconds) of the mutation
	UserID        string `json:"user_id"`        // Owner of the transaction
	TransactionID int64  `json:"transaction_id"` // Affected transaction
	Kind          Kind   `json:"kind"`           // expense or income
	Operation     string `json:"operation"`      // create, update or delete
	Amount        string `json:"amount"`         // Amount after the operation
}
