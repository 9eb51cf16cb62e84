package models

// SearchRequest represents the JSON body of a ledger search
// swagger:model SearchRequest
type SearchRequest struct {
	// Text to look for
	// example: lunch
	SearchText string `json:"searchText"`
}

// UsernameRequest represents the JSON body of a username availability check
// swagger:model UsernameRequest
type UsernameRequest struct {
	// example: alice
	Username string `json:"username"`
}

// EmailRequest represents the JSON body of an email availability check
// swagger:model EmailRequest
type EmailRequest struct {
	// example: alice@example.com
	Email string `json:"email"`
}

// ErrorResponse represents a generic JSON error
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Internal server error
	Error string `json:"error"`
}
