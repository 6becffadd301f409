package dto

import (
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// CreateAccountRequest defines the admin account-creation form.
type CreateAccountRequest struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role" binding:"omitempty,accountrole"`
	Verified  bool        `json:"verified"`
}

// UpdateAccountRequest defines the data allowed for editing an account.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateAccountRequest struct {
	FirstName *string      `json:"firstName"`
	LastName  *string      `json:"lastName"`
	Email     *string      `json:"email"`
	Role      *domain.Role `json:"role" binding:"omitempty,accountrole"`
	Verified  *bool        `json:"verified"`
}

// ResetPasswordRequest carries the replacement password.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// AccountResponse is the external representation of an account. The stored
// password never leaves the service.
type AccountResponse struct {
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Verified  bool        `json:"verified"`
	Role      domain.Role `json:"role"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Verified:  account.Verified,
		Role:      account.Role,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: responses}
}
