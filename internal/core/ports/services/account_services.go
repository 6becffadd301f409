package services

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// GetAccountByEmail retrieves an account by its lowercased email.
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines admin write operations for account data.
type AccountWriterSvc interface {
	// CreateAccount creates an account with an admin-chosen role and
	// verification state.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount overwrites the editable fields of the account stored
	// under email. A changed email is re-checked for uniqueness.
	UpdateAccount(ctx context.Context, email string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// ResetPassword replaces the account's password.
	ResetPassword(ctx context.Context, email string, newPassword string) error
}

// AccountLifecycleSvc defines operations for removing accounts.
type AccountLifecycleSvc interface {
	// DeleteAccount removes the account stored under email. Deleting the
	// account matching requestingEmail is refused.
	DeleteAccount(ctx context.Context, email string, requestingEmail string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountLifecycleSvc
}
