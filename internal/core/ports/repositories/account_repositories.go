package repositories

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
// Emails are the unique key and are expected to be lowercased by callers.
type AccountRepository interface {
	// FindAccountByEmail retrieves an account by its exact (lowercased)
	// email. Returns apperrors.ErrNotFound if no account matches.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// ListAccounts returns all accounts in document order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// SaveAccount appends a new account and persists the document.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount replaces the account currently stored under email and
	// persists the document. The replacement may carry a different email.
	UpdateAccount(ctx context.Context, email string, account domain.Account) error

	// DeleteAccount removes the account stored under email and persists
	// the document.
	DeleteAccount(ctx context.Context, email string) error
}
