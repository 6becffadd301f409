package jsonstore

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/apperrors"
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// AccountRepository implements the account port against the document store.
type AccountRepository struct {
	store *Store
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var found *domain.Account
	r.store.view(func(doc *domain.Document) {
		for i := range doc.Accounts {
			if doc.Accounts[i].Email == email {
				account := doc.Accounts[i]
				found = &account
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	r.store.view(func(doc *domain.Document) {
		accounts = append([]domain.Account{}, doc.Accounts...)
	})
	return accounts, nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return r.store.update(func(doc *domain.Document) error {
		doc.Accounts = append(doc.Accounts, account)
		return nil
	})
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, email string, account domain.Account) error {
	return r.store.update(func(doc *domain.Document) error {
		for i := range doc.Accounts {
			if doc.Accounts[i].Email == email {
				doc.Accounts[i] = account
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, email string) error {
	return r.store.update(func(doc *domain.Document) error {
		for i := range doc.Accounts {
			if doc.Accounts[i].Email == email {
				doc.Accounts = append(doc.Accounts[:i], doc.Accounts[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}
