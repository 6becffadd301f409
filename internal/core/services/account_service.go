package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/ipt_portal_app/internal/apperrors"
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ipt_portal_app/internal/core/ports/repositories"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
)

// AccountService implements admin CRUD over accounts.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if firstName == "" || lastName == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperrors.ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: role must be admin or user", apperrors.ErrValidation)
	}

	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	account := domain.Account{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  req.Password,
		Verified:  req.Verified,
		Role:      role,
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return &account, nil
}

// UpdateAccount overwrites the editable fields. Unlike the historical
// behavior, a changed email is re-checked for uniqueness before saving.
func (s *AccountService) UpdateAccount(ctx context.Context, email string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for update: %w", err)
	}

	if req.FirstName != nil {
		account.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		account.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		newEmail := strings.ToLower(strings.TrimSpace(*req.Email))
		if newEmail == "" {
			return nil, fmt.Errorf("%w: email must not be empty", apperrors.ErrValidation)
		}
		if newEmail != email {
			if err := s.ensureEmailFree(ctx, newEmail); err != nil {
				return nil, err
			}
		}
		account.Email = newEmail
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, fmt.Errorf("%w: role must be admin or user", apperrors.ErrValidation)
		}
		account.Role = *req.Role
	}
	if req.Verified != nil {
		account.Verified = *req.Verified
	}

	if err := s.accountRepo.UpdateAccount(ctx, email, *account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *AccountService) ResetPassword(ctx context.Context, email string, newPassword string) error {
	newPassword = strings.TrimSpace(newPassword)
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to find account for password reset: %w", err)
	}

	account.Password = newPassword
	if err := s.accountRepo.UpdateAccount(ctx, email, *account); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, email string, requestingEmail string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == strings.ToLower(strings.TrimSpace(requestingEmail)) {
		return fmt.Errorf("%w: cannot delete your own account", apperrors.ErrForbidden)
	}
	if err := s.accountRepo.DeleteAccount(ctx, email); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (s *AccountService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err == nil {
		return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check existing account: %w", err)
	}
	return nil
}
