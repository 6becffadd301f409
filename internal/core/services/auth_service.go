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

// AuthService implements registration, simulated email verification and
// credential checks over the account repository.
type AuthService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo portsrepo.AccountRepository) *AuthService {
	return &AuthService{accountRepo: accountRepo}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := req.Password

	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperrors.ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	_, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	account := domain.Account{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Verified:  false,
		Role:      domain.RoleUser,
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save registered account: %w", err)
	}
	return &account, nil
}

// VerifyEmail marks the account as verified. This is a stand-in for a real
// email verification flow: no token or code is checked.
func (s *AuthService) VerifyEmail(ctx context.Context, email string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find account to verify: %w", err)
	}

	account.Verified = true
	if err := s.accountRepo.UpdateAccount(ctx, email, *account); err != nil {
		return nil, fmt.Errorf("failed to mark account verified: %w", err)
	}
	return account, nil
}

// Authenticate deliberately collapses every failure (unknown email, wrong
// password, unverified account) into ErrUnauthorized so the caller can only
// show one generic message.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up account for login: %w", err)
	}
	if account.Password != password || !account.Verified {
		return nil, apperrors.ErrUnauthorized
	}
	return account, nil
}
