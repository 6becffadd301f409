package services

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
)

// AuthSvcFacade defines registration, verification and credential checks.
type AuthSvcFacade interface {
	// Register creates a new unverified user-role account. The returned
	// account carries the lowercased email that the caller must record as
	// pending verification.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)

	// VerifyEmail marks the account with the given email as verified.
	// Simulated verification: no token or code is checked.
	VerifyEmail(ctx context.Context, email string) (*domain.Account, error)

	// Authenticate returns the account iff email (lowercased, exact match),
	// password (exact string equality) and verified=true all hold. Every
	// failure mode returns apperrors.ErrUnauthorized so callers cannot
	// distinguish bad credentials from an unverified account.
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)
}
