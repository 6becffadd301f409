package repositories

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// RequestRepository defines persistence operations for item requests,
// keyed by request ID.
type RequestRepository interface {
	FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error)

	// ListRequests returns all requests in document order.
	ListRequests(ctx context.Context) ([]domain.Request, error)

	// ListRequestsByOwner returns the requests whose employeeEmail matches.
	ListRequestsByOwner(ctx context.Context, email string) ([]domain.Request, error)

	// SaveRequest appends a new request and persists the document.
	SaveRequest(ctx context.Context, request domain.Request) error

	// UpdateRequest replaces the request with the same ID and persists the
	// document.
	UpdateRequest(ctx context.Context, request domain.Request) error
}
