package services

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
)

// RequestSvcFacade defines operations for item requests.
type RequestSvcFacade interface {
	// SubmitRequest creates a Pending request owned by the submitter.
	// Items with an empty name or non-positive quantity are dropped; an
	// empty remainder fails validation. Only user-role accounts submit.
	SubmitRequest(ctx context.Context, req dto.SubmitRequestRequest, submitter domain.Account) (*domain.Request, error)

	// ListRequestsForOwner returns the requests owned by email.
	ListRequestsForOwner(ctx context.Context, email string) ([]domain.Request, error)

	// ListAllRequests returns every request (admin view).
	ListAllRequests(ctx context.Context) ([]domain.Request, error)

	// UpdateRequestStatus applies an approve/reject transition. Only
	// Pending requests may transition, and only to Approved or Rejected.
	UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus) (*domain.Request, error)
}
