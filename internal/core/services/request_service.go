package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ipt_portal_app/internal/apperrors"
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ipt_portal_app/internal/core/ports/repositories"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
	"github.com/google/uuid"
)

// requestDateFormat mimics the locale display string the stored documents
// carry for request dates.
const requestDateFormat = "1/2/2006, 3:04:05 PM"

// RequestService implements item-request submission and status transitions.
type RequestService struct {
	requestRepo portsrepo.RequestRepository
	now         func() time.Time
}

// NewRequestService creates a new RequestService.
func NewRequestService(requestRepo portsrepo.RequestRepository) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		now:         time.Now,
	}
}

func (s *RequestService) SubmitRequest(ctx context.Context, req dto.SubmitRequestRequest, submitter domain.Account) (*domain.Request, error) {
	if submitter.Role != domain.RoleUser {
		return nil, fmt.Errorf("%w: only user accounts submit requests", apperrors.ErrForbidden)
	}

	// Invalid lines are dropped, not rejected; the submission fails only
	// when nothing valid remains.
	items := make([]domain.RequestItem, 0, len(req.Items))
	for _, item := range req.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.Quantity <= 0 {
			continue
		}
		items = append(items, domain.RequestItem{Name: name, Quantity: item.Quantity})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item with a name and positive quantity is required", apperrors.ErrValidation)
	}

	request := domain.Request{
		RequestID:     uuid.NewString(),
		Type:          strings.TrimSpace(req.Type),
		Items:         items,
		Status:        domain.RequestPending,
		Date:          s.now().Format(requestDateFormat),
		EmployeeEmail: submitter.Email,
	}
	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	return &request, nil
}

func (s *RequestService) ListRequestsForOwner(ctx context.Context, email string) ([]domain.Request, error) {
	requests, err := s.requestRepo.ListRequestsByOwner(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to list requests by owner: %w", err)
	}
	return requests, nil
}

func (s *RequestService) ListAllRequests(ctx context.Context) ([]domain.Request, error) {
	requests, err := s.requestRepo.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// UpdateRequestStatus applies the approve/reject state machine: Pending may
// move to Approved or Rejected, both of which are terminal.
func (s *RequestService) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus) (*domain.Request, error) {
	if status != domain.RequestApproved && status != domain.RequestRejected {
		return nil, fmt.Errorf("%w: status must be Approved or Rejected", apperrors.ErrValidation)
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to find request for status update: %w", err)
	}
	if !request.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: request is already %s", apperrors.ErrValidation, request.Status)
	}

	request.Status = status
	if err := s.requestRepo.UpdateRequest(ctx, *request); err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}
	return request, nil
}
