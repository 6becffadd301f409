package jsonstore

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/apperrors"
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// RequestRepository implements the request port against the document store.
type RequestRepository struct {
	store *Store
}

// NewRequestRepository creates a new RequestRepository.
func NewRequestRepository(store *Store) *RequestRepository {
	return &RequestRepository{store: store}
}

func (r *RequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	var found *domain.Request
	r.store.view(func(doc *domain.Document) {
		for i := range doc.Requests {
			if doc.Requests[i].RequestID == requestID {
				request := doc.Requests[i]
				request.Items = append([]domain.RequestItem{}, request.Items...)
				found = &request
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *RequestRepository) ListRequests(ctx context.Context) ([]domain.Request, error) {
	return r.listWhere(func(domain.Request) bool { return true }), nil
}

func (r *RequestRepository) ListRequestsByOwner(ctx context.Context, email string) ([]domain.Request, error) {
	return r.listWhere(func(req domain.Request) bool { return req.EmployeeEmail == email }), nil
}

func (r *RequestRepository) listWhere(keep func(domain.Request) bool) []domain.Request {
	requests := []domain.Request{}
	r.store.view(func(doc *domain.Document) {
		for _, req := range doc.Requests {
			if keep(req) {
				req.Items = append([]domain.RequestItem{}, req.Items...)
				requests = append(requests, req)
			}
		}
	})
	return requests
}

func (r *RequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	return r.store.update(func(doc *domain.Document) error {
		doc.Requests = append(doc.Requests, request)
		return nil
	})
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, request domain.Request) error {
	return r.store.update(func(doc *domain.Document) error {
		for i := range doc.Requests {
			if doc.Requests[i].RequestID == request.RequestID {
				doc.Requests[i] = request
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}
