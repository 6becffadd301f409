package dto

import (
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// RequestItemInput is a single line item of a submission. Invalid lines
// (empty name or qty <= 0) are dropped rather than rejected, matching the
// submission semantics; the request fails only if nothing valid remains.
type RequestItemInput struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
}

// SubmitRequestRequest defines the item-request submission form.
type SubmitRequestRequest struct {
	Type  string             `json:"type"`
	Items []RequestItemInput `json:"items"`
}

// UpdateRequestStatusRequest carries an approve/reject decision.
type UpdateRequestStatusRequest struct {
	Status domain.RequestStatus `json:"status" binding:"required"`
}

// RequestItemResponse mirrors a stored line item.
type RequestItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
}

// RequestResponse is the external representation of a request.
type RequestResponse struct {
	RequestID     string                `json:"requestID"`
	Type          string                `json:"type"`
	Items         []RequestItemResponse `json:"items"`
	Status        domain.RequestStatus  `json:"status"`
	Date          string                `json:"date"`
	EmployeeEmail string                `json:"employeeEmail"`
}

// ListRequestsResponse wraps the list of requests.
type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}

// ToRequestResponse converts a domain.Request to its response DTO.
func ToRequestResponse(request *domain.Request) RequestResponse {
	items := make([]RequestItemResponse, len(request.Items))
	for i, item := range request.Items {
		items[i] = RequestItemResponse{Name: item.Name, Quantity: item.Quantity}
	}
	return RequestResponse{
		RequestID:     request.RequestID,
		Type:          request.Type,
		Items:         items,
		Status:        request.Status,
		Date:          request.Date,
		EmployeeEmail: request.EmployeeEmail,
	}
}

// ToListRequestsResponse converts a slice of domain.Request to the list DTO.
func ToListRequestsResponse(requests []domain.Request) ListRequestsResponse {
	responses := make([]RequestResponse, len(requests))
	for i := range requests {
		responses[i] = ToRequestResponse(&requests[i])
	}
	return ListRequestsResponse{Requests: responses}
}
