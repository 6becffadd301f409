package domain

// RequestStatus is the lifecycle state of an item request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// CanTransitionTo reports whether a status change is legal. Pending may move
// to Approved or Rejected; both of those are terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s != RequestPending {
		return false
	}
	return next == RequestApproved || next == RequestRejected
}

// RequestItem is a single line item of a request.
// The qty JSON key matches the persisted document format.
type RequestItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"qty"`
}

// Request represents an item request submitted by a user account.
// RequestID is a UUID; documents written before the field existed get IDs
// backfilled at load time. Date is a display string stamped at submission.
type Request struct {
	RequestID     string        `json:"requestID"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        RequestStatus `json:"status"`
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}
