package domain

// Employee represents an employee record managed by admins.
// Email is the unique key. Role and Department are free-form strings; a
// department reference is not validated against the department collection,
// matching the persisted document semantics.
type Employee struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}
