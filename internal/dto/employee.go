package dto

import (
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// CreateEmployeeRequest defines the admin employee-creation form.
type CreateEmployeeRequest struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// UpdateEmployeeRequest defines the data allowed for editing an employee.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateEmployeeRequest struct {
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
}

// EmployeeResponse is the external representation of an employee.
type EmployeeResponse struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(employee *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		Email:      employee.Email,
		Role:       employee.Role,
		Department: employee.Department,
	}
}

// ToListEmployeesResponse converts a slice of domain.Employee to the list DTO.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: responses}
}
