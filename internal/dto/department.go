package dto

import (
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// CreateDepartmentRequest defines the department creation form.
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

// UpdateDepartmentRequest defines the rename form.
type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

// DepartmentResponse is the external representation of a department.
type DepartmentResponse struct {
	Name string `json:"name"`
}

// ListDepartmentsResponse wraps the list of departments.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// ToDepartmentResponse converts a domain.Department to its response DTO.
func ToDepartmentResponse(department *domain.Department) DepartmentResponse {
	return DepartmentResponse{Name: department.Name}
}

// ToListDepartmentsResponse converts a slice of domain.Department to the list DTO.
func ToListDepartmentsResponse(departments []domain.Department) ListDepartmentsResponse {
	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = ToDepartmentResponse(&departments[i])
	}
	return ListDepartmentsResponse{Departments: responses}
}
