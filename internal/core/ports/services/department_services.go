package services

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
)

// DepartmentSvcFacade defines CRUD operations for departments.
type DepartmentSvcFacade interface {
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// UpdateDepartment renames the department stored under name. Employee
	// records referencing the old name are left untouched.
	UpdateDepartment(ctx context.Context, name string, req dto.UpdateDepartmentRequest) (*domain.Department, error)

	DeleteDepartment(ctx context.Context, name string) error
}
