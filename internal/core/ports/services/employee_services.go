package services

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
)

// EmployeeSvcFacade defines CRUD operations for employee records.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, email string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, email string) error
}
