package repositories

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// DepartmentRepository defines persistence operations for departments,
// keyed by name.
type DepartmentRepository interface {
	FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	SaveDepartment(ctx context.Context, department domain.Department) error
	UpdateDepartment(ctx context.Context, name string, department domain.Department) error
	DeleteDepartment(ctx context.Context, name string) error
}
