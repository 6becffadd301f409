package repositories

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employees,
// keyed by email.
type EmployeeRepository interface {
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, email string, employee domain.Employee) error
	DeleteEmployee(ctx context.Context, email string) error
}
