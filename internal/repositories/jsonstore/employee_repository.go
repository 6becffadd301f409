package jsonstore

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/apperrors"
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// EmployeeRepository implements the employee port against the document store.
type EmployeeRepository struct {
	store *Store
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	var found *domain.Employee
	r.store.view(func(doc *domain.Document) {
		for i := range doc.Employees {
			if doc.Employees[i].Email == email {
				employee := doc.Employees[i]
				found = &employee
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *EmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	r.store.view(func(doc *domain.Document) {
		employees = append([]domain.Employee{}, doc.Employees...)
	})
	return employees, nil
}

func (r *EmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	return r.store.update(func(doc *domain.Document) error {
		doc.Employees = append(doc.Employees, employee)
		return nil
	})
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, email string, employee domain.Employee) error {
	return r.store.update(func(doc *domain.Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].Email == email {
				doc.Employees[i] = employee
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, email string) error {
	return r.store.update(func(doc *domain.Document) error {
		for i := range doc.Employees {
			if doc.Employees[i].Email == email {
				doc.Employees = append(doc.Employees[:i], doc.Employees[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}
