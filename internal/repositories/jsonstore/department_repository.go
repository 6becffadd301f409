package jsonstore

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/apperrors"
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
)

// DepartmentRepository implements the department port against the document store.
type DepartmentRepository struct {
	store *Store
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(store *Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

func (r *DepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	var found *domain.Department
	r.store.view(func(doc *domain.Document) {
		for i := range doc.Departments {
			if doc.Departments[i].Name == name {
				department := doc.Departments[i]
				found = &department
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *DepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	r.store.view(func(doc *domain.Document) {
		departments = append([]domain.Department{}, doc.Departments...)
	})
	return departments, nil
}

func (r *DepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	return r.store.update(func(doc *domain.Document) error {
		doc.Departments = append(doc.Departments, department)
		return nil
	})
}

func (r *DepartmentRepository) UpdateDepartment(ctx context.Context, name string, department domain.Department) error {
	return r.store.update(func(doc *domain.Document) error {
		for i := range doc.Departments {
			if doc.Departments[i].Name == name {
				doc.Departments[i] = department
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, name string) error {
	return r.store.update(func(doc *domain.Document) error {
		for i := range doc.Departments {
			if doc.Departments[i].Name == name {
				doc.Departments = append(doc.Departments[:i], doc.Departments[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}
