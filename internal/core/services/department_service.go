package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/ipt_portal_app/internal/apperrors"
	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ipt_portal_app/internal/core/ports/repositories"
	"github.com/SscSPs/ipt_portal_app/internal/dto"
)

// DepartmentService implements CRUD over departments.
type DepartmentService struct {
	departmentRepo portsrepo.DepartmentRepository
}

// NewDepartmentService creates a new DepartmentService.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name is required", apperrors.ErrValidation)
	}
	if err := s.ensureNameFree(ctx, name); err != nil {
		return nil, err
	}

	department := domain.Department{Name: name}
	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		return nil, fmt.Errorf("failed to save department: %w", err)
	}
	return &department, nil
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// UpdateDepartment renames a department. Employee records that reference
// the old name keep it; the document format stores the reference by value.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, name string, req dto.UpdateDepartmentRequest) (*domain.Department, error) {
	newName := strings.TrimSpace(req.Name)
	if newName == "" {
		return nil, fmt.Errorf("%w: department name is required", apperrors.ErrValidation)
	}
	if _, err := s.departmentRepo.FindDepartmentByName(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to find department for update: %w", err)
	}
	if newName != name {
		if err := s.ensureNameFree(ctx, newName); err != nil {
			return nil, err
		}
	}

	department := domain.Department{Name: newName}
	if err := s.departmentRepo.UpdateDepartment(ctx, name, department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return &department, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, name string) error {
	if err := s.departmentRepo.DeleteDepartment(ctx, name); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (s *DepartmentService) ensureNameFree(ctx context.Context, name string) error {
	_, err := s.departmentRepo.FindDepartmentByName(ctx, name)
	if err == nil {
		return fmt.Errorf("%w: department already exists", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check existing department: %w", err)
	}
	return nil
}
