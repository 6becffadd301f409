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

// EmployeeService implements CRUD over employee records.
type EmployeeService struct {
	employeeRepo portsrepo.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := strings.TrimSpace(req.Role)
	department := strings.TrimSpace(req.Department)

	if email == "" || role == "" || department == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperrors.ErrValidation)
	}
	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	employee := domain.Employee{
		Email:      email,
		Role:       role,
		Department: department,
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	return &employee, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, email string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee for update: %w", err)
	}

	if req.Email != nil {
		newEmail := strings.ToLower(strings.TrimSpace(*req.Email))
		if newEmail == "" {
			return nil, fmt.Errorf("%w: email must not be empty", apperrors.ErrValidation)
		}
		if newEmail != email {
			if err := s.ensureEmailFree(ctx, newEmail); err != nil {
				return nil, err
			}
		}
		employee.Email = newEmail
	}
	if req.Role != nil {
		employee.Role = strings.TrimSpace(*req.Role)
	}
	if req.Department != nil {
		employee.Department = strings.TrimSpace(*req.Department)
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, email, *employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.employeeRepo.DeleteEmployee(ctx, email); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.employeeRepo.FindEmployeeByEmail(ctx, email)
	if err == nil {
		return fmt.Errorf("%w: employee already exists", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check existing employee: %w", err)
	}
	return nil
}
