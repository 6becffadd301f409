package services_test

import (
	"context"

	"github.com/SscSPs/ipt_portal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ipt_portal_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, email string, account domain.Account) error {
	args := m.Called(ctx, email, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// --- Mock DepartmentRepository ---

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	args := m.Called(ctx, name)
	var department *domain.Department
	if args.Get(0) != nil {
		department = args.Get(0).(*domain.Department)
	}
	return department, args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	var departments []domain.Department
	if args.Get(0) != nil {
		departments = args.Get(0).([]domain.Department)
	}
	return departments, args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, name string, department domain.Department) error {
	args := m.Called(ctx, name, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, email string, employee domain.Employee) error {
	args := m.Called(ctx, email, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// --- Mock RequestRepository ---

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	args := m.Called(ctx, requestID)
	var request *domain.Request
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.Request)
	}
	return request, args.Error(1)
}

func (m *MockRequestRepository) ListRequests(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	var requests []domain.Request
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.Request)
	}
	return requests, args.Error(1)
}

func (m *MockRequestRepository) ListRequestsByOwner(ctx context.Context, email string) ([]domain.Request, error) {
	args := m.Called(ctx, email)
	var requests []domain.Request
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.Request)
	}
	return requests, args.Error(1)
}

func (m *MockRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateRequest(ctx context.Context, request domain.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// Compile-time checks that the mocks satisfy the ports.
var (
	_ portsrepo.AccountRepository    = (*MockAccountRepository)(nil)
	_ portsrepo.DepartmentRepository = (*MockDepartmentRepository)(nil)
	_ portsrepo.EmployeeRepository   = (*MockEmployeeRepository)(nil)
	_ portsrepo.RequestRepository    = (*MockRequestRepository)(nil)
)
