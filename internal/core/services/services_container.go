package services

import (
	portsrepo "github.com/SscSPs/ipt_portal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ipt_portal_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:       NewAuthService(repos.AccountRepo),
		Account:    NewAccountService(repos.AccountRepo),
		Department: NewDepartmentService(repos.DepartmentRepo),
		Employee:   NewEmployeeService(repos.EmployeeRepo),
		Request:    NewRequestService(repos.RequestRepo),
	}
}

// Compile-time checks that the implementations satisfy the facades.
var (
	_ portssvc.AuthSvcFacade       = (*AuthService)(nil)
	_ portssvc.AccountSvcFacade    = (*AccountService)(nil)
	_ portssvc.DepartmentSvcFacade = (*DepartmentService)(nil)
	_ portssvc.EmployeeSvcFacade   = (*EmployeeService)(nil)
	_ portssvc.RequestSvcFacade    = (*RequestService)(nil)
)
