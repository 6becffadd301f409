package jsonstore

import (
	portsrepo "github.com/SscSPs/ipt_portal_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the shared document store.
func NewRepositoryProvider(store *Store) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:    NewAccountRepository(store),
		DepartmentRepo: NewDepartmentRepository(store),
		EmployeeRepo:   NewEmployeeRepository(store),
		RequestRepo:    NewRequestRepository(store),
	}
}

// Compile-time checks that the implementations satisfy the ports.
var (
	_ portsrepo.AccountRepository    = (*AccountRepository)(nil)
	_ portsrepo.DepartmentRepository = (*DepartmentRepository)(nil)
	_ portsrepo.EmployeeRepository   = (*EmployeeRepository)(nil)
	_ portsrepo.RequestRepository    = (*RequestRepository)(nil)
)
