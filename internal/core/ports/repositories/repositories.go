package repositories

// RepositoryProvider bundles all repository implementations so they can be
// passed around as a unit when constructing the service container.
type RepositoryProvider struct {
	AccountRepo    AccountRepository
	DepartmentRepo DepartmentRepository
	EmployeeRepo   EmployeeRepository
	RequestRepo    RequestRepository
}
