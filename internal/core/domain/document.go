package domain

// Document is the aggregate persisted as a single JSON document. It is the
// entire system of record; every mutation rewrites the whole document.
type Document struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// SeedDocument returns the hard-coded initial document installed on first
// run or after a failed load: one verified admin and two departments.
func SeedDocument() *Document {
	return &Document{
		Accounts: []Account{
			{
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "Password123!",
				Verified:  true,
				Role:      RoleAdmin,
			},
		},
		Departments: []Department{
			{Name: "Engineering"},
			{Name: "HR"},
		},
		Employees: []Employee{},
		Requests:  []Request{},
	}
}
