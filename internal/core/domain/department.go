package domain

// Department represents an organizational department.
// Name is the unique key.
type Department struct {
	Name string `json:"name"`
}
