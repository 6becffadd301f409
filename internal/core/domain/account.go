package domain

// Role defines the authorization role of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account represents a portal account within the core domain.
// Email is the unique key and is always stored lowercased.
// Password is stored as the plaintext string it was created with and
// compared with exact equality; the persisted document format requires it.
type Account struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Verified  bool   `json:"verified"`
	Role      Role   `json:"role"`
}

// FullName returns the display name for the account.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}
