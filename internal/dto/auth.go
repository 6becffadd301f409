package dto

// RegisterRequest carries the self-service registration form.
// Field presence is validated in the service so that the "all fields are
// required" outcome is uniform regardless of transport.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// VerifyResponse reports the email that was just verified.
type VerifyResponse struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}
