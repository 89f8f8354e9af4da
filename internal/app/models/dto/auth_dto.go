package dto

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest represents staff account creation data
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// AuthResponse is what the backend returns on successful login or signup
type AuthResponse struct {
	Token      string   `json:"token"`
	Username   string   `json:"username"`
	Roles      []string `json:"roles"`
	Identifier string   `json:"identifier,omitempty"`
}
