package dto

// RegisterRequest describes the sign-up payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ProfileResponse describes the authenticated user profile.
type ProfileResponse struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	CreateDate string `json:"createDate"`
}

// MessageResponse is a generic message body.
type MessageResponse struct {
	Message string `json:"message"`
}
