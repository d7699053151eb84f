package model

import "time"

// User represents an account owned by the external identity provider.
// Username lives in provider metadata and is attached by this service.
type User struct {
	ID        string
	Email     string
	Username  string
	CreatedAt time.Time
}

// Session is the result of a successful login.
type Session struct {
	UserID   string
	Username string
	Token    string
}
