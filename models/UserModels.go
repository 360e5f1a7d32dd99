package models

import "time"

// User is a sales or admin account.
type User struct {
	ID        int       `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role" db:"role"` // vendedor, admin
	Suspended bool      `json:"suspended" db:"suspended"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Session is one logged-in device for a user.
type Session struct {
	UserID                int       `json:"user_id" db:"user_id"`
	SessionID             string    `json:"session_id" db:"session_id"`
	HostName              string    `json:"host_name" db:"host_name"`
	IPAddress             string    `json:"ip_address" db:"ip_address"`
	Timestamp             time.Time `json:"timestamp" db:"timestp"`
	ExpiresAt             time.Time `json:"expires_at" db:"expires_at"`
	RefreshToken          string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"-" db:"refresh_token_expires_at"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	IP       string `json:"ip"`
}

// RefreshRequest carries a refresh token for reissuing an access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
