package models

import "time"

// Account is a registered user of the mock auth flow. It is stored as an
// opaque JSON blob, so the password hash is serialized here and stripped by
// Profile before leaving the service layer.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserProfile struct {
	ID        string    `json:"id" example:"7b0f7d4e-6f0e-4a43-9d9b-0d4a5a1f2c3e"`
	Name      string    `json:"name" example:"Test User"`
	Email     string    `json:"email" example:"test@example.com"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Account) Profile() UserProfile {
	return UserProfile{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// Session is the server-side "is authenticated" flag for a user.
type Session struct {
	UserID        string    `json:"user_id"`
	Authenticated bool      `json:"authenticated"`
	IssuedAt      time.Time `json:"issued_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (s *Session) Active(now time.Time) bool {
	return s.Authenticated && now.Before(s.ExpiresAt)
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User      UserProfile `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}
