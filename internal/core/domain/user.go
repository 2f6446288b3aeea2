package domain

import "time"

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents a farm operator account.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string // empty for external-provider accounts
	AuthProvider AuthProvider
	ProviderID   string // subject claim for external providers
	AuditFields
	RefreshTokenHash       string
	RefreshTokenExpiryTime *time.Time
	DeletedAt              *time.Time
}

// GoogleUserInfo carries the profile fields returned by Google's userinfo
// endpoint (or extracted from a validated ID token) during OAuth sign-in.
type GoogleUserInfo struct {
	Subject string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
