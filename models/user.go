package models

import "time"

// User represents an account of the analytics service.
// PasswordHash is never serialized outside the blob store record.
type User struct {
	// ID is a UUIDv7 assigned at registration.
	ID string `json:"id"`

	// Email is the unique login of the account, stored lower-cased.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"password_hash,omitempty"`

	// Plan is the subscription plan the account is on.
	Plan Plan `json:"plan"`

	// SubscriptionStatus mirrors the state of a paid subscription
	// ("none", "active", "canceled"). Billing itself lives elsewhere.
	SubscriptionStatus string `json:"subscription_status"`

	// SubscriptionEndsAt is set for canceled subscriptions still in their paid period.
	SubscriptionEndsAt *time.Time `json:"subscription_ends_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Public returns a copy of u that is safe to send to clients.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// Credentials is the payload of the register and login endpoints.
type Credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Name     string `json:"name,omitempty" validate:"max=100"`
}

// PasswordChange is the payload of the password change endpoint.
type PasswordChange struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128"`
}
