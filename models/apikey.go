package models

import "time"

// APIKeyPrefix starts every generated API key.
const APIKeyPrefix = "pa_"

// APIKey grants programmatic access on behalf of a user.
// Only the SHA-256 hash of the key is stored.
type APIKey struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Hash       string     `json:"hash,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Public returns a copy of k without the hash.
func (k APIKey) Public() APIKey {
	k.Hash = ""
	return k
}

// APIKeyRequest is the payload for creating an API key.
type APIKeyRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CreatedAPIKey is returned once, right after creation.
type CreatedAPIKey struct {
	APIKey
	Key string `json:"key"`
}
