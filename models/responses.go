package models

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      User   `json:"user"`
}

// Usage counts resources consumed by a user.
type Usage struct {
	Sites           int   `json:"sites"`
	EventsThisMonth int64 `json:"events_this_month"`
}

// UserStatus is the response of the user status endpoint.
type UserStatus struct {
	User               User       `json:"user"`
	Plan               Plan       `json:"plan"`
	Limits             PlanLimits `json:"limits"`
	Usage              Usage      `json:"usage"`
	SubscriptionStatus string     `json:"subscription_status"`
	OverQuota          bool       `json:"over_quota"`
}

// VersionResponse is the response of the version endpoint.
type VersionResponse struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}
