package dto

import "time"

// RegisterRequest payload for new citizens.
type RegisterRequest struct {
	Email        string `json:"email"`
	AadharCardNo string `json:"aadharCardNo"`
	PhoneNo      string `json:"phoneNo"`
	Password     string `json:"password"`
	DisplayName  string `json:"displayName"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthData is the payload returned by register and login.
type AuthData struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserSummary `json:"user"`
}

// StatsResponse mirrors the per-user counters.
type StatsResponse struct {
	TotalIssuesReported int `json:"totalIssuesReported"`
	TotalIssuesResolved int `json:"totalIssuesResolved"`
	Points              int `json:"points"`
}

// UserSummary is the public-safe user shape returned by auth endpoints.
// Stats are attached on login only.
type UserSummary struct {
	UserID      string         `json:"userid"`
	Email       string         `json:"email"`
	DisplayName string         `json:"displayName"`
	PhoneNo     string         `json:"phoneNo"`
	Stats       *StatsResponse `json:"stats,omitempty"`
}
