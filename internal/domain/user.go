package domain

import "time"

// UserLocation is the last location a citizen shared with the platform.
type UserLocation struct {
	Latitude  float64
	Longitude float64
	Address   string
	City      string
	State     string
}

// UserStats accumulates per-citizen reporting counters.
type UserStats struct {
	TotalIssuesReported int
	TotalIssuesResolved int
	Points              int
}

// StatField names a single UserStats counter for targeted increments.
type StatField string

const (
	StatTotalIssuesReported StatField = "total_issues_reported"
	StatTotalIssuesResolved StatField = "total_issues_resolved"
	StatPoints              StatField = "points"
)

// User is the domain model for registered citizens.
//
// ID is the store key carried in tokens; PublicID is the client-facing
// identifier generated from the creation timestamp. Email, AadharCardNo and
// PhoneNo are each globally unique.
type User struct {
	ID           string
	PublicID     string
	Email        string
	AadharCardNo string
	PhoneNo      string
	DisplayName  string
	PasswordHash string
	Location     UserLocation
	Stats        UserStats
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
