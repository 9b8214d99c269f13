package domain

import "time"

// IssueStatus enumerates lifecycle states for reported issues.
type IssueStatus string

const (
	IssueStatusPending    IssueStatus = "pending"
	IssueStatusInProgress IssueStatus = "in_progress"
	IssueStatusResolved   IssueStatus = "resolved"
)

// IssueLocation pins a report to coordinates.
type IssueLocation struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Issue is a citizen-reported problem. ReportedBy is a weak reference to the
// reporting user's store key.
type Issue struct {
	ID          string
	Title       string
	Description string
	Category    string
	Location    IssueLocation
	ReportedBy  string
	Status      IssueStatus
	ReportedAt  time.Time
}

// IssueWithReporter is a feed entry enriched with the reporting user's
// public identity via a join, not stored redundantly.
type IssueWithReporter struct {
	Issue
	ReporterName  string
	ReporterEmail string
}
