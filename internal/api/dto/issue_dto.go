package dto

import (
	"time"

	"github.com/spec-kit/civic-voice/internal/domain"
)

// IssueLocationRequest carries reported coordinates. Latitude and longitude
// are pointers so their absence is distinguishable from zero.
type IssueLocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

// ReportIssueRequest payload for POST /api/issues.
type ReportIssueRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Location    *IssueLocationRequest `json:"location"`
}

// IssueSummary is the minimal response returned on creation.
type IssueSummary struct {
	IssueID    string             `json:"issueId"`
	Title      string             `json:"title"`
	Category   string             `json:"category"`
	Status     domain.IssueStatus `json:"status"`
	ReportedAt time.Time          `json:"reportedAt"`
}

// IssueLocationResponse mirrors stored issue coordinates.
type IssueLocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// IssueResponse is a full issue record as listed under /api/issues/my.
type IssueResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Location    IssueLocationResponse `json:"location"`
	ReportedBy  string                `json:"reportedBy"`
	Status      domain.IssueStatus    `json:"status"`
	ReportedAt  time.Time             `json:"reportedAt"`
}

// ReporterRef is the joined reporter identity attached to feed entries.
type ReporterRef struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// FeedIssueResponse is a community feed entry with reporter identity.
type FeedIssueResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Location    IssueLocationResponse `json:"location"`
	ReportedBy  ReporterRef           `json:"reportedBy"`
	Status      domain.IssueStatus    `json:"status"`
	ReportedAt  time.Time             `json:"reportedAt"`
}
