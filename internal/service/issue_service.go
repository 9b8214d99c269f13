package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/civic-voice/internal/domain"
	"github.com/spec-kit/civic-voice/internal/events"
	"github.com/spec-kit/civic-voice/internal/persistence"
	"github.com/spec-kit/civic-voice/internal/repository"
	apperrors "github.com/spec-kit/civic-voice/pkg/util"
)

// IssueReportInput describes the issue creation payload. Latitude and
// longitude are pointers so that 0 counts as a present coordinate.
type IssueReportInput struct {
	Title       string
	Description string
	Category    string
	Location    *IssueLocationInput
}

// IssueLocationInput carries the reported coordinates.
type IssueLocationInput struct {
	Latitude  *float64
	Longitude *float64
	Address   string
}

// IssueService coordinates issue reporting and retrieval.
type IssueService struct {
	issues     repository.IssueRepository
	dispatcher events.Dispatcher
	feed       *persistence.FeedCache
}

// IssueDependencies bundles requirements for the issue service.
type IssueDependencies struct {
	IssueRepo  repository.IssueRepository
	Dispatcher events.Dispatcher
	FeedCache  *persistence.FeedCache
}

// NewIssueService constructs the service.
func NewIssueService(deps IssueDependencies) *IssueService {
	return &IssueService{
		issues:     deps.IssueRepo,
		dispatcher: deps.Dispatcher,
		feed:       deps.FeedCache,
	}
}

// Report validates and persists a new issue for the authenticated user, then
// bumps the reporter's counters off the event bus. Nothing is persisted when
// validation fails.
func (s *IssueService) Report(ctx context.Context, userID string, input IssueReportInput) (*domain.Issue, error) {
	if strings.TrimSpace(input.Title) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.Category) == "" ||
		input.Location == nil {
		return nil, apperrors.NewValidationError("title, description, category and location are required", nil)
	}
	if input.Location.Latitude == nil || input.Location.Longitude == nil {
		return nil, apperrors.NewValidationError("location coordinates are required", nil)
	}

	issue := &domain.Issue{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Location: domain.IssueLocation{
			Latitude:  *input.Location.Latitude,
			Longitude: *input.Location.Longitude,
			Address:   input.Location.Address,
		},
		ReportedBy: userID,
		Status:     domain.IssueStatusPending,
		ReportedAt: time.Now(),
	}
	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	// Stat increment and notifications ride the bus; their failure never
	// touches the success response.
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventIssueReported,
			Actor:     events.Actor{UserID: userID},
			Timestamp: time.Now(),
			Payload: events.IssueReportedPayload{
				IssueID:  issue.ID,
				Title:    issue.Title,
				Category: issue.Category,
				Status:   issue.Status,
			},
		})
	}

	s.feed.Invalidate(ctx)

	return issue, nil
}

// ListCommunity returns up to 50 most recent issues enriched with reporter
// identity, newest first. The Redis snapshot is consulted first.
func (s *IssueService) ListCommunity(ctx context.Context) ([]domain.IssueWithReporter, error) {
	if items, ok := s.feed.Get(ctx); ok {
		return items, nil
	}

	items, err := s.issues.ListRecent(ctx, repository.DefaultFeedLimit)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.feed.Set(ctx, items)
	return items, nil
}

// ListMine returns all issues reported by the caller, newest first.
func (s *IssueService) ListMine(ctx context.Context, userID string) ([]domain.Issue, error) {
	items, err := s.issues.ListByReporter(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return items, nil
}
