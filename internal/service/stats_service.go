package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/civic-voice/internal/domain"
	"github.com/spec-kit/civic-voice/internal/events"
	"github.com/spec-kit/civic-voice/internal/repository"
)

// StatsService maintains per-user reporting counters off the event bus.
// Increments are best-effort: a failure is logged and never surfaces to the
// operation that triggered it.
type StatsService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewStatsService creates the service.
func NewStatsService(users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *StatsService {
	return &StatsService{users: users, dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (s *StatsService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventIssueReported, s.handleIssueReported)
}

func (s *StatsService) handleIssueReported(ctx context.Context, event events.Event) error {
	if err := s.users.IncrementStat(ctx, event.Actor.UserID, domain.StatTotalIssuesReported, 1); err != nil {
		s.logger.Warn("stat increment failed",
			zap.String("user_id", event.Actor.UserID),
			zap.String("stat", string(domain.StatTotalIssuesReported)),
			zap.Error(err))
	}
	return nil
}
