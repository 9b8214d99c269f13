package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/civic-voice/internal/domain"
	"github.com/spec-kit/civic-voice/internal/repository"
)

// fakeUserRepo is an in-memory stand-in for the Postgres user repository.
// Uniqueness is enforced on insert, mirroring the unique indexes;
// missPrecheck simulates the race window where the identity pre-check sees
// nothing but the insert still collides.
type fakeUserRepo struct {
	mu            sync.Mutex
	users         map[string]*domain.User
	seq           int
	missPrecheck  bool
	failIncrement bool
	increments    map[string]int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      make(map[string]*domain.User),
		increments: make(map[string]int),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email ||
			existing.AadharCardNo == user.AadharCardNo ||
			existing.PhoneNo == user.PhoneNo {
			return repository.ErrDuplicateIdentity
		}
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.IsActive = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByAnyIdentity(_ context.Context, email, aadharCardNo, phoneNo string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missPrecheck {
		return nil, pgx.ErrNoRows
	}
	for _, user := range f.users {
		if user.Email == email || user.AadharCardNo == aadharCardNo || user.PhoneNo == phoneNo {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetActiveByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email && user.IsActive {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) UpdateLocation(_ context.Context, id string, loc domain.UserLocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Location = loc
	user.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) IncrementStat(_ context.Context, id string, stat domain.StatField, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIncrement {
		return errors.New("stats store unavailable")
	}
	user, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	switch stat {
	case domain.StatTotalIssuesReported:
		user.Stats.TotalIssuesReported += delta
	case domain.StatTotalIssuesResolved:
		user.Stats.TotalIssuesResolved += delta
	case domain.StatPoints:
		user.Stats.Points += delta
	}
	f.increments[id] += delta
	return nil
}

func (f *fakeUserRepo) deactivate(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		user.IsActive = false
	}
}

// fakeIssueRepo is an in-memory stand-in for the issue ledger.
type fakeIssueRepo struct {
	mu         sync.Mutex
	issues     []domain.Issue
	seq        int
	failCreate bool
	failList   bool
	userNames  map[string][2]string
}

func newFakeIssueRepo() *fakeIssueRepo {
	return &fakeIssueRepo{userNames: make(map[string][2]string)}
}

func (f *fakeIssueRepo) Create(_ context.Context, issue *domain.Issue) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("issue store unavailable")
	}
	f.seq++
	issue.ID = fmt.Sprintf("issue-%d", f.seq)
	f.issues = append(f.issues, *issue)
	return nil
}

func (f *fakeIssueRepo) ListRecent(_ context.Context, limit int) ([]domain.IssueWithReporter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, errors.New("issue store unavailable")
	}
	sorted := append([]domain.Issue{}, f.issues...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ReportedAt.After(sorted[j].ReportedAt)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	result := make([]domain.IssueWithReporter, 0, len(sorted))
	for _, issue := range sorted {
		names := f.userNames[issue.ReportedBy]
		result = append(result, domain.IssueWithReporter{
			Issue:         issue,
			ReporterName:  names[0],
			ReporterEmail: names[1],
		})
	}
	return result, nil
}

func (f *fakeIssueRepo) ListByReporter(_ context.Context, userID string) ([]domain.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, errors.New("issue store unavailable")
	}
	var result []domain.Issue
	for _, issue := range f.issues {
		if issue.ReportedBy == userID {
			result = append(result, issue)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ReportedAt.After(result[j].ReportedAt)
	})
	return result, nil
}
