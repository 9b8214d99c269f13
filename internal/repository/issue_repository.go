package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/civic-voice/internal/domain"
)

// DefaultFeedLimit caps the community feed snapshot.
const DefaultFeedLimit = 50

// IssueRepository encapsulates issue persistence.
type IssueRepository interface {
	Create(ctx context.Context, issue *domain.Issue) error
	ListRecent(ctx context.Context, limit int) ([]domain.IssueWithReporter, error)
	ListByReporter(ctx context.Context, userID string) ([]domain.Issue, error)
}

type issueRepository struct {
	pool *pgxpool.Pool
}

// NewIssueRepository instantiates repository.
func NewIssueRepository(pool *pgxpool.Pool) IssueRepository {
	return &issueRepository{pool: pool}
}

func (r *issueRepository) Create(ctx context.Context, issue *domain.Issue) error {
	const query = `
        INSERT INTO issues (title, description, category, latitude, longitude, address, reported_by, status, reported_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		issue.Title,
		issue.Description,
		issue.Category,
		issue.Location.Latitude,
		issue.Location.Longitude,
		issue.Location.Address,
		issue.ReportedBy,
		issue.Status,
		issue.ReportedAt,
	).Scan(&issue.ID)
}

func (r *issueRepository) ListRecent(ctx context.Context, limit int) ([]domain.IssueWithReporter, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	const query = `
        SELECT i.id, i.title, i.description, i.category, i.latitude, i.longitude, i.address,
               i.reported_by, i.status, i.reported_at, u.display_name, u.email
        FROM issues i
        JOIN users u ON u.id = i.reported_by
        ORDER BY i.reported_at DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.IssueWithReporter
	for rows.Next() {
		var entry domain.IssueWithReporter
		if err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Description,
			&entry.Category,
			&entry.Location.Latitude,
			&entry.Location.Longitude,
			&entry.Location.Address,
			&entry.ReportedBy,
			&entry.Status,
			&entry.ReportedAt,
			&entry.ReporterName,
			&entry.ReporterEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *issueRepository) ListByReporter(ctx context.Context, userID string) ([]domain.Issue, error) {
	const query = `
        SELECT id, title, description, category, latitude, longitude, address,
               reported_by, status, reported_at
        FROM issues
        WHERE reported_by=$1
        ORDER BY reported_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIssues(rows)
}

func scanIssues(rows pgx.Rows) ([]domain.Issue, error) {
	var result []domain.Issue
	for rows.Next() {
		var issue domain.Issue
		if err := rows.Scan(
			&issue.ID,
			&issue.Title,
			&issue.Description,
			&issue.Category,
			&issue.Location.Latitude,
			&issue.Location.Longitude,
			&issue.Location.Address,
			&issue.ReportedBy,
			&issue.Status,
			&issue.ReportedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, issue)
	}
	return result, rows.Err()
}
