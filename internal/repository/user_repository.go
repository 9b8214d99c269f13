package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/civic-voice/internal/domain"
)

// ErrDuplicateIdentity is returned when an insert violates one of the unique
// identity indexes. The index rejection, not the caller's pre-check, is the
// authoritative duplicate guard.
var ErrDuplicateIdentity = errors.New("duplicate identity")

const uniqueViolation = "23505"

// UserRepository defines persistence access for citizens.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByAnyIdentity(ctx context.Context, email, aadharCardNo, phoneNo string) (*domain.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateLocation(ctx context.Context, id string, loc domain.UserLocation) error
	IncrementStat(ctx context.Context, id string, stat domain.StatField, delta int) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, public_id, email, aadhar_card_no, phone_no, display_name, password_hash,
        latitude, longitude, address, city, state,
        total_issues_reported, total_issues_resolved, points,
        is_active, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (public_id, email, aadhar_card_no, phone_no, display_name, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.PublicID,
		user.Email,
		user.AadharCardNo,
		user.PhoneNo,
		user.DisplayName,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateIdentity
		}
		return err
	}
	user.IsActive = true
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id=$1`, userColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByAnyIdentity(ctx context.Context, email, aadharCardNo, phoneNo string) (*domain.User, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM users
        WHERE email=$1 OR aadhar_card_no=$2 OR phone_no=$3
        LIMIT 1`, userColumns)
	return r.fetchSingle(ctx, query, email, aadharCardNo, phoneNo)
}

func (r *userRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email=$1 AND is_active=TRUE`, userColumns)
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.PublicID,
		&user.Email,
		&user.AadharCardNo,
		&user.PhoneNo,
		&user.DisplayName,
		&user.PasswordHash,
		&user.Location.Latitude,
		&user.Location.Longitude,
		&user.Location.Address,
		&user.Location.City,
		&user.Location.State,
		&user.Stats.TotalIssuesReported,
		&user.Stats.TotalIssuesResolved,
		&user.Stats.Points,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateLocation(ctx context.Context, id string, loc domain.UserLocation) error {
	const query = `
        UPDATE users SET latitude=$1, longitude=$2, address=$3, city=$4, state=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		loc.Latitude,
		loc.Longitude,
		loc.Address,
		loc.City,
		loc.State,
		id,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) IncrementStat(ctx context.Context, id string, stat domain.StatField, delta int) error {
	// Column name comes from the StatField whitelist, never from input.
	var column string
	switch stat {
	case domain.StatTotalIssuesReported:
		column = "total_issues_reported"
	case domain.StatTotalIssuesResolved:
		column = "total_issues_resolved"
	case domain.StatPoints:
		column = "points"
	default:
		return fmt.Errorf("unknown stat field %q", stat)
	}

	query := fmt.Sprintf(`UPDATE users SET %s=%s+$1, updated_at=NOW() WHERE id=$2`, column, column)
	cmd, err := r.pool.Exec(ctx, query, delta, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
