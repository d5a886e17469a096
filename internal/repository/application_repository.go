package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autohire/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ApplicationRepository persists qualifying matches. The unique
// (job_post_id, candidate_id) constraint is what makes concurrent runs
// for the same job safe; CreateIfAbsent leans on it instead of trusting
// a check-then-create ordering.
//
// Expects:
//
//	job_applications(id uuid primary key, job_post_id uuid,
//	                 candidate_id uuid, match_score int,
//	                 applied_at timestamptz,
//	                 unique (job_post_id, candidate_id))
type ApplicationRepository interface {
	Exists(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error)
	CreateIfAbsent(ctx context.Context, jobID, candidateID uuid.UUID, score int) (bool, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	if jobID == uuid.Nil || candidateID == uuid.Nil {
		return false, nil
	}

	row := r.db.QueryRow(ctx, `
		SELECT 1
		FROM job_applications
		WHERE job_post_id = $1 AND candidate_id = $2`, jobID, candidateID)

	var one int
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("application exists: %w", err)
	}
	return true, nil
}

// CreateIfAbsent writes the application record unless one already exists
// for the pair. Reports whether a new row was created.
func (r *PostgresApplicationRepository) CreateIfAbsent(ctx context.Context, jobID, candidateID uuid.UUID, score int) (bool, error) {
	if jobID == uuid.Nil || candidateID == uuid.Nil {
		return false, nil
	}

	affected, err := r.db.Exec(ctx, `
		INSERT INTO job_applications (id, job_post_id, candidate_id, match_score, applied_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (job_post_id, candidate_id) DO NOTHING`,
		uuid.New(), jobID, candidateID, score, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("create application: %w", err)
	}
	return affected > 0, nil
}
