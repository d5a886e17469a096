package repository

import (
	"context"
	"fmt"
	"time"

	"autohire/internal/database"

	"github.com/google/uuid"
)

// MatchRequest is one queued matching run. The web layer enqueues a
// request when a job is posted and responds immediately; the worker
// drains the queue on its own schedule.
type MatchRequest struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	RequestedAt time.Time
}

// Expects:
//
//	match_requests(id uuid primary key, job_post_id uuid,
//	               status text, -- pending | running | done | failed
//	               reason text, requested_at timestamptz,
//	               started_at timestamptz, finished_at timestamptz)
type MatchRequestRepository interface {
	Enqueue(ctx context.Context, jobID uuid.UUID) error
	ClaimPending(ctx context.Context, limit int) ([]MatchRequest, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	Release(ctx context.Context, id uuid.UUID) error
}

type PostgresMatchRequestRepository struct {
	db database.DB
}

func NewPostgresMatchRequestRepository(db database.DB) *PostgresMatchRequestRepository {
	return &PostgresMatchRequestRepository{db: db}
}

func (r *PostgresMatchRequestRepository) Enqueue(ctx context.Context, jobID uuid.UUID) error {
	if jobID == uuid.Nil {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO match_requests (id, job_post_id, status, requested_at)
		VALUES ($1, $2, 'pending', $3)`,
		uuid.New(), jobID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("enqueue match request: %w", err)
	}
	return nil
}

// ClaimPending moves up to limit pending requests to running and returns
// them. SKIP LOCKED keeps concurrent workers from claiming the same rows.
func (r *PostgresMatchRequestRepository) ClaimPending(ctx context.Context, limit int) ([]MatchRequest, error) {
	if limit <= 0 {
		limit = 1
	}

	rows, err := r.db.Query(ctx, `
		UPDATE match_requests
		SET status = 'running', started_at = $2
		WHERE id IN (
			SELECT id FROM match_requests
			WHERE status = 'pending'
			ORDER BY requested_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, job_post_id, requested_at`, limit, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("claim match requests: %w", err)
	}
	defer rows.Close()

	var out []MatchRequest
	for rows.Next() {
		var m MatchRequest
		if err := rows.Scan(&m.ID, &m.JobID, &m.RequestedAt); err != nil {
			return nil, fmt.Errorf("scan match request: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresMatchRequestRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE match_requests
		SET status = 'done', finished_at = $2
		WHERE id = $1`, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("mark match request done: %w", err)
	}
	return nil
}

func (r *PostgresMatchRequestRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE match_requests
		SET status = 'failed', reason = $2, finished_at = $3
		WHERE id = $1`, id, reason, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("mark match request failed: %w", err)
	}
	return nil
}

// Release puts a claimed request back in the queue, e.g. when the
// dispatch queue is full.
func (r *PostgresMatchRequestRepository) Release(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE match_requests
		SET status = 'pending', started_at = NULL
		WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("release match request: %w", err)
	}
	return nil
}
