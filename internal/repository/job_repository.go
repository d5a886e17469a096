package repository

import (
	"context"
	"errors"
	"fmt"

	"autohire/internal/database"
	"autohire/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Expects the job_posts table:
//
//	job_posts(id uuid primary key, role text, description text,
//	          skills text[], experience text, work_mode text,
//	          country text, city text)
type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (matching.JobPosting, bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (matching.JobPosting, bool, error) {
	if id == uuid.Nil {
		return matching.JobPosting{}, false, nil
	}

	row := r.db.QueryRow(ctx, `
		SELECT id, role, description, skills, experience, work_mode,
		       COALESCE(country, ''), COALESCE(city, '')
		FROM job_posts
		WHERE id = $1`, id)

	var jp matching.JobPosting
	var workMode string
	err := row.Scan(&jp.ID, &jp.Role, &jp.Description, &jp.Skills,
		&jp.Experience, &workMode, &jp.Country, &jp.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return matching.JobPosting{}, false, nil
		}
		return matching.JobPosting{}, false, fmt.Errorf("find job post: %w", err)
	}
	jp.WorkMode = matching.WorkMode(workMode)
	return jp, true, nil
}
