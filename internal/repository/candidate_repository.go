package repository

import (
	"context"
	"fmt"

	"autohire/internal/database"
	"autohire/internal/domain/matching"

	"github.com/google/uuid"
)

// CandidateRepository fetches the candidate pool projected down to the
// fields the matching engine reads. Absent city/country come back as
// empty strings.
//
// Expects:
//
//	candidates(id uuid primary key, first_name text, last_name text,
//	           email text, city text, country text,
//	           professional_summary text, created_at timestamptz)
//	candidate_skills(candidate_id uuid, name text, level text, position int)
//	candidate_experience(candidate_id uuid, role text, start_date text,
//	                     end_date text, description text, position int)
//	candidate_education(candidate_id uuid, degree text, school text,
//	                    description text, position int)
type CandidateRepository interface {
	ListAll(ctx context.Context) ([]matching.CandidateProfile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) ListAll(ctx context.Context) ([]matching.CandidateProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''),
		       COALESCE(email, ''), COALESCE(city, ''), COALESCE(country, ''),
		       COALESCE(professional_summary, '')
		FROM candidates
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var profiles []matching.CandidateProfile
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var c matching.CandidateProfile
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email,
			&c.City, &c.Country, &c.ProfessionalSummary); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		index[c.ID] = len(profiles)
		profiles = append(profiles, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(profiles))
	for _, c := range profiles {
		ids = append(ids, c.ID)
	}

	if err := r.loadSkills(ctx, ids, index, profiles); err != nil {
		return nil, err
	}
	if err := r.loadExperience(ctx, ids, index, profiles); err != nil {
		return nil, err
	}
	if err := r.loadEducation(ctx, ids, index, profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *PostgresCandidateRepository) loadSkills(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]int, profiles []matching.CandidateProfile) error {
	rows, err := r.db.Query(ctx, `
		SELECT candidate_id, COALESCE(name, ''), COALESCE(level, '')
		FROM candidate_skills
		WHERE candidate_id = ANY($1)
		ORDER BY candidate_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list candidate skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var s matching.CandidateSkill
		if err := rows.Scan(&id, &s.Name, &s.Level); err != nil {
			return fmt.Errorf("scan candidate skill: %w", err)
		}
		if i, ok := index[id]; ok {
			profiles[i].Skills = append(profiles[i].Skills, s)
		}
	}
	return rows.Err()
}

func (r *PostgresCandidateRepository) loadExperience(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]int, profiles []matching.CandidateProfile) error {
	rows, err := r.db.Query(ctx, `
		SELECT candidate_id, COALESCE(role, ''), COALESCE(start_date, ''),
		       COALESCE(end_date, ''), COALESCE(description, '')
		FROM candidate_experience
		WHERE candidate_id = ANY($1)
		ORDER BY candidate_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list candidate experience: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var e matching.ExperienceEntry
		if err := rows.Scan(&id, &e.Role, &e.StartDate, &e.EndDate, &e.Description); err != nil {
			return fmt.Errorf("scan candidate experience: %w", err)
		}
		if i, ok := index[id]; ok {
			profiles[i].Experience = append(profiles[i].Experience, e)
		}
	}
	return rows.Err()
}

func (r *PostgresCandidateRepository) loadEducation(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]int, profiles []matching.CandidateProfile) error {
	rows, err := r.db.Query(ctx, `
		SELECT candidate_id, COALESCE(degree, ''), COALESCE(school, ''),
		       COALESCE(description, '')
		FROM candidate_education
		WHERE candidate_id = ANY($1)
		ORDER BY candidate_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list candidate education: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var e matching.EducationEntry
		if err := rows.Scan(&id, &e.Degree, &e.School, &e.Description); err != nil {
			return fmt.Errorf("scan candidate education: %w", err)
		}
		if i, ok := index[id]; ok {
			profiles[i].Education = append(profiles[i].Education, e)
		}
	}
	return rows.Err()
}
