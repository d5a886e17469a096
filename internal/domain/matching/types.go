package matching

import (
	"strings"

	"github.com/google/uuid"
)

type WorkMode string

const (
	WorkModeOnsite WorkMode = "onsite"
	WorkModeRemote WorkMode = "remote"
)

// JobPosting is the read-only posting side of a match. Country and City
// are only meaningful for onsite postings.
type JobPosting struct {
	ID          uuid.UUID
	Role        string
	Description string
	Skills      []string
	Experience  string
	WorkMode    WorkMode
	Country     string
	City        string
}

type CandidateSkill struct {
	Name  string
	Level string
}

// ExperienceEntry dates use the MM/YYYY form; EndDate may be the literal
// "Present" for a current position.
type ExperienceEntry struct {
	Role        string
	StartDate   string
	EndDate     string
	Description string
}

type EducationEntry struct {
	Degree      string
	School      string
	Description string
}

// CandidateProfile is the projected resume a candidate is matched on.
// Absent city/country arrive as empty strings, never as a sentinel.
type CandidateProfile struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	Email               string
	City                string
	Country             string
	ProfessionalSummary string
	Skills              []CandidateSkill
	Experience          []ExperienceEntry
	Education           []EducationEntry
}

func (c CandidateProfile) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Breakdown holds the five component scores, each rounded independently
// for display.
type Breakdown struct {
	Skills         int
	Experience     int
	Location       int
	RoleSimilarity int
	Education      int
}

type Recommendation struct {
	Category string
	Insights []string
}

type MatchResult struct {
	CandidateID    uuid.UUID
	Name           string
	Email          string
	Score          int
	Breakdown      Breakdown
	Recommendation Recommendation
}
