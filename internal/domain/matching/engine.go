package matching

import (
	"math"
	"sort"
	"time"
)

// Weights controls how the five component scores combine into the
// composite. They are explicit configuration, not embedded literals.
type Weights struct {
	Skills         float64
	Experience     float64
	Location       float64
	RoleSimilarity float64
	Education      float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:         0.35,
		Experience:     0.25,
		Location:       0.15,
		RoleSimilarity: 0.15,
		Education:      0.10,
	}
}

// Engine scores candidates against job postings. It holds no per-run
// state; a single Engine is safe for concurrent use.
type Engine struct {
	weights Weights
	bands   map[string]ExperienceBand
	now     func() time.Time
}

func NewEngine(w Weights, bands map[string]ExperienceBand) *Engine {
	if bands == nil {
		bands = DefaultExperienceBands()
	}
	return &Engine{weights: w, bands: bands, now: time.Now}
}

// Score evaluates one candidate against the posting. The composite is a
// weighted sum of the unrounded component scores; the breakdown carries
// each component rounded independently for display.
func (e *Engine) Score(job JobPosting, c CandidateProfile) MatchResult {
	now := e.now().UTC()

	skills := SkillsMatch(job.Skills, c.Skills)
	experience := ExperienceMatch(job.Experience, c.Experience, e.bands, now)
	location := LocationMatch(job, c)
	roleSimilarity := TextSimilarity(job.Role+" "+job.Description, c.ProfessionalSummary)
	education := EducationRelevance(job.Role, c.Education)

	composite := skills*e.weights.Skills +
		experience*e.weights.Experience +
		location*e.weights.Location +
		roleSimilarity*e.weights.RoleSimilarity +
		education*e.weights.Education

	breakdown := Breakdown{
		Skills:         roundScore(skills),
		Experience:     roundScore(experience),
		Location:       roundScore(location),
		RoleSimilarity: roundScore(roleSimilarity),
		Education:      roundScore(education),
	}
	score := roundScore(composite)

	return MatchResult{
		CandidateID:    c.ID,
		Name:           c.FullName(),
		Email:          c.Email,
		Score:          score,
		Breakdown:      breakdown,
		Recommendation: Recommend(score, breakdown),
	}
}

// Rank scores the whole pool and returns it sorted by composite score
// descending. Ties keep the pool's original order.
func (e *Engine) Rank(job JobPosting, pool []CandidateProfile) []MatchResult {
	results := make([]MatchResult, len(pool))
	for i, c := range pool {
		results[i] = e.Score(job, c)
	}
	SortByScore(results)
	return results
}

// SortByScore orders results by composite score descending, stable.
func SortByScore(results []MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

func roundScore(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	return n
}
