package usecase

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"

	"autohire/internal/domain/matching"
	"autohire/internal/highmatch"
	"autohire/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound        = errors.New("job post not found")
	ErrEmptyCandidatePool = errors.New("candidate pool empty")
	ErrInternal           = errors.New("internal error")
)

// Scorer is the per-candidate scoring contract the ranker fans out over.
// matching.Engine is the production implementation.
type Scorer interface {
	Score(job matching.JobPosting, c matching.CandidateProfile) matching.MatchResult
}

// WriteReport accounts for the application writes attempted during a
// ranking invocation. Individual failures never abort the batch; they
// are counted here and logged.
type WriteReport struct {
	Attempted int
	Succeeded int
	Failed    int
	Created   int
}

type Ranker struct {
	jobs         repository.JobRepository
	candidates   repository.CandidateRepository
	applications repository.ApplicationRepository
	scorer       Scorer
	logger       *zap.Logger

	qualifyScore int
	concurrency  int
}

func NewRanker(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	applications repository.ApplicationRepository,
	scorer Scorer,
	logger *zap.Logger,
	qualifyScore int,
	concurrency int,
) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if qualifyScore <= 0 {
		qualifyScore = 60
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Ranker{
		jobs:         jobs,
		candidates:   candidates,
		applications: applications,
		scorer:       scorer,
		logger:       logger,
		qualifyScore: qualifyScore,
		concurrency:  concurrency,
	}
}

// RankCandidates scores the full candidate pool against the job and
// returns it ranked by composite score descending, ties in pool order.
// Candidates whose composite meets the qualification threshold get an
// application record, at most one per (job, candidate) pair; a failed
// write is logged and counted, never fatal for the rest of the pool.
func (u *Ranker) RankCandidates(ctx context.Context, jobID uuid.UUID) ([]matching.MatchResult, WriteReport, error) {
	if jobID == uuid.Nil {
		return nil, WriteReport{}, ErrJobNotFound
	}

	job, found, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		u.logger.Error("job lookup failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, WriteReport{}, ErrInternal
	}
	if !found {
		return nil, WriteReport{}, ErrJobNotFound
	}

	pool, err := u.candidates.ListAll(ctx)
	if err != nil {
		u.logger.Error("candidate pool fetch failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, WriteReport{}, ErrInternal
	}
	if len(pool) == 0 {
		return nil, WriteReport{}, ErrEmptyCandidatePool
	}

	// Candidates are independent, so scoring fans out; results land at
	// the candidate's pool index so the stable sort sees pool order.
	results := make([]matching.MatchResult, len(pool))
	var attempted, succeeded, failed, created atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(u.concurrency)
	for i, c := range pool {
		i, c := i, c
		g.Go(func() error {
			res := u.scorer.Score(job, c)
			results[i] = res

			if res.Score < u.qualifyScore {
				return nil
			}
			attempted.Add(1)
			wrote, err := u.applications.CreateIfAbsent(ctx, jobID, c.ID, res.Score)
			if err != nil {
				failed.Add(1)
				u.logger.Warn("application save failed",
					zap.String("job_id", jobID.String()),
					zap.String("candidate_id", c.ID.String()),
					zap.Error(err))
				return nil
			}
			succeeded.Add(1)
			if wrote {
				created.Add(1)
				u.logger.Info("application created",
					zap.String("job_id", jobID.String()),
					zap.String("candidate_id", c.ID.String()),
					zap.Int("score", res.Score))
			}
			return nil
		})
	}
	_ = g.Wait()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	report := WriteReport{
		Attempted: int(attempted.Load()),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
		Created:   int(created.Load()),
	}
	return results, report, nil
}

// SaveSelected persists the subset chosen by the downstream high-match
// selection step. The duplicate-safe write path means re-selection after
// a ranking run is a no-op for already-persisted pairs.
func (u *Ranker) SaveSelected(ctx context.Context, jobID uuid.UUID, picks []highmatch.Pick) WriteReport {
	var report WriteReport
	for _, p := range picks {
		report.Attempted++
		wrote, err := u.applications.CreateIfAbsent(ctx, jobID, p.CandidateID, p.Score)
		if err != nil {
			report.Failed++
			u.logger.Warn("selected application save failed",
				zap.String("job_id", jobID.String()),
				zap.String("candidate_id", p.CandidateID.String()),
				zap.Error(err))
			continue
		}
		report.Succeeded++
		if wrote {
			report.Created++
		}
	}
	return report
}
