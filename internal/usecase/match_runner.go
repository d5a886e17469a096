package usecase

import (
	"context"
	"errors"
	"time"

	"autohire/internal/highmatch"
	"autohire/internal/infrastructure/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// topMatchesLogged caps how many ranked candidates each run summary logs.
const topMatchesLogged = 5

// MatchRunner executes one full matching run for a job: take the run
// lock, rank the pool, hand the results to the high-match selector,
// persist its picks, cache the ranking. It is the unit of work the
// background dispatcher executes.
type MatchRunner struct {
	ranker   *Ranker
	cache    *cache.Redis
	selector highmatch.Selector
	logger   *zap.Logger
	cacheTTL time.Duration
	lockTTL  time.Duration
}

func NewMatchRunner(ranker *Ranker, redis *cache.Redis, selector highmatch.Selector, logger *zap.Logger, cacheTTL time.Duration) *MatchRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchRunner{
		ranker:   ranker,
		cache:    redis,
		selector: selector,
		logger:   logger,
		cacheTTL: cacheTTL,
		lockTTL:  2 * time.Minute,
	}
}

func (m *MatchRunner) Run(ctx context.Context, jobID uuid.UUID) error {
	won, err := m.cache.SetIfNotExists(ctx, cache.RunLockKey(jobID), "1", m.lockTTL)
	if err == nil && !won {
		m.logger.Info("matching run already in progress, skipping",
			zap.String("job_id", jobID.String()))
		return nil
	}
	defer func() { _ = m.cache.Delete(ctx, cache.RunLockKey(jobID)) }()

	results, report, err := m.ranker.RankCandidates(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrEmptyCandidatePool) {
			m.logger.Info("no candidates to match", zap.String("job_id", jobID.String()))
			return nil
		}
		return err
	}

	picks := m.selector.Select(results)
	selected := m.ranker.SaveSelected(ctx, jobID, picks)

	if err := m.cache.SetJSON(ctx, cache.RankingsKey(jobID), results, m.cacheTTL); err != nil {
		m.logger.Warn("ranking cache write failed",
			zap.String("job_id", jobID.String()), zap.Error(err))
	}

	m.logger.Info("matching run complete",
		zap.String("job_id", jobID.String()),
		zap.Int("pool_size", len(results)),
		zap.Int("qualifying_writes", report.Succeeded),
		zap.Int("failed_writes", report.Failed+selected.Failed),
		zap.Int("high_match_selected", len(picks)))

	for i, r := range results {
		if i >= topMatchesLogged {
			break
		}
		m.logger.Info("top match",
			zap.Int("rank", i+1),
			zap.String("candidate_id", r.CandidateID.String()),
			zap.String("name", r.Name),
			zap.Int("score", r.Score),
			zap.String("category", r.Recommendation.Category),
			zap.Strings("insights", r.Recommendation.Insights))
	}

	return nil
}
