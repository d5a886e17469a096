package matchrun

import (
	"context"
	"time"

	"autohire/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner executes one matching run for a job. usecase.MatchRunner is the
// production implementation.
type Runner interface {
	Run(ctx context.Context, jobID uuid.UUID) error
}

// Poller drains the persisted match_requests queue on a ticker and hands
// each claimed request to the dispatcher. Request state transitions
// (done/failed/released) are this package's responsibility, so a crashed
// worker leaves a visible trail instead of a silently lost run.
type Poller struct {
	requests   repository.MatchRequestRepository
	dispatcher *Dispatcher
	runner     Runner
	logger     *zap.Logger

	interval time.Duration
	batch    int
}

func NewPoller(requests repository.MatchRequestRepository, dispatcher *Dispatcher, runner Runner, interval time.Duration, batch int, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if batch <= 0 {
		batch = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		requests:   requests,
		dispatcher: dispatcher,
		runner:     runner,
		logger:     logger,
		interval:   interval,
		batch:      batch,
	}
}

func (p *Poller) Start(ctx context.Context) {
	go func() {
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p.PollOnce(ctx)
			}
		}
	}()
}

// PollOnce claims a batch of pending requests and dispatches them.
func (p *Poller) PollOnce(ctx context.Context) {
	claimed, err := p.requests.ClaimPending(ctx, p.batch)
	if err != nil {
		p.logger.Error("claim pending match requests failed", zap.Error(err))
		return
	}

	for _, req := range claimed {
		req := req
		ok := p.dispatcher.Submit(func(taskCtx context.Context) {
			p.execute(taskCtx, req)
		})
		if !ok {
			p.logger.Warn("dispatch queue full, releasing request",
				zap.String("request_id", req.ID.String()),
				zap.String("job_id", req.JobID.String()))
			if err := p.requests.Release(ctx, req.ID); err != nil {
				p.logger.Error("release match request failed",
					zap.String("request_id", req.ID.String()), zap.Error(err))
			}
		}
	}
}

func (p *Poller) execute(ctx context.Context, req repository.MatchRequest) {
	if err := p.runner.Run(ctx, req.JobID); err != nil {
		p.logger.Error("matching run failed",
			zap.String("request_id", req.ID.String()),
			zap.String("job_id", req.JobID.String()),
			zap.Error(err))
		if err := p.requests.MarkFailed(ctx, req.ID, err.Error()); err != nil {
			p.logger.Error("mark match request failed errored",
				zap.String("request_id", req.ID.String()), zap.Error(err))
		}
		return
	}
	if err := p.requests.MarkDone(ctx, req.ID); err != nil {
		p.logger.Error("mark match request done errored",
			zap.String("request_id", req.ID.String()), zap.Error(err))
	}
}
