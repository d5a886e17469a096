package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"autohire/internal/config"
	"autohire/internal/database/postgres"
	"autohire/internal/domain/matching"
	"autohire/internal/highmatch"
	"autohire/internal/infrastructure/cache"
	"autohire/internal/logger"
	"autohire/internal/matchrun"
	"autohire/internal/repository"
	"autohire/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.Environment == "production", cfg.App.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	redis := cache.NewRedis(zl)
	defer func() { _ = redis.Close() }()

	engine := matching.NewEngine(matching.Weights{
		Skills:         cfg.Matcher.SkillsWeight,
		Experience:     cfg.Matcher.ExperienceWeight,
		Location:       cfg.Matcher.LocationWeight,
		RoleSimilarity: cfg.Matcher.RoleSimilarityWeight,
		Education:      cfg.Matcher.EducationWeight,
	}, matching.DefaultExperienceBands())

	ranker := usecase.NewRanker(
		repository.NewPostgresJobRepository(db),
		repository.NewPostgresCandidateRepository(db),
		repository.NewPostgresApplicationRepository(db),
		engine,
		zl,
		cfg.Matcher.QualifyScore,
		cfg.Matcher.Concurrency,
	)

	runner := usecase.NewMatchRunner(
		ranker,
		redis,
		highmatch.ThresholdSelector{MinScore: cfg.Matcher.SelectScore},
		zl,
		cfg.Matcher.ResultCacheTTL,
	)

	dispatcher := matchrun.NewDispatcher(cfg.Worker.Workers, cfg.Worker.QueueSize, zl)
	dispatcher.Start(ctx)

	poller := matchrun.NewPoller(
		repository.NewPostgresMatchRequestRepository(db),
		dispatcher,
		runner,
		cfg.Worker.PollInterval,
		cfg.Worker.PollBatch,
		zl,
	)
	poller.Start(ctx)

	zl.Info("matcher worker started",
		zap.String("app", cfg.App.AppName),
		zap.String("env", cfg.App.Environment),
		zap.Int("workers", cfg.Worker.Workers))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	zl.Info("shutting down")
	cancel()
	dispatcher.Stop()
}
