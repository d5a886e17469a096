package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Matcher  MatcherConfig
	Worker   WorkerConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	Debug       bool
}

type DatabaseConfig struct {
	DBHost       string
	DBPort       string
	DBName       string
	DBUser       string
	DBPassword   string
	DBSSLMode    string
	PoolMaxConns int32
}

// MatcherConfig carries the scoring weights and thresholds as named
// configuration rather than literals inside the scorers.
type MatcherConfig struct {
	SkillsWeight         float64
	ExperienceWeight     float64
	LocationWeight       float64
	RoleSimilarityWeight float64
	EducationWeight      float64

	// QualifyScore is the composite score at which an application
	// record is written for a candidate.
	QualifyScore int

	// SelectScore is the threshold the default high-match selector
	// applies on top of ranking.
	SelectScore int

	Concurrency    int
	ResultCacheTTL time.Duration
}

type WorkerConfig struct {
	Workers      int
	QueueSize    int
	PollInterval time.Duration
	PollBatch    int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		Debug:       optBool("APP_DEBUG", false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:       opt("DB_HOST"),
		DBPort:       opt("DB_PORT"),
		DBName:       opt("DB_NAME"),
		DBUser:       opt("DB_USER"),
		DBPassword:   opt("DB_PASSWORD"),
		DBSSLMode:    opt("DB_SSL_MODE"),
		PoolMaxConns: int32(optInt("DB_POOL_MAX_CONNS", 0)),
	}

	cfg.Matcher = MatcherConfig{
		SkillsWeight:         optFloat("MATCH_SKILLS_WEIGHT", 0.35),
		ExperienceWeight:     optFloat("MATCH_EXPERIENCE_WEIGHT", 0.25),
		LocationWeight:       optFloat("MATCH_LOCATION_WEIGHT", 0.15),
		RoleSimilarityWeight: optFloat("MATCH_ROLE_SIMILARITY_WEIGHT", 0.15),
		EducationWeight:      optFloat("MATCH_EDUCATION_WEIGHT", 0.10),
		QualifyScore:         optInt("MATCH_QUALIFY_SCORE", 60),
		SelectScore:          optInt("MATCH_SELECT_SCORE", 85),
		Concurrency:          optInt("MATCH_CONCURRENCY", 8),
		ResultCacheTTL:       optDuration("MATCH_RESULT_CACHE_TTL", 10*time.Minute),
	}

	cfg.Worker = WorkerConfig{
		Workers:      optInt("WORKER_COUNT", 2),
		QueueSize:    optInt("WORKER_QUEUE_SIZE", 64),
		PollInterval: optDuration("WORKER_POLL_INTERVAL", 15*time.Second),
		PollBatch:    optInt("WORKER_POLL_BATCH", 10),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func optBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
