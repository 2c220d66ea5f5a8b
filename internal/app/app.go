package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/matchdayhq/sunday-league/internal/config"
	"github.com/matchdayhq/sunday-league/internal/domain/league"
	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
	"github.com/matchdayhq/sunday-league/internal/domain/user"
	"github.com/matchdayhq/sunday-league/internal/domain/vote"
	"github.com/matchdayhq/sunday-league/internal/infrastructure/notify"
	"github.com/matchdayhq/sunday-league/internal/infrastructure/repository/memory"
	"github.com/matchdayhq/sunday-league/internal/infrastructure/repository/postgres"
	"github.com/matchdayhq/sunday-league/internal/interfaces/httpapi"
	idgen "github.com/matchdayhq/sunday-league/internal/platform/id"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
	"github.com/matchdayhq/sunday-league/internal/usecase"
)

type repositories struct {
	users   user.Repository
	leagues league.Repository
	matches match.Repository
	stats   matchstat.Repository
	votes   vote.Repository
}

// NewHTTPServer wires repositories, services, and the router into a
// ready-to-run server. An empty DB_URL falls back to seeded in-memory
// stores so the API stays usable in local development.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var repos repositories
	if strings.TrimSpace(cfg.DBURL) != "" {
		db, err := openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repos = newPostgresRepositories(db)
		logger.Info("using postgres repositories", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		repos = newMemoryRepositories()
		logger.Warn("DB_URL empty, using seeded in-memory repositories")
	}

	var notifier usecase.AwardNotifier
	if cfg.WebhookEnabled {
		notifier = notify.NewWebhookNotifier(notify.WebhookNotifierConfig{
			Endpoints: cfg.WebhookEndpoints,
			Token:     cfg.WebhookToken,
			Timeout:   cfg.WebhookTimeout,
		}, logger)
	}

	statService := usecase.NewStatService(repos.leagues, repos.matches, repos.stats)
	awardService := usecase.NewAwardService(repos.users, statService, notifier, logger).
		WithSweepWorkers(cfg.SweepWorkers)
	leagueService := usecase.NewLeagueService(repos.leagues, repos.matches, repos.votes, awardService, logger)
	matchService := usecase.NewMatchService(repos.matches, repos.stats, awardService, logger)
	progressService := usecase.NewProgressService(repos.users, repos.votes)

	handler := httpapi.NewHandler(leagueService, matchService, progressService, awardService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	matchRepo := postgres.NewMatchRepository(db)
	return repositories{
		users:   postgres.NewUserRepository(db),
		leagues: postgres.NewLeagueRepository(db),
		matches: matchRepo,
		stats:   postgres.NewMatchStatRepository(db, idgen.NewRandomGenerator()),
		votes:   postgres.NewVoteRepository(db),
	}
}

func newMemoryRepositories() repositories {
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	return repositories{
		users:   memory.NewUserRepository(memory.SeedUsers()),
		leagues: memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedMemberships()),
		matches: matchRepo,
		stats:   memory.NewMatchStatRepository(matchRepo, memory.SeedMatchStats()),
		votes:   memory.NewVoteRepository(matchRepo, memory.SeedVotes()),
	}
}
