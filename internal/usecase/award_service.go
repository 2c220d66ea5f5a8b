package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/matchdayhq/sunday-league/internal/domain/achievement"
	"github.com/matchdayhq/sunday-league/internal/domain/user"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
	"github.com/matchdayhq/sunday-league/internal/platform/resilience"
)

// awardRetryLimit bounds re-read/re-evaluate cycles after an optimistic
// version conflict before the conflict is surfaced to the caller.
const awardRetryLimit = 3

const defaultSweepWorkers = 8

// AwardNotifier publishes newly awarded achievements to interested
// listeners. Delivery is best effort and never blocks an award.
type AwardNotifier interface {
	PublishAwards(ctx context.Context, userID string, awarded []achievement.Definition) error
}

// AwardService evaluates the achievement catalog against a user's metrics
// and applies XP grants at most once per (user, achievement) pair.
type AwardService struct {
	userRepo     user.Repository
	stats        *StatService
	catalog      []achievement.Definition
	notifier     AwardNotifier
	logger       *logging.Logger
	userLocks    resilience.KeyedMutex
	now          func() time.Time
	sweepWorkers int
}

func NewAwardService(
	userRepo user.Repository,
	stats *StatService,
	notifier AwardNotifier,
	logger *logging.Logger,
) *AwardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AwardService{
		userRepo:     userRepo,
		stats:        stats,
		catalog:      achievement.Catalog(),
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
		sweepWorkers: defaultSweepWorkers,
	}
}

// WithSweepWorkers overrides the sweep pool size. Values below one keep
// the default.
func (s *AwardService) WithSweepWorkers(n int) *AwardService {
	if n > 0 {
		s.sweepWorkers = n
	}
	return s
}

// EvaluateAndAwardLeague runs the engine for one user scoped to a single
// league and returns the ids of achievements awarded by this call.
func (s *AwardService) EvaluateAndAwardLeague(ctx context.Context, userID, leagueID string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.EvaluateAndAwardLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	return s.evaluateAndAward(ctx, userID, func(ctx context.Context) (achievement.Metrics, error) {
		return s.stats.ComputeLeagueMetrics(ctx, userID, leagueID)
	})
}

// EvaluateAndAwardAllLeagues runs the engine for one user across every
// league the user belongs to.
func (s *AwardService) EvaluateAndAwardAllLeagues(ctx context.Context, userID string) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.EvaluateAndAwardAllLeagues")
	defer span.End()

	return s.evaluateAndAward(ctx, userID, func(ctx context.Context) (achievement.Metrics, error) {
		return s.stats.ComputeAllLeaguesMetrics(ctx, userID)
	})
}

// evaluateAndAward is the single read-evaluate-write cycle shared by both
// scopes. Concurrent calls for the same user serialize on a keyed mutex;
// the optimistic version on the user row catches writers that raced past
// this process entirely.
func (s *AwardService) evaluateAndAward(
	ctx context.Context,
	userID string,
	computeMetrics func(context.Context) (achievement.Metrics, error),
) ([]string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	var lastConflict error
	for attempt := 0; attempt < awardRetryLimit; attempt++ {
		current, exists, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
		}

		metrics, err := computeMetrics(ctx)
		if err != nil {
			return nil, fmt.Errorf("compute metrics user=%s: %w", userID, err)
		}

		awarded := s.qualifyNewAwards(current, metrics)
		if len(awarded) == 0 {
			return []string{}, nil
		}

		updated := current
		updated.Achievements = append(append([]string(nil), current.Achievements...), awardIDs(awarded)...)
		updated.XP = current.XP + totalXP(awarded)
		updated.UpdatedAt = s.now().UTC()

		if err := s.userRepo.UpdateProgress(ctx, updated); err != nil {
			if errors.Is(err, user.ErrVersionConflict) {
				lastConflict = err
				continue
			}
			return nil, fmt.Errorf("persist awards user=%s: %w", userID, err)
		}

		s.logger.InfoContext(ctx, "achievements awarded",
			"user_id", userID,
			"achievements", awardIDs(awarded),
			"xp_added", totalXP(awarded),
		)
		s.publishAwards(ctx, userID, awarded)

		return awardIDs(awarded), nil
	}

	return nil, fmt.Errorf("%w: user=%s after %d attempts: %v", ErrConflict, userID, awardRetryLimit, lastConflict)
}

// qualifyNewAwards walks the catalog in declaration order, skipping ids
// the user already owns. Awards always append in catalog order.
func (s *AwardService) qualifyNewAwards(current user.User, metrics achievement.Metrics) []achievement.Definition {
	awarded := make([]achievement.Definition, 0)
	for _, def := range s.catalog {
		if current.HasAchievement(def.ID) {
			continue
		}
		if def.Qualifies(metrics) {
			awarded = append(awarded, def)
		}
	}
	return awarded
}

func (s *AwardService) publishAwards(ctx context.Context, userID string, awarded []achievement.Definition) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.PublishAwards(ctx, userID, awarded); err != nil {
		s.logger.WarnContext(ctx, "award notification failed", "user_id", userID, "error", err)
	}
}

// SweepResult summarizes one global sweep.
type SweepResult struct {
	UserCount    int      `json:"user_count"`
	AwardedCount int      `json:"awarded_count"`
	FailedCount  int      `json:"failed_count"`
	WorkerCount  int      `json:"worker_count"`
	AwardedUsers []string `json:"awarded_users,omitempty"`
}

// SweepAllUsers evaluates every user in all-leagues scope on a bounded
// worker pool. One user's failure never aborts the sweep.
func (s *AwardService) SweepAllUsers(ctx context.Context) (SweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.SweepAllUsers")
	defer span.End()

	userIDs, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list user ids for sweep: %w", err)
	}

	workerCount := s.sweepWorkers
	if workerCount <= 0 {
		workerCount = defaultSweepWorkers
	}
	if workerCount > len(userIDs) && len(userIDs) > 0 {
		workerCount = len(userIDs)
	}

	result := SweepResult{
		UserCount:   len(userIDs),
		WorkerCount: workerCount,
	}
	if len(userIDs) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SweepResult{}, fmt.Errorf("create sweep worker pool: %w", err)
	}
	defer pool.Release()

	var awardedCount atomic.Int32
	var failedCount atomic.Int32
	awardedUsers := make(chan string, len(userIDs))

	var workers sync.WaitGroup
	for _, userID := range userIDs {
		userID := userID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			awarded, err := s.EvaluateAndAwardAllLeagues(ctx, userID)
			if err != nil {
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "sweep evaluation failed", "user_id", userID, "error", err)
				return
			}
			if len(awarded) > 0 {
				awardedCount.Add(1)
				awardedUsers <- userID
			}
		}); err != nil {
			workers.Done()
			return SweepResult{}, fmt.Errorf("submit sweep task user=%s: %w", userID, err)
		}
	}

	workers.Wait()
	close(awardedUsers)

	for userID := range awardedUsers {
		result.AwardedUsers = append(result.AwardedUsers, userID)
	}
	result.AwardedCount = int(awardedCount.Load())
	result.FailedCount = int(failedCount.Load())

	return result, nil
}

func awardIDs(defs []achievement.Definition) []string {
	out := make([]string, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.ID)
	}
	return out
}

func totalXP(defs []achievement.Definition) int {
	total := 0
	for _, def := range defs {
		total += def.XP
	}
	return total
}
