package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/matchdayhq/sunday-league/internal/domain/achievement"
	"github.com/matchdayhq/sunday-league/internal/domain/league"
	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
)

// StatService aggregates a user's historical match data into the metrics
// the achievement catalog gates on. It never mutates anything.
type StatService struct {
	leagueRepo league.Repository
	matchRepo  match.Repository
	statRepo   matchstat.Repository
}

func NewStatService(
	leagueRepo league.Repository,
	matchRepo match.Repository,
	statRepo matchstat.Repository,
) *StatService {
	return &StatService{
		leagueRepo: leagueRepo,
		matchRepo:  matchRepo,
		statRepo:   statRepo,
	}
}

// appearance is one completed match the user took part in, paired with the
// user's stat line when one was reported.
type appearance struct {
	match   match.Match
	stat    matchstat.Stat
	hasStat bool
}

// ComputeLeagueMetrics reduces the user's completed matches in one league
// into a metrics record. A user with no completed matches in scope yields
// all-zero metrics, not an error.
func (s *StatService) ComputeLeagueMetrics(ctx context.Context, userID, leagueID string) (achievement.Metrics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.ComputeLeagueMetrics")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" {
		return achievement.Metrics{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if leagueID == "" {
		return achievement.Metrics{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	matches, err := s.matchRepo.ListCompletedByLeague(ctx, leagueID)
	if err != nil {
		return achievement.Metrics{}, fmt.Errorf("list completed matches league=%s: %w", leagueID, err)
	}
	if len(matches) == 0 {
		return achievement.Metrics{}, nil
	}

	stats, err := s.statRepo.ListByUserAndLeague(ctx, userID, leagueID)
	if err != nil {
		return achievement.Metrics{}, fmt.Errorf("list match statistics user=%s league=%s: %w", userID, leagueID, err)
	}

	return reduceMetrics(userID, matches, stats), nil
}

// ComputeAllLeaguesMetrics combines per-league metrics across every league
// the user belongs to. Counters sum; streaks take the per-league maximum —
// a run never spans league boundaries.
func (s *StatService) ComputeAllLeaguesMetrics(ctx context.Context, userID string) (achievement.Metrics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatService.ComputeAllLeaguesMetrics")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return achievement.Metrics{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.ListByUser(ctx, userID)
	if err != nil {
		return achievement.Metrics{}, fmt.Errorf("list leagues for user=%s: %w", userID, err)
	}

	combined := achievement.Metrics{}
	for _, item := range leagues {
		metrics, err := s.ComputeLeagueMetrics(ctx, userID, item.ID)
		if err != nil {
			return achievement.Metrics{}, fmt.Errorf("compute metrics league=%s: %w", item.ID, err)
		}
		combined = combined.CombineLeague(metrics)
	}

	return combined, nil
}

// reduceMetrics is the pure reduction at the heart of the aggregator: one
// chronological pass over the user's appearances.
func reduceMetrics(userID string, matches []match.Match, stats []matchstat.Stat) achievement.Metrics {
	statByMatch := make(map[string]matchstat.Stat, len(stats))
	for _, stat := range stats {
		statByMatch[stat.MatchID] = stat
	}

	appearances := make([]appearance, 0, len(matches))
	var metrics achievement.Metrics

	for _, m := range matches {
		if !m.IsCompleted() {
			continue
		}

		if m.CaptainedWinBy(userID) {
			metrics.CaptainWins++
		}

		stat, hasStat := statByMatch[m.ID]
		rostered := containsRoster(m, userID)
		if !hasStat && !rostered {
			continue
		}
		appearances = append(appearances, appearance{match: m, stat: stat, hasStat: hasStat})

		if hasStat && stat.Goals >= 3 {
			metrics.HatTrickMatches++
		}
	}

	sort.SliceStable(appearances, func(i, j int) bool {
		return appearances[i].match.Date.Before(appearances[j].match.Date)
	})

	metrics.ConsecutiveAssists = longestRun(appearances, func(a appearance) bool {
		return a.hasStat && a.stat.Assists > 0
	})
	metrics.ConsecutiveGoals = longestRun(appearances, func(a appearance) bool {
		return a.hasStat && a.stat.Goals > 0
	})
	metrics.ConsecutiveWins = longestRun(appearances, func(a appearance) bool {
		return a.match.WonBy(userID)
	})
	metrics.ConsecutiveCleanSheetWins = longestRun(appearances, func(a appearance) bool {
		return a.match.WonBy(userID) && a.hasStat && a.stat.CleanSheets > 0
	})

	// CaptainPerformancePicks, ConsecutiveMOTM and TopSpotMatches stay at
	// zero until their qualifying rules are decided; see achievement.Metrics.

	return metrics
}

// longestRun returns the length of the longest contiguous run of
// appearances satisfying pred. Any failing appearance resets the run.
func longestRun(appearances []appearance, pred func(appearance) bool) int {
	longest := 0
	current := 0
	for _, a := range appearances {
		if !pred(a) {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}

func containsRoster(m match.Match, userID string) bool {
	for _, id := range m.HomeRoster {
		if id == userID {
			return true
		}
	}
	for _, id := range m.AwayRoster {
		if id == userID {
			return true
		}
	}
	return false
}
