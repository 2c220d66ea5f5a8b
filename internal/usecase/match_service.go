package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
)

// MatchService handles match completion: record the final score and the
// reported stat lines, then trigger the achievements engine for every
// rostered player.
type MatchService struct {
	matchRepo match.Repository
	statRepo  matchstat.Repository
	awards    *AwardService
	logger    *logging.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	statRepo matchstat.Repository,
	awards *AwardService,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo: matchRepo,
		statRepo:  statRepo,
		awards:    awards,
		logger:    logger,
	}
}

type CompleteMatchInput struct {
	MatchID string
	// LeagueID, when set, must match the league the match belongs to.
	LeagueID    string
	HomeGoals   int
	AwayGoals   int
	PlayerStats []matchstat.Stat
}

type CompleteMatchResult struct {
	Match match.Match
	// AwardedByUser lists achievements awarded by this completion, keyed
	// by user id; users who gained nothing are absent.
	AwardedByUser map[string][]string
}

func (s *MatchService) CompleteMatch(ctx context.Context, input CompleteMatchInput) (CompleteMatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CompleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(input.MatchID)
	if matchID == "" {
		return CompleteMatchResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.HomeGoals < 0 || input.AwayGoals < 0 {
		return CompleteMatchResult{}, fmt.Errorf("%w: goals cannot be negative", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return CompleteMatchResult{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return CompleteMatchResult{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	if match.NormalizeStatus(item.Status) == match.StatusCancelled {
		return CompleteMatchResult{}, fmt.Errorf("%w: match=%s is cancelled", ErrInvalidInput, matchID)
	}
	if leagueID := strings.TrimSpace(input.LeagueID); leagueID != "" && item.LeagueID != leagueID {
		return CompleteMatchResult{}, fmt.Errorf("%w: match=%s in league=%s", ErrNotFound, matchID, leagueID)
	}

	for _, stat := range input.PlayerStats {
		stat.MatchID = matchID
		if err := stat.Validate(); err != nil {
			return CompleteMatchResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := s.statRepo.Upsert(ctx, stat); err != nil {
			return CompleteMatchResult{}, fmt.Errorf("upsert stat user=%s match=%s: %w", stat.UserID, matchID, err)
		}
	}

	if err := s.matchRepo.Complete(ctx, matchID, match.Result{
		HomeGoals: input.HomeGoals,
		AwayGoals: input.AwayGoals,
	}); err != nil {
		return CompleteMatchResult{}, fmt.Errorf("complete match=%s: %w", matchID, err)
	}

	completed, _, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return CompleteMatchResult{}, fmt.Errorf("reload match=%s: %w", matchID, err)
	}

	result := CompleteMatchResult{
		Match:         completed,
		AwardedByUser: make(map[string][]string),
	}

	// Award evaluation is best effort per player: one failing player does
	// not undo the completed match.
	for _, playerID := range rosteredPlayers(completed) {
		awarded, err := s.awards.EvaluateAndAwardLeague(ctx, playerID, completed.LeagueID)
		if err != nil {
			s.logger.WarnContext(ctx, "player evaluation failed",
				"match_id", matchID,
				"user_id", playerID,
				"error", err,
			)
			continue
		}
		if len(awarded) > 0 {
			result.AwardedByUser[playerID] = awarded
		}
	}

	return result, nil
}

func rosteredPlayers(m match.Match) []string {
	seen := make(map[string]struct{}, len(m.HomeRoster)+len(m.AwayRoster))
	out := make([]string, 0, len(m.HomeRoster)+len(m.AwayRoster))
	for _, id := range append(append([]string(nil), m.HomeRoster...), m.AwayRoster...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
