package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdayhq/sunday-league/internal/domain/league"
	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/vote"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
)

// LeagueService serves league views and the league-scoped engine triggers
// (league view, league end). Engine failures are logged, never fatal to
// the primary operation.
type LeagueService struct {
	leagueRepo league.Repository
	matchRepo  match.Repository
	voteRepo   vote.Repository
	awards     *AwardService
	logger     *logging.Logger
}

func NewLeagueService(
	leagueRepo league.Repository,
	matchRepo match.Repository,
	voteRepo vote.Repository,
	awards *AwardService,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueService{
		leagueRepo: leagueRepo,
		matchRepo:  matchRepo,
		voteRepo:   voteRepo,
		awards:     awards,
		logger:     logger,
	}
}

type LeagueDetail struct {
	League    league.League
	MemberIDs []string
}

// FixtureView is one completed match plus its man-of-the-match tallies.
type FixtureView struct {
	Match   match.Match
	Tallies []vote.Tally
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	items, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return items, nil
}

// GetLeagueDetail returns the league and its membership, then fires a
// league-scoped evaluation for every member. The view renders even when
// every evaluation fails.
func (s *LeagueService) GetLeagueDetail(ctx context.Context, leagueID string) (LeagueDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeagueDetail")
	defer span.End()

	detail, memberIDs, err := s.loadLeague(ctx, leagueID)
	if err != nil {
		return LeagueDetail{}, err
	}

	s.evaluateMembers(ctx, detail.ID, memberIDs)

	return LeagueDetail{League: detail, MemberIDs: memberIDs}, nil
}

// EndLeague marks a league ended and runs a final league-scoped
// evaluation for every member.
func (s *LeagueService) EndLeague(ctx context.Context, leagueID string) (LeagueDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.EndLeague")
	defer span.End()

	detail, memberIDs, err := s.loadLeague(ctx, leagueID)
	if err != nil {
		return LeagueDetail{}, err
	}

	if err := s.leagueRepo.SetStatus(ctx, detail.ID, league.StatusEnded); err != nil {
		return LeagueDetail{}, fmt.Errorf("end league=%s: %w", detail.ID, err)
	}
	detail.Status = league.StatusEnded

	s.evaluateMembers(ctx, detail.ID, memberIDs)

	return LeagueDetail{League: detail, MemberIDs: memberIDs}, nil
}

// ListFixtures returns a league's completed matches with vote tallies.
func (s *LeagueService) ListFixtures(ctx context.Context, leagueID string) ([]FixtureView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListFixtures")
	defer span.End()

	detail, _, err := s.loadLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.ListCompletedByLeague(ctx, detail.ID)
	if err != nil {
		return nil, fmt.Errorf("list completed matches league=%s: %w", detail.ID, err)
	}

	tallies, err := s.voteRepo.TallyByLeague(ctx, detail.ID)
	if err != nil {
		return nil, fmt.Errorf("tally votes league=%s: %w", detail.ID, err)
	}
	talliesByMatch := make(map[string][]vote.Tally, len(matches))
	for _, tally := range tallies {
		talliesByMatch[tally.MatchID] = append(talliesByMatch[tally.MatchID], tally)
	}

	out := make([]FixtureView, 0, len(matches))
	for _, m := range matches {
		out = append(out, FixtureView{Match: m, Tallies: talliesByMatch[m.ID]})
	}
	return out, nil
}

func (s *LeagueService) loadLeague(ctx context.Context, leagueID string) (league.League, []string, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	memberIDs, err := s.leagueRepo.ListMemberIDs(ctx, leagueID)
	if err != nil {
		return league.League{}, nil, fmt.Errorf("list league members league=%s: %w", leagueID, err)
	}

	return item, memberIDs, nil
}

func (s *LeagueService) evaluateMembers(ctx context.Context, leagueID string, memberIDs []string) {
	if s.awards == nil {
		return
	}
	for _, memberID := range memberIDs {
		if _, err := s.awards.EvaluateAndAwardLeague(ctx, memberID, leagueID); err != nil {
			s.logger.WarnContext(ctx, "member evaluation failed",
				"league_id", leagueID,
				"user_id", memberID,
				"error", err,
			)
		}
	}
}
