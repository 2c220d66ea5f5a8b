package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/matchdayhq/sunday-league/internal/domain/achievement"
	"github.com/matchdayhq/sunday-league/internal/domain/league"
	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
	"github.com/matchdayhq/sunday-league/internal/domain/user"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
)

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]user.User
	// forcedConflicts fails that many UpdateProgress calls with
	// ErrVersionConflict before behaving normally.
	forcedConflicts int
	updateCalls     int
}

func newStubUserRepo(users ...user.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]user.User, len(users))}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (s *stubUserRepo) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	return u, ok, nil
}

func (s *stubUserRepo) ListIDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.users))
	for id := range s.users {
		out = append(out, id)
	}
	return out, nil
}

func (s *stubUserRepo) UpdateProgress(ctx context.Context, u user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.updateCalls++
	if s.forcedConflicts > 0 {
		s.forcedConflicts--
		return user.ErrVersionConflict
	}

	stored, ok := s.users[u.ID]
	if !ok {
		return fmt.Errorf("user %s not found", u.ID)
	}
	if stored.Version != u.Version {
		return user.ErrVersionConflict
	}

	u.Version++
	s.users[u.ID] = u
	return nil
}

type recordingNotifier struct {
	mu        sync.Mutex
	published [][]achievement.Definition
	err       error
}

func (n *recordingNotifier) PublishAwards(ctx context.Context, userID string, awarded []achievement.Definition) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.published = append(n.published, awarded)
	return nil
}

// hatTrickFixture wires a stat service where userID has three completed
// hat-trick matches in league-1, enough for hat_trick_3_matches.
func hatTrickFixture(userID string) *StatService {
	var matches []match.Match
	var stats []matchstat.Stat
	matchLeague := map[string]string{}

	for day := 1; day <= 3; day++ {
		id := fmt.Sprintf("m%d", day)
		matches = append(matches, completedMatch(id, "league-1", day, 1, 2, nil, []string{userID}))
		matchLeague[id] = "league-1"
		stats = append(stats, matchstat.Stat{UserID: userID, MatchID: id, Goals: 3})
	}

	return NewStatService(
		&stubLeagueRepo{byUser: map[string][]league.League{}},
		&stubMatchRepo{matches: matches},
		&stubStatRepo{stats: stats, matchLeague: matchLeague},
	)
}

func TestEvaluateAndAwardLeagueHatTrickAwardedOnce(t *testing.T) {
	userID := "user-1"
	userRepo := newStubUserRepo(user.User{ID: userID, Email: "u1@example.com"})
	notifier := &recordingNotifier{}
	svc := NewAwardService(userRepo, hatTrickFixture(userID), notifier, logging.NewNop())

	awarded, err := svc.EvaluateAndAwardLeague(context.Background(), userID, "league-1")
	if err != nil {
		t.Fatalf("EvaluateAndAwardLeague: %v", err)
	}
	if len(awarded) != 1 || awarded[0] != "hat_trick_3_matches" {
		t.Fatalf("expected [hat_trick_3_matches], got %v", awarded)
	}

	stored, _, _ := userRepo.GetByID(context.Background(), userID)
	if stored.XP != 100 {
		t.Fatalf("expected 100 XP after hat-trick award, got %d", stored.XP)
	}

	// The same facts must not award or grant XP again.
	again, err := svc.EvaluateAndAwardLeague(context.Background(), userID, "league-1")
	if err != nil {
		t.Fatalf("second EvaluateAndAwardLeague: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no awards on re-evaluation, got %v", again)
	}
	stored, _, _ = userRepo.GetByID(context.Background(), userID)
	if stored.XP != 100 {
		t.Fatalf("expected XP to stay at 100 after re-evaluation, got %d", stored.XP)
	}
	if len(notifier.published) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.published))
	}
}

func TestEvaluateAndAwardLeagueConcurrentCallsAwardAtMostOnce(t *testing.T) {
	userID := "user-1"
	userRepo := newStubUserRepo(user.User{ID: userID, Email: "u1@example.com"})
	svc := NewAwardService(userRepo, hatTrickFixture(userID), nil, logging.NewNop())

	const callers = 16
	var wg sync.WaitGroup
	awardedTotal := make(chan int, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			awarded, err := svc.EvaluateAndAwardLeague(context.Background(), userID, "league-1")
			if err != nil {
				t.Errorf("EvaluateAndAwardLeague: %v", err)
				return
			}
			awardedTotal <- len(awarded)
		}()
	}
	wg.Wait()
	close(awardedTotal)

	total := 0
	for n := range awardedTotal {
		total += n
	}
	if total != 1 {
		t.Fatalf("expected exactly one award across %d concurrent calls, got %d", callers, total)
	}

	stored, _, _ := userRepo.GetByID(context.Background(), userID)
	if stored.XP != 100 {
		t.Fatalf("expected 100 XP after concurrent evaluation, got %d", stored.XP)
	}
	if len(stored.Achievements) != 1 {
		t.Fatalf("expected one stored achievement, got %v", stored.Achievements)
	}
}

func TestEvaluateAndAwardLeagueAppendsInCatalogOrder(t *testing.T) {
	userID := "user-1"

	// Ten straight wins, scoring a hat trick every time: qualifies the
	// hat-trick, scoring-streak and win-streak entries in one pass.
	var matches []match.Match
	var stats []matchstat.Stat
	matchLeague := map[string]string{}
	for day := 1; day <= 10; day++ {
		id := fmt.Sprintf("m%02d", day)
		matches = append(matches, completedMatch(id, "league-1", day, 3, 0, []string{userID}, nil))
		matchLeague[id] = "league-1"
		stats = append(stats, matchstat.Stat{UserID: userID, MatchID: id, Goals: 3})
	}
	statsSvc := NewStatService(
		&stubLeagueRepo{},
		&stubMatchRepo{matches: matches},
		&stubStatRepo{stats: stats, matchLeague: matchLeague},
	)

	userRepo := newStubUserRepo(user.User{ID: userID, Email: "u1@example.com"})
	svc := NewAwardService(userRepo, statsSvc, nil, logging.NewNop())

	awarded, err := svc.EvaluateAndAwardLeague(context.Background(), userID, "league-1")
	if err != nil {
		t.Fatalf("EvaluateAndAwardLeague: %v", err)
	}

	want := []string{"hat_trick_3_matches", "scoring_10_consecutive", "consecutive_10_victories"}
	if len(awarded) != len(want) {
		t.Fatalf("expected awards %v, got %v", want, awarded)
	}
	for i := range want {
		if awarded[i] != want[i] {
			t.Fatalf("expected awards in catalog order %v, got %v", want, awarded)
		}
	}

	stored, _, _ := userRepo.GetByID(context.Background(), userID)
	if stored.XP != 100+250+500 {
		t.Fatalf("expected 850 XP, got %d", stored.XP)
	}
}

func TestEvaluateAndAwardLeagueRetriesVersionConflict(t *testing.T) {
	userID := "user-1"
	userRepo := newStubUserRepo(user.User{ID: userID, Email: "u1@example.com"})
	userRepo.forcedConflicts = 1
	svc := NewAwardService(userRepo, hatTrickFixture(userID), nil, logging.NewNop())

	awarded, err := svc.EvaluateAndAwardLeague(context.Background(), userID, "league-1")
	if err != nil {
		t.Fatalf("EvaluateAndAwardLeague after one conflict: %v", err)
	}
	if len(awarded) != 1 {
		t.Fatalf("expected one award after conflict retry, got %v", awarded)
	}
	if userRepo.updateCalls != 2 {
		t.Fatalf("expected 2 update attempts, got %d", userRepo.updateCalls)
	}
}

func TestEvaluateAndAwardLeagueSurfacesExhaustedConflicts(t *testing.T) {
	userID := "user-1"
	userRepo := newStubUserRepo(user.User{ID: userID, Email: "u1@example.com"})
	userRepo.forcedConflicts = awardRetryLimit
	svc := NewAwardService(userRepo, hatTrickFixture(userID), nil, logging.NewNop())

	_, err := svc.EvaluateAndAwardLeague(context.Background(), userID, "league-1")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict after %d conflicts, got %v", awardRetryLimit, err)
	}
}

func TestEvaluateAndAwardLeagueUnknownUser(t *testing.T) {
	svc := NewAwardService(newStubUserRepo(), hatTrickFixture("user-1"), nil, logging.NewNop())

	_, err := svc.EvaluateAndAwardLeague(context.Background(), "missing", "league-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestEvaluateAndAwardAllLeaguesCombinesScopes(t *testing.T) {
	userID := "user-1"

	// 3 captained wins in each of two leagues: 6 across all leagues, enough
	// for captain_5_wins, which no single league reaches.
	leaguesByUser := map[string][]league.League{
		userID: {
			{ID: "league-1", Name: "Sunday A", Status: league.StatusActive},
			{ID: "league-2", Name: "Sunday B", Status: league.StatusActive},
		},
	}
	var matches []match.Match
	matchLeague := map[string]string{}
	for _, leagueID := range []string{"league-1", "league-2"} {
		for day := 1; day <= 3; day++ {
			id := fmt.Sprintf("%s-m%d", leagueID, day)
			m := completedMatch(id, leagueID, day, 2, 0, []string{userID}, nil)
			m.HomeCaptainID = strPtr(userID)
			matches = append(matches, m)
			matchLeague[id] = leagueID
		}
	}

	statsSvc := NewStatService(
		&stubLeagueRepo{byUser: leaguesByUser},
		&stubMatchRepo{matches: matches},
		&stubStatRepo{matchLeague: matchLeague},
	)
	userRepo := newStubUserRepo(user.User{ID: userID, Email: "u1@example.com"})
	svc := NewAwardService(userRepo, statsSvc, nil, logging.NewNop())

	awarded, err := svc.EvaluateAndAwardAllLeagues(context.Background(), userID)
	if err != nil {
		t.Fatalf("EvaluateAndAwardAllLeagues: %v", err)
	}
	if len(awarded) != 1 || awarded[0] != "captain_5_wins" {
		t.Fatalf("expected [captain_5_wins], got %v", awarded)
	}
}

func TestSweepAllUsers(t *testing.T) {
	qualifying := "user-1"
	idle := "user-2"

	leaguesByUser := map[string][]league.League{
		qualifying: {{ID: "league-1", Name: "Sunday A", Status: league.StatusActive}},
	}
	var matches []match.Match
	var stats []matchstat.Stat
	matchLeague := map[string]string{}
	for day := 1; day <= 3; day++ {
		id := fmt.Sprintf("m%d", day)
		matches = append(matches, completedMatch(id, "league-1", day, 1, 2, nil, []string{qualifying}))
		matchLeague[id] = "league-1"
		stats = append(stats, matchstat.Stat{UserID: qualifying, MatchID: id, Goals: 3})
	}
	statsSvc := NewStatService(
		&stubLeagueRepo{byUser: leaguesByUser},
		&stubMatchRepo{matches: matches},
		&stubStatRepo{stats: stats, matchLeague: matchLeague},
	)

	userRepo := newStubUserRepo(
		user.User{ID: qualifying, Email: "u1@example.com"},
		user.User{ID: idle, Email: "u2@example.com"},
	)
	svc := NewAwardService(userRepo, statsSvc, nil, logging.NewNop())

	result, err := svc.SweepAllUsers(context.Background())
	if err != nil {
		t.Fatalf("SweepAllUsers: %v", err)
	}
	if result.UserCount != 2 {
		t.Fatalf("expected 2 users swept, got %d", result.UserCount)
	}
	if result.AwardedCount != 1 {
		t.Fatalf("expected 1 awarded user, got %d", result.AwardedCount)
	}
	if result.FailedCount != 0 {
		t.Fatalf("expected no failures, got %d", result.FailedCount)
	}
	if len(result.AwardedUsers) != 1 || result.AwardedUsers[0] != qualifying {
		t.Fatalf("expected awarded users [%s], got %v", qualifying, result.AwardedUsers)
	}
}
