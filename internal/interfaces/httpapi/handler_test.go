package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/matchdayhq/sunday-league/internal/domain/league"
	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
	"github.com/matchdayhq/sunday-league/internal/domain/user"
	"github.com/matchdayhq/sunday-league/internal/infrastructure/repository/memory"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
	"github.com/matchdayhq/sunday-league/internal/usecase"
)

const testJobToken = "job-token"

// newTestRouter wires the full stack on memory stores: one league, one
// player two hat tricks deep, and a scheduled match that will become the
// third.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	intPtr := func(v int) *int { return &v }
	date := func(day int) time.Time {
		return time.Date(2026, time.April, day, 11, 0, 0, 0, time.UTC)
	}

	users := []user.User{
		{ID: "usr-1", FirstName: "Sam", LastName: "Archer", Email: "sam@example.com"},
		{ID: "usr-2", FirstName: "Theo", LastName: "Brandt", Email: "theo@example.com"},
	}
	leagues := []league.League{
		{ID: "lg-1", Name: "Test League", Season: "2026", Status: league.StatusActive},
	}
	members := []memory.Membership{
		{LeagueID: "lg-1", UserID: "usr-1"},
		{LeagueID: "lg-1", UserID: "usr-2"},
	}
	matches := []match.Match{
		{
			ID: "m-1", LeagueID: "lg-1", Date: date(1), Status: match.StatusCompleted,
			HomeTeamName: "A", AwayTeamName: "B",
			HomeGoals: intPtr(3), AwayGoals: intPtr(0),
			HomeRoster: []string{"usr-1"}, AwayRoster: []string{"usr-2"},
		},
		{
			ID: "m-2", LeagueID: "lg-1", Date: date(8), Status: match.StatusCompleted,
			HomeTeamName: "A", AwayTeamName: "B",
			HomeGoals: intPtr(4), AwayGoals: intPtr(1),
			HomeRoster: []string{"usr-1"}, AwayRoster: []string{"usr-2"},
		},
		{
			ID: "m-3", LeagueID: "lg-1", Date: date(15), Status: match.StatusScheduled,
			HomeTeamName: "A", AwayTeamName: "B",
			HomeRoster: []string{"usr-1"}, AwayRoster: []string{"usr-2"},
		},
	}
	stats := []matchstat.Stat{
		{ID: "s-1", UserID: "usr-1", MatchID: "m-1", Goals: 3},
		{ID: "s-2", UserID: "usr-1", MatchID: "m-2", Goals: 3},
	}

	userRepo := memory.NewUserRepository(users)
	leagueRepo := memory.NewLeagueRepository(leagues, members)
	matchRepo := memory.NewMatchRepository(matches)
	statRepo := memory.NewMatchStatRepository(matchRepo, stats)
	voteRepo := memory.NewVoteRepository(matchRepo, nil)

	logger := logging.NewNop()
	statService := usecase.NewStatService(leagueRepo, matchRepo, statRepo)
	awardService := usecase.NewAwardService(userRepo, statService, nil, logger)
	leagueService := usecase.NewLeagueService(leagueRepo, matchRepo, voteRepo, awardService, logger)
	matchService := usecase.NewMatchService(matchRepo, statRepo, awardService, logger)
	progressService := usecase.NewProgressService(userRepo, voteRepo)

	handler := NewHandler(leagueService, matchService, progressService, awardService, logger)
	return NewRouter(handler, logger, []string{"*"}, testJobToken)
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	data, _ := body["data"].(map[string]any)
	return data
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouterListLeagues(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	items, _ := body["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 league, got %d", len(items))
	}
}

func TestRouterCompleteMatchAwardsHatTrick(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"home_goals": 5,
		"away_goals": 0,
		"player_stats": [
			{"user_id": "usr-1", "goals": 3, "assists": 1, "minutes_played": 90, "rating": 9.0}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/leagues/lg-1/matches/m-3/complete", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec)
	if got, _ := data["status"].(string); got != match.StatusCompleted {
		t.Fatalf("expected completed match, got %v", data["status"])
	}
	awardedByUser, _ := data["awarded_by_user"].(map[string]any)
	awarded, _ := awardedByUser["usr-1"].([]any)
	if len(awarded) != 1 || awarded[0] != "hat_trick_3_matches" {
		t.Fatalf("expected hat_trick_3_matches for usr-1, got %v", awardedByUser)
	}

	// Progress view must reflect the grant.
	req = httptest.NewRequest(http.MethodGet, "/v1/users/usr-1/progress", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	data = decodeData(t, rec)
	if xp, _ := data["xp"].(float64); xp != 100 {
		t.Fatalf("expected 100 XP, got %v", data["xp"])
	}
}

func TestRouterUnknownLeague(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/leagues/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouterEndLeague(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/leagues/lg-1/end", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if got, _ := data["status"].(string); got != league.StatusEnded {
		t.Fatalf("expected ended league, got %v", data["status"])
	}
}

func TestRouterSweepJobRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/xp-sweep", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/xp-sweep", nil)
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if count, _ := data["user_count"].(float64); count != 2 {
		t.Fatalf("expected 2 users swept, got %v", data["user_count"])
	}
}

func TestRouterRecalculateJob(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/xp-recalculate", strings.NewReader(`{"user_id":"usr-1"}`))
	req.Header.Set("X-Internal-Job-Token", testJobToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	// Only two hat tricks so far, nothing qualifies yet.
	if awarded, _ := data["awarded"].([]any); len(awarded) != 0 {
		t.Fatalf("expected no awards, got %v", data["awarded"])
	}
}
