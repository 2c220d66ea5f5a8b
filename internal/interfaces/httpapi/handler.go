package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
	"github.com/matchdayhq/sunday-league/internal/platform/logging"
	"github.com/matchdayhq/sunday-league/internal/usecase"
)

type Handler struct {
	leagueService   *usecase.LeagueService
	matchService    *usecase.MatchService
	progressService *usecase.ProgressService
	awardService    *usecase.AwardService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	matchService *usecase.MatchService,
	progressService *usecase.ProgressService,
	awardService *usecase.AwardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:   leagueService,
		matchService:    matchService,
		progressService: progressService,
		awardService:    awardService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type leagueDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
	Status string `json:"status"`
}

type leagueDetailDTO struct {
	leagueDTO
	MemberIDs []string `json:"member_ids"`
}

type voteTallyDTO struct {
	CandidateID string `json:"candidate_id"`
	Votes       int    `json:"votes"`
}

type fixtureDTO struct {
	ID           string         `json:"id"`
	Date         time.Time      `json:"date"`
	Location     string         `json:"location,omitempty"`
	Status       string         `json:"status"`
	HomeTeamName string         `json:"home_team_name"`
	AwayTeamName string         `json:"away_team_name"`
	HomeGoals    *int           `json:"home_goals"`
	AwayGoals    *int           `json:"away_goals"`
	HomeRoster   []string       `json:"home_roster"`
	AwayRoster   []string       `json:"away_roster"`
	VoteTallies  []voteTallyDTO `json:"vote_tallies"`
}

type achievementDTO struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	XP          int    `json:"xp"`
}

type progressDTO struct {
	UserID        string           `json:"user_id"`
	FirstName     string           `json:"first_name"`
	LastName      string           `json:"last_name"`
	XP            int              `json:"xp"`
	Achievements  []achievementDTO `json:"achievements"`
	VotesReceived int              `json:"votes_received"`
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]leagueDTO, 0, len(leagues))
	for _, item := range leagues {
		out = append(out, leagueDTO{
			ID:     item.ID,
			Name:   item.Name,
			Season: item.Season,
			Status: item.Status,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	detail, err := h.leagueService.GetLeagueDetail(ctx, r.PathValue("leagueID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "get league failed", "league_id", r.PathValue("leagueID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueDetailDTO{
		leagueDTO: leagueDTO{
			ID:     detail.League.ID,
			Name:   detail.League.Name,
			Season: detail.League.Season,
			Status: detail.League.Status,
		},
		MemberIDs: detail.MemberIDs,
	})
}

func (h *Handler) ListLeagueMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMatches")
	defer span.End()

	fixtures, err := h.leagueService.ListFixtures(ctx, r.PathValue("leagueID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "list league matches failed", "league_id", r.PathValue("leagueID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]fixtureDTO, 0, len(fixtures))
	for _, fixture := range fixtures {
		tallies := make([]voteTallyDTO, 0, len(fixture.Tallies))
		for _, tally := range fixture.Tallies {
			tallies = append(tallies, voteTallyDTO{
				CandidateID: tally.CandidateID,
				Votes:       tally.Votes,
			})
		}
		out = append(out, fixtureDTO{
			ID:           fixture.Match.ID,
			Date:         fixture.Match.Date,
			Location:     fixture.Match.Location,
			Status:       fixture.Match.Status,
			HomeTeamName: fixture.Match.HomeTeamName,
			AwayTeamName: fixture.Match.AwayTeamName,
			HomeGoals:    fixture.Match.HomeGoals,
			AwayGoals:    fixture.Match.AwayGoals,
			HomeRoster:   fixture.Match.HomeRoster,
			AwayRoster:   fixture.Match.AwayRoster,
			VoteTallies:  tallies,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserProgress")
	defer span.End()

	progress, err := h.progressService.GetProgress(ctx, r.PathValue("userID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "get user progress failed", "user_id", r.PathValue("userID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	achievements := make([]achievementDTO, 0, len(progress.Achievements))
	for _, award := range progress.Achievements {
		achievements = append(achievements, achievementDTO{
			ID:          award.ID,
			Description: award.Description,
			XP:          award.XP,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, progressDTO{
		UserID:        progress.UserID,
		FirstName:     progress.FirstName,
		LastName:      progress.LastName,
		XP:            progress.XP,
		Achievements:  achievements,
		VotesReceived: progress.VotesReceived,
	})
}

type playerStatRequest struct {
	UserID        string  `json:"user_id" validate:"required"`
	Goals         int     `json:"goals" validate:"gte=0"`
	Assists       int     `json:"assists" validate:"gte=0"`
	CleanSheets   int     `json:"clean_sheets" validate:"gte=0"`
	Penalties     int     `json:"penalties" validate:"gte=0"`
	FreeKicks     int     `json:"free_kicks" validate:"gte=0"`
	YellowCards   int     `json:"yellow_cards" validate:"gte=0"`
	RedCards      int     `json:"red_cards" validate:"gte=0"`
	MinutesPlayed int     `json:"minutes_played" validate:"gte=0"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=10"`
}

type completeMatchRequest struct {
	HomeGoals   int                 `json:"home_goals" validate:"gte=0"`
	AwayGoals   int                 `json:"away_goals" validate:"gte=0"`
	PlayerStats []playerStatRequest `json:"player_stats" validate:"omitempty,dive"`
}

type completeMatchResponse struct {
	MatchID       string              `json:"match_id"`
	Status        string              `json:"status"`
	HomeGoals     *int                `json:"home_goals"`
	AwayGoals     *int                `json:"away_goals"`
	AwardedByUser map[string][]string `json:"awarded_by_user"`
}

func (h *Handler) CompleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteMatch")
	defer span.End()

	var req completeMatchRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats := make([]matchstat.Stat, 0, len(req.PlayerStats))
	for _, stat := range req.PlayerStats {
		stats = append(stats, matchstat.Stat{
			UserID:        stat.UserID,
			Goals:         stat.Goals,
			Assists:       stat.Assists,
			CleanSheets:   stat.CleanSheets,
			Penalties:     stat.Penalties,
			FreeKicks:     stat.FreeKicks,
			YellowCards:   stat.YellowCards,
			RedCards:      stat.RedCards,
			MinutesPlayed: stat.MinutesPlayed,
			Rating:        stat.Rating,
		})
	}

	result, err := h.matchService.CompleteMatch(ctx, usecase.CompleteMatchInput{
		MatchID:     r.PathValue("matchID"),
		LeagueID:    r.PathValue("leagueID"),
		HomeGoals:   req.HomeGoals,
		AwayGoals:   req.AwayGoals,
		PlayerStats: stats,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "complete match failed", "match_id", r.PathValue("matchID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, completeMatchResponse{
		MatchID:       result.Match.ID,
		Status:        result.Match.Status,
		HomeGoals:     result.Match.HomeGoals,
		AwayGoals:     result.Match.AwayGoals,
		AwardedByUser: result.AwardedByUser,
	})
}

func (h *Handler) EndLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EndLeague")
	defer span.End()

	detail, err := h.leagueService.EndLeague(ctx, r.PathValue("leagueID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "end league failed", "league_id", r.PathValue("leagueID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueDetailDTO{
		leagueDTO: leagueDTO{
			ID:     detail.League.ID,
			Name:   detail.League.Name,
			Season: detail.League.Season,
			Status: detail.League.Status,
		},
		MemberIDs: detail.MemberIDs,
	})
}
