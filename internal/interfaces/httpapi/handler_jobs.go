package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/matchdayhq/sunday-league/internal/usecase"
)

type xpRecalculateRequest struct {
	UserID string `json:"user_id" validate:"required"`
	// LeagueID narrows the evaluation to one league; empty means all
	// leagues the user belongs to.
	LeagueID string `json:"league_id"`
}

type xpRecalculateResponse struct {
	UserID   string   `json:"user_id"`
	LeagueID string   `json:"league_id,omitempty"`
	Awarded  []string `json:"awarded"`
}

func (h *Handler) RunXPRecalculateJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunXPRecalculateJob")
	defer span.End()

	var req xpRecalculateRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil && err != io.EOF {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var awarded []string
	var err error
	if req.LeagueID != "" {
		awarded, err = h.awardService.EvaluateAndAwardLeague(ctx, req.UserID, req.LeagueID)
	} else {
		awarded, err = h.awardService.EvaluateAndAwardAllLeagues(ctx, req.UserID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "xp recalculate job failed", "user_id", req.UserID, "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, xpRecalculateResponse{
		UserID:   req.UserID,
		LeagueID: req.LeagueID,
		Awarded:  awarded,
	})
}

func (h *Handler) RunXPSweepJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunXPSweepJob")
	defer span.End()

	result, err := h.awardService.SweepAllUsers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "xp sweep job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
