package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/vote"
	qb "github.com/matchdayhq/sunday-league/internal/platform/querybuilder"
)

type VoteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

type voteTallyModel struct {
	MatchID     string `db:"match_id"`
	CandidateID string `db:"voted_for_id"`
	Votes       int    `db:"votes"`
}

func (r *VoteRepository) TallyByLeague(ctx context.Context, leagueID string) ([]vote.Tally, error) {
	query, args, err := qb.Select("match_id", "voted_for_id", "COUNT(*) AS votes").From("votes").
		Where(qb.Expr(
			"match_id IN (SELECT id FROM matches WHERE league_id = ? AND status = ?)",
			leagueID, match.StatusCompleted,
		)).
		GroupBy("match_id", "voted_for_id").
		OrderBy("match_id", "votes DESC", "voted_for_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build tally votes query: %w", err)
	}

	var rows []voteTallyModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("tally votes: %w", err)
	}

	out := make([]vote.Tally, 0, len(rows))
	for _, row := range rows {
		out = append(out, vote.Tally{
			MatchID:     row.MatchID,
			CandidateID: row.CandidateID,
			Votes:       row.Votes,
		})
	}

	return out, nil
}

func (r *VoteRepository) CountForUser(ctx context.Context, userID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("votes").
		Where(
			qb.Eq("voted_for_id", userID),
			qb.Expr("match_id IN (SELECT id FROM matches WHERE status = ?)", match.StatusCompleted),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count votes query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}

	return count, nil
}
