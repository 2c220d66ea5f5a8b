package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/sunday-league/internal/domain/match"
	qb "github.com/matchdayhq/sunday-league/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListCompletedByLeague(ctx context.Context, leagueID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("status", match.StatusCompleted),
		).
		OrderBy("date ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select completed matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select completed matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) Complete(ctx context.Context, matchID string, result match.Result) error {
	query, args, err := qb.Update("matches").
		Set("status", match.StatusCompleted).
		Set("home_goals", result.HomeGoals).
		Set("away_goals", result.AwayGoals).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build complete match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("complete match: %w", err)
	}

	return nil
}
