package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
	"github.com/matchdayhq/sunday-league/internal/platform/id"
	qb "github.com/matchdayhq/sunday-league/internal/platform/querybuilder"
)

type MatchStatRepository struct {
	db    *sqlx.DB
	idGen id.Generator
}

func NewMatchStatRepository(db *sqlx.DB, idGen id.Generator) *MatchStatRepository {
	return &MatchStatRepository{db: db, idGen: idGen}
}

func (r *MatchStatRepository) ListByUserAndLeague(ctx context.Context, userID, leagueID string) ([]matchstat.Stat, error) {
	query, args, err := qb.Select("*").From("match_stats").
		Where(
			qb.Eq("user_id", userID),
			qb.Expr(
				"match_id IN (SELECT id FROM matches WHERE league_id = ? AND status = ?)",
				leagueID, match.StatusCompleted,
			),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match stats query: %w", err)
	}

	var rows []matchStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match stats: %w", err)
	}

	out := make([]matchstat.Stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchStatRepository) Upsert(ctx context.Context, stat matchstat.Stat) error {
	if stat.ID == "" {
		generated, err := r.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate match stat id: %w", err)
		}
		stat.ID = "sts-" + generated
	}

	now := time.Now().UTC()
	model := matchStatTableModel{
		ID:            stat.ID,
		UserID:        stat.UserID,
		MatchID:       stat.MatchID,
		Goals:         stat.Goals,
		Assists:       stat.Assists,
		CleanSheets:   stat.CleanSheets,
		Penalties:     stat.Penalties,
		FreeKicks:     stat.FreeKicks,
		YellowCards:   stat.YellowCards,
		RedCards:      stat.RedCards,
		MinutesPlayed: stat.MinutesPlayed,
		Rating:        stat.Rating,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	query, args, err := qb.InsertModel("match_stats", model, `ON CONFLICT (user_id, match_id) DO UPDATE SET
		goals = EXCLUDED.goals,
		assists = EXCLUDED.assists,
		clean_sheets = EXCLUDED.clean_sheets,
		penalties = EXCLUDED.penalties,
		free_kicks = EXCLUDED.free_kicks,
		yellow_cards = EXCLUDED.yellow_cards,
		red_cards = EXCLUDED.red_cards,
		minutes_played = EXCLUDED.minutes_played,
		rating = EXCLUDED.rating,
		updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert match stat query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match stat: %w", err)
	}

	return nil
}
