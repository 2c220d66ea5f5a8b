package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/matchdayhq/sunday-league/internal/domain/user"
	qb "github.com/matchdayhq/sunday-league/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by id query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *UserRepository) ListIDs(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("id").From("users").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list user ids query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}

	return ids, nil
}

// UpdateProgress applies the gamification fields with an optimistic guard:
// the row is touched only when its stored version still matches.
func (r *UserRepository) UpdateProgress(ctx context.Context, u user.User) error {
	query, args, err := qb.Update("users").
		Set("xp", u.XP).
		Set("achievements", pq.StringArray(u.Achievements)).
		Set("updated_at", u.UpdatedAt).
		SetExpr("version", "version + 1").
		Where(
			qb.Eq("id", u.ID),
			qb.Eq("version", u.Version),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update user progress query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update user progress: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user progress rows affected: %w", err)
	}
	if affected == 0 {
		return user.ErrVersionConflict
	}

	return nil
}
