package postgres

import (
	"time"

	"github.com/matchdayhq/sunday-league/internal/domain/league"
)

type leagueTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Season    string    `db:"season"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:     m.ID,
		Name:   m.Name,
		Season: m.Season,
		Status: m.Status,
	}
}
