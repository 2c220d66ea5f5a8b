package postgres

import (
	"time"

	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
)

type matchStatTableModel struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	MatchID       string    `db:"match_id"`
	Goals         int       `db:"goals"`
	Assists       int       `db:"assists"`
	CleanSheets   int       `db:"clean_sheets"`
	Penalties     int       `db:"penalties"`
	FreeKicks     int       `db:"free_kicks"`
	YellowCards   int       `db:"yellow_cards"`
	RedCards      int       `db:"red_cards"`
	MinutesPlayed int       `db:"minutes_played"`
	Rating        float64   `db:"rating"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (m matchStatTableModel) toDomain() matchstat.Stat {
	return matchstat.Stat{
		ID:            m.ID,
		UserID:        m.UserID,
		MatchID:       m.MatchID,
		Goals:         m.Goals,
		Assists:       m.Assists,
		CleanSheets:   m.CleanSheets,
		Penalties:     m.Penalties,
		FreeKicks:     m.FreeKicks,
		YellowCards:   m.YellowCards,
		RedCards:      m.RedCards,
		MinutesPlayed: m.MinutesPlayed,
		Rating:        m.Rating,
	}
}
