package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/matchdayhq/sunday-league/internal/domain/match"
)

type matchTableModel struct {
	ID            string         `db:"id"`
	LeagueID      string         `db:"league_id"`
	Date          time.Time      `db:"date"`
	Location      string         `db:"location"`
	Status        string         `db:"status"`
	HomeTeamName  string         `db:"home_team_name"`
	AwayTeamName  string         `db:"away_team_name"`
	HomeGoals     *int           `db:"home_goals"`
	AwayGoals     *int           `db:"away_goals"`
	HomeRoster    pq.StringArray `db:"home_roster"`
	AwayRoster    pq.StringArray `db:"away_roster"`
	HomeCaptainID *string        `db:"home_captain_id"`
	AwayCaptainID *string        `db:"away_captain_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		LeagueID:      m.LeagueID,
		Date:          m.Date,
		Location:      m.Location,
		Status:        m.Status,
		HomeTeamName:  m.HomeTeamName,
		AwayTeamName:  m.AwayTeamName,
		HomeGoals:     m.HomeGoals,
		AwayGoals:     m.AwayGoals,
		HomeRoster:    append([]string(nil), m.HomeRoster...),
		AwayRoster:    append([]string(nil), m.AwayRoster...),
		HomeCaptainID: m.HomeCaptainID,
		AwayCaptainID: m.AwayCaptainID,
	}
}
