package match

import (
	"strings"
	"time"
)

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Match is one fixture of a league. Scores are pointers: nil means the
// side was never scored, which is distinct from zero goals.
type Match struct {
	ID            string
	LeagueID      string
	Date          time.Time
	Location      string
	Status        string
	HomeTeamName  string
	AwayTeamName  string
	HomeGoals     *int
	AwayGoals     *int
	HomeRoster    []string
	AwayRoster    []string
	HomeCaptainID *string
	AwayCaptainID *string
}

func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func (m Match) IsCompleted() bool {
	return NormalizeStatus(m.Status) == StatusCompleted
}

// HomeWon reports a strict home win. An unscored side is never a win.
func (m Match) HomeWon() bool {
	if m.HomeGoals == nil || m.AwayGoals == nil {
		return false
	}
	return *m.HomeGoals > *m.AwayGoals
}

func (m Match) AwayWon() bool {
	if m.HomeGoals == nil || m.AwayGoals == nil {
		return false
	}
	return *m.AwayGoals > *m.HomeGoals
}

// WonBy reports whether the user was on the winning roster.
func (m Match) WonBy(userID string) bool {
	if m.HomeWon() && containsID(m.HomeRoster, userID) {
		return true
	}
	if m.AwayWon() && containsID(m.AwayRoster, userID) {
		return true
	}
	return false
}

// CaptainedWinBy reports whether the user was recorded as a captain and
// that captain's side won.
func (m Match) CaptainedWinBy(userID string) bool {
	if m.HomeCaptainID != nil && *m.HomeCaptainID == userID && m.HomeWon() {
		return true
	}
	if m.AwayCaptainID != nil && *m.AwayCaptainID == userID && m.AwayWon() {
		return true
	}
	return false
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
