package matchstat

import "context"

// Repository describes match-statistic persistence needs from use cases.
type Repository interface {
	// ListByUserAndLeague returns the user's stats for completed matches of
	// the league, keyed however the store likes; order is not guaranteed.
	ListByUserAndLeague(ctx context.Context, userID, leagueID string) ([]Stat, error)
	// Upsert stores a stat line, replacing any prior record for the same
	// (user, match) pair.
	Upsert(ctx context.Context, stat Stat) error
}
