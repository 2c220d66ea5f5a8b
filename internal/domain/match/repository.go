package match

import "context"

// Result carries the final score recorded when a match completes.
type Result struct {
	HomeGoals int
	AwayGoals int
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// ListCompletedByLeague returns completed matches of a league ordered
	// by date ascending.
	ListCompletedByLeague(ctx context.Context, leagueID string) ([]Match, error)
	// Complete transitions a match to completed and stores its final score.
	Complete(ctx context.Context, matchID string, result Result) error
}
