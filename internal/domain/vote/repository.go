package vote

import "context"

// Repository describes vote persistence needs from use cases.
type Repository interface {
	// TallyByLeague returns per-match per-candidate vote counts for
	// completed matches of the league.
	TallyByLeague(ctx context.Context, leagueID string) ([]Tally, error)
	// CountForUser returns how many ballots name the user across all
	// completed matches.
	CountForUser(ctx context.Context, userID string) (int, error)
}
