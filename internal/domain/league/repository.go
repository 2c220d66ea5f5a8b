package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	ListByUser(ctx context.Context, userID string) ([]League, error)
	ListMemberIDs(ctx context.Context, leagueID string) ([]string, error)
	SetStatus(ctx context.Context, leagueID, status string) error
}
