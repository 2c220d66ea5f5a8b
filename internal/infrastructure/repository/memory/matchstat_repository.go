package memory

import (
	"context"
	"sync"

	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
)

type statKey struct {
	userID  string
	matchID string
}

// MatchStatRepository keys stats on (user, match) and resolves league
// membership through the match store.
type MatchStatRepository struct {
	mu      sync.RWMutex
	items   map[statKey]matchstat.Stat
	matches *MatchRepository
}

func NewMatchStatRepository(matches *MatchRepository, stats []matchstat.Stat) *MatchStatRepository {
	items := make(map[statKey]matchstat.Stat, len(stats))
	for _, s := range stats {
		items[statKey{userID: s.UserID, matchID: s.MatchID}] = s
	}

	return &MatchStatRepository{
		items:   items,
		matches: matches,
	}
}

func (r *MatchStatRepository) ListByUserAndLeague(ctx context.Context, userID, leagueID string) ([]matchstat.Stat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchstat.Stat, 0)
	for key, s := range r.items {
		if key.userID != userID {
			continue
		}
		m, ok, err := r.matches.GetByID(ctx, key.matchID)
		if err != nil {
			return nil, err
		}
		if !ok || m.LeagueID != leagueID {
			continue
		}
		out = append(out, s)
	}

	return out, nil
}

func (r *MatchStatRepository) Upsert(_ context.Context, stat matchstat.Stat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[statKey{userID: stat.UserID, matchID: stat.MatchID}] = stat

	return nil
}
