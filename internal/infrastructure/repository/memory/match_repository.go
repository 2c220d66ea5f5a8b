package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchdayhq/sunday-league/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]match.Match
	orders []string
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	orders := make([]string, 0, len(matches))

	for _, m := range matches {
		items[m.ID] = m
		orders = append(orders, m.ID)
	}

	return &MatchRepository{
		items:  items,
		orders: orders,
	}
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) ListCompletedByLeague(_ context.Context, leagueID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, id := range r.orders {
		m := r.items[id]
		if m.LeagueID == leagueID && m.IsCompleted() {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (r *MatchRepository) Complete(_ context.Context, matchID string, result match.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok {
		return nil
	}

	home, away := result.HomeGoals, result.AwayGoals
	m.HomeGoals = &home
	m.AwayGoals = &away
	m.Status = match.StatusCompleted
	r.items[matchID] = m

	return nil
}
