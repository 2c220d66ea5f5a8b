package memory

import (
	"context"
	"sync"

	"github.com/matchdayhq/sunday-league/internal/domain/league"
)

// Membership links one user to one league.
type Membership struct {
	LeagueID string
	UserID   string
}

type LeagueRepository struct {
	mu      sync.RWMutex
	items   map[string]league.League
	orders  []string
	members []Membership
}

func NewLeagueRepository(leagues []league.League, members []Membership) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:   items,
		orders:  orders,
		members: append([]Membership(nil), members...),
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) ListByUser(_ context.Context, userID string) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	joined := make(map[string]struct{})
	for _, m := range r.members {
		if m.UserID == userID {
			joined[m.LeagueID] = struct{}{}
		}
	}

	out := make([]league.League, 0, len(joined))
	for _, id := range r.orders {
		if _, ok := joined[id]; ok {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}

func (r *LeagueRepository) ListMemberIDs(_ context.Context, leagueID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0)
	for _, m := range r.members {
		if m.LeagueID == leagueID {
			out = append(out, m.UserID)
		}
	}

	return out, nil
}

func (r *LeagueRepository) SetStatus(_ context.Context, leagueID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return nil
	}
	l.Status = status
	r.items[leagueID] = l

	return nil
}
