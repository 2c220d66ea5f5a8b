package memory

import (
	"context"
	"sync"

	"github.com/matchdayhq/sunday-league/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	items  map[string]user.User
	orders []string
}

func NewUserRepository(users []user.User) *UserRepository {
	items := make(map[string]user.User, len(users))
	orders := make([]string, 0, len(users))

	for _, u := range users {
		items[u.ID] = u
		orders = append(orders, u.ID)
	}

	return &UserRepository{
		items:  items,
		orders: orders,
	}
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[userID]
	if !ok {
		return user.User{}, false, nil
	}

	return cloneUser(u), true, nil
}

func (r *UserRepository) ListIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.orders))
	copy(out, r.orders)

	return out, nil
}

func (r *UserRepository) UpdateProgress(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[u.ID]
	if !ok {
		return user.ErrVersionConflict
	}
	if stored.Version != u.Version {
		return user.ErrVersionConflict
	}

	u.Version++
	r.items[u.ID] = cloneUser(u)

	return nil
}

// cloneUser copies the achievements slice so callers never share backing
// arrays with the store.
func cloneUser(u user.User) user.User {
	if u.Achievements != nil {
		u.Achievements = append([]string(nil), u.Achievements...)
	}
	return u
}
