package user

import (
	"context"
	"errors"
)

// ErrVersionConflict is returned by UpdateProgress when the stored row no
// longer carries the version the caller read.
var ErrVersionConflict = errors.New("user version conflict")

// Repository describes user persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, userID string) (User, bool, error)
	ListIDs(ctx context.Context) ([]string, error)
	// UpdateProgress persists XP and Achievements of the given user if and
	// only if the stored version still equals u.Version. On success the
	// stored version is incremented; on a stale version it returns
	// ErrVersionConflict and writes nothing.
	UpdateProgress(ctx context.Context, u User) error
}
