package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/matchdayhq/sunday-league/internal/domain/user"
	usermock "github.com/matchdayhq/sunday-league/internal/mocks/domain/user"
	votemock "github.com/matchdayhq/sunday-league/internal/mocks/domain/vote"
)

func TestProgressService_GetProgress_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := usermock.NewRepository(t)
	voteRepo := votemock.NewRepository(t)

	service := NewProgressService(userRepo, voteRepo)
	userID := "usr-ade"

	userRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), userID).
		Return(user.User{
			ID:           userID,
			FirstName:    "Ade",
			LastName:     "Okafor",
			XP:           250,
			Achievements: []string{"hat_trick_3_matches", "captain_5_wins"},
		}, true, nil).
		Once()
	voteRepo.
		On("CountForUser", mock.MatchedBy(func(v context.Context) bool { return v != nil }), userID).
		Return(7, nil).
		Once()

	got, err := service.GetProgress(ctx, userID)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if got.XP != 250 {
		t.Fatalf("unexpected xp: got=%d want=250", got.XP)
	}
	if len(got.Achievements) != 2 {
		t.Fatalf("unexpected achievement count: got=%d want=2", len(got.Achievements))
	}
	if got.Achievements[0].ID != "hat_trick_3_matches" || got.Achievements[0].XP != 100 {
		t.Fatalf("unexpected first achievement: %+v", got.Achievements[0])
	}
	if got.VotesReceived != 7 {
		t.Fatalf("unexpected votes received: got=%d want=7", got.VotesReceived)
	}
}

func TestProgressService_GetProgress_UserNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := usermock.NewRepository(t)
	voteRepo := votemock.NewRepository(t)

	service := NewProgressService(userRepo, voteRepo)
	userID := "missing-user"

	userRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), userID).
		Return(user.User{}, false, nil).
		Once()

	_, err := service.GetProgress(ctx, userID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProgressService_GetProgress_UnknownAchievementKeepsID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := usermock.NewRepository(t)
	voteRepo := votemock.NewRepository(t)

	service := NewProgressService(userRepo, voteRepo)
	userID := "usr-ben"

	userRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), userID).
		Return(user.User{
			ID:           userID,
			XP:           75,
			Achievements: []string{"legacy_badge_2019"},
		}, true, nil).
		Once()
	voteRepo.
		On("CountForUser", mock.MatchedBy(func(v context.Context) bool { return v != nil }), userID).
		Return(0, nil).
		Once()

	got, err := service.GetProgress(ctx, userID)
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if len(got.Achievements) != 1 {
		t.Fatalf("unexpected achievement count: got=%d want=1", len(got.Achievements))
	}
	if got.Achievements[0].ID != "legacy_badge_2019" || got.Achievements[0].XP != 0 {
		t.Fatalf("expected bare id for unknown achievement, got %+v", got.Achievements[0])
	}
}
