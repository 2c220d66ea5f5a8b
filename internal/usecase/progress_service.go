package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/matchdayhq/sunday-league/internal/domain/achievement"
	"github.com/matchdayhq/sunday-league/internal/domain/user"
	"github.com/matchdayhq/sunday-league/internal/domain/vote"
)

// ProgressService is the read side of the gamification layer: a user's XP,
// awarded achievement details and votes received.
type ProgressService struct {
	userRepo user.Repository
	voteRepo vote.Repository
}

func NewProgressService(userRepo user.Repository, voteRepo vote.Repository) *ProgressService {
	return &ProgressService{
		userRepo: userRepo,
		voteRepo: voteRepo,
	}
}

type AwardedAchievement struct {
	ID          string
	Description string
	XP          int
}

type Progress struct {
	UserID        string
	FirstName     string
	LastName      string
	XP            int
	Achievements  []AwardedAchievement
	VotesReceived int
}

func (s *ProgressService) GetProgress(ctx context.Context, userID string) (Progress, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProgressService.GetProgress")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Progress{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	current, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return Progress{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return Progress{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}

	votesReceived, err := s.voteRepo.CountForUser(ctx, userID)
	if err != nil {
		return Progress{}, fmt.Errorf("count votes user=%s: %w", userID, err)
	}

	awards := make([]AwardedAchievement, 0, len(current.Achievements))
	for _, id := range current.Achievements {
		def, ok := achievement.Lookup(id)
		if !ok {
			// Awarded under a catalog revision this build no longer knows;
			// keep the id visible rather than hiding the grant.
			awards = append(awards, AwardedAchievement{ID: id})
			continue
		}
		awards = append(awards, AwardedAchievement{
			ID:          def.ID,
			Description: def.Description,
			XP:          def.XP,
		})
	}

	return Progress{
		UserID:        current.ID,
		FirstName:     current.FirstName,
		LastName:      current.LastName,
		XP:            current.XP,
		Achievements:  awards,
		VotesReceived: votesReceived,
	}, nil
}
