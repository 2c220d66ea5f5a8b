package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchdayhq/sunday-league/internal/domain/vote"
)

// VoteRepository keeps at most one live ballot per (voter, match).
type VoteRepository struct {
	mu      sync.RWMutex
	items   map[string]vote.Vote
	orders  []string
	matches *MatchRepository
}

func NewVoteRepository(matches *MatchRepository, votes []vote.Vote) *VoteRepository {
	items := make(map[string]vote.Vote, len(votes))
	orders := make([]string, 0, len(votes))

	for _, v := range votes {
		items[v.ID] = v
		orders = append(orders, v.ID)
	}

	return &VoteRepository{
		items:   items,
		orders:  orders,
		matches: matches,
	}
}

func (r *VoteRepository) TallyByLeague(ctx context.Context, leagueID string) ([]vote.Tally, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type tallyKey struct {
		matchID     string
		candidateID string
	}
	counts := make(map[tallyKey]int)

	for _, id := range r.orders {
		v := r.items[id]
		m, ok, err := r.matches.GetByID(ctx, v.MatchID)
		if err != nil {
			return nil, err
		}
		if !ok || m.LeagueID != leagueID || !m.IsCompleted() {
			continue
		}
		counts[tallyKey{matchID: v.MatchID, candidateID: v.VotedForID}]++
	}

	out := make([]vote.Tally, 0, len(counts))
	for key, votes := range counts {
		out = append(out, vote.Tally{
			MatchID:     key.matchID,
			CandidateID: key.candidateID,
			Votes:       votes,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID < out[j].MatchID
		}
		if out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		return out[i].CandidateID < out[j].CandidateID
	})

	return out, nil
}

func (r *VoteRepository) CountForUser(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, id := range r.orders {
		v := r.items[id]
		if v.VotedForID != userID {
			continue
		}
		m, ok, err := r.matches.GetByID(ctx, v.MatchID)
		if err != nil {
			return 0, err
		}
		if !ok || !m.IsCompleted() {
			continue
		}
		count++
	}

	return count, nil
}
