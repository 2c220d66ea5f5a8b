package vote

// Vote is a man-of-the-match ballot: one voter, one candidate, at most one
// live vote per (voter, match). A re-vote replaces the prior ballot.
type Vote struct {
	ID         string
	MatchID    string
	VoterID    string
	VotedForID string
}

// Tally is the aggregated vote count for one candidate in one match.
type Tally struct {
	MatchID     string
	CandidateID string
	Votes       int
}
