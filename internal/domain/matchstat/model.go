package matchstat

import "fmt"

// Stat is a per-(user, match) performance record, unique on that pair.
// Match-reporting flows own the writes; the achievements engine reads.
type Stat struct {
	ID            string
	UserID        string
	MatchID       string
	Goals         int
	Assists       int
	CleanSheets   int
	Penalties     int
	FreeKicks     int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
	Rating        float64
}

func (s Stat) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("stat user id is required")
	}
	if s.MatchID == "" {
		return fmt.Errorf("stat match id is required")
	}
	if s.Goals < 0 || s.Assists < 0 || s.CleanSheets < 0 || s.MinutesPlayed < 0 {
		return fmt.Errorf("stat counters cannot be negative")
	}

	return nil
}
