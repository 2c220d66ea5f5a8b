package user

import (
	"fmt"
	"time"
)

// User is a registered player. XP and Achievements are the gamification
// fields this service mutates; everything else belongs to the account flows.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Position     string
	ShirtNumber  string
	XP           int
	Achievements []string
	// Version guards the read-modify-write of XP/Achievements. Repositories
	// bump it on every successful update.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.XP < 0 {
		return fmt.Errorf("user xp cannot be negative")
	}

	return nil
}

// HasAchievement reports whether the achievement id was already awarded.
func (u User) HasAchievement(achievementID string) bool {
	for _, id := range u.Achievements {
		if id == achievementID {
			return true
		}
	}
	return false
}
