package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/matchdayhq/sunday-league/internal/domain/user"
)

type userTableModel struct {
	ID           string         `db:"id"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Email        string         `db:"email"`
	Position     string         `db:"position"`
	ShirtNumber  string         `db:"shirt_number"`
	XP           int            `db:"xp"`
	Achievements pq.StringArray `db:"achievements"`
	Version      int            `db:"version"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Position:     m.Position,
		ShirtNumber:  m.ShirtNumber,
		XP:           m.XP,
		Achievements: append([]string(nil), m.Achievements...),
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
