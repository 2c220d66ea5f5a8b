package memory

import (
	"time"

	"github.com/matchdayhq/sunday-league/internal/domain/league"
	"github.com/matchdayhq/sunday-league/internal/domain/match"
	"github.com/matchdayhq/sunday-league/internal/domain/matchstat"
	"github.com/matchdayhq/sunday-league/internal/domain/user"
	"github.com/matchdayhq/sunday-league/internal/domain/vote"
)

const (
	LeagueIDHackneySunday = "hackney-sunday-2026"
	LeagueIDCamdenMidweek = "camden-midweek-2026"
)

func SeedUsers() []user.User {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return []user.User{
		{ID: "usr-ade", FirstName: "Ade", LastName: "Okafor", Email: "ade@example.com", Position: "forward", ShirtNumber: "9", CreatedAt: now, UpdatedAt: now},
		{ID: "usr-ben", FirstName: "Ben", LastName: "Whitfield", Email: "ben@example.com", Position: "midfielder", ShirtNumber: "8", CreatedAt: now, UpdatedAt: now},
		{ID: "usr-carlos", FirstName: "Carlos", LastName: "Mendes", Email: "carlos@example.com", Position: "defender", ShirtNumber: "4", CreatedAt: now, UpdatedAt: now},
		{ID: "usr-dan", FirstName: "Dan", LastName: "Petrov", Email: "dan@example.com", Position: "goalkeeper", ShirtNumber: "1", CreatedAt: now, UpdatedAt: now},
		{ID: "usr-emre", FirstName: "Emre", LastName: "Yilmaz", Email: "emre@example.com", Position: "midfielder", ShirtNumber: "10", CreatedAt: now, UpdatedAt: now},
		{ID: "usr-femi", FirstName: "Femi", LastName: "Adeyemi", Email: "femi@example.com", Position: "forward", ShirtNumber: "11", CreatedAt: now, UpdatedAt: now},
	}
}

func SeedLeagues() []league.League {
	return []league.League{
		{ID: LeagueIDHackneySunday, Name: "Hackney Marshes Sunday League", Season: "2026", Status: league.StatusActive},
		{ID: LeagueIDCamdenMidweek, Name: "Camden Midweek Sixes", Season: "2026", Status: league.StatusActive},
	}
}

func SeedMemberships() []Membership {
	return []Membership{
		{LeagueID: LeagueIDHackneySunday, UserID: "usr-ade"},
		{LeagueID: LeagueIDHackneySunday, UserID: "usr-ben"},
		{LeagueID: LeagueIDHackneySunday, UserID: "usr-carlos"},
		{LeagueID: LeagueIDHackneySunday, UserID: "usr-dan"},
		{LeagueID: LeagueIDCamdenMidweek, UserID: "usr-ade"},
		{LeagueID: LeagueIDCamdenMidweek, UserID: "usr-emre"},
		{LeagueID: LeagueIDCamdenMidweek, UserID: "usr-femi"},
	}
}

func SeedMatches() []match.Match {
	captainAde := "usr-ade"
	captainEmre := "usr-emre"

	scored := func(home, away int) (*int, *int) {
		return &home, &away
	}

	m1Home, m1Away := scored(4, 1)
	m2Home, m2Away := scored(2, 2)
	m3Home, m3Away := scored(3, 0)

	return []match.Match{
		{
			ID:            "mtc-hkn-001",
			LeagueID:      LeagueIDHackneySunday,
			Date:          time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC),
			Location:      "Hackney Marshes Pitch 4",
			Status:        match.StatusCompleted,
			HomeTeamName:  "Red Lions",
			AwayTeamName:  "Marsh Rovers",
			HomeGoals:     m1Home,
			AwayGoals:     m1Away,
			HomeRoster:    []string{"usr-ade", "usr-ben", "usr-dan"},
			AwayRoster:    []string{"usr-carlos"},
			HomeCaptainID: &captainAde,
		},
		{
			ID:           "mtc-hkn-002",
			LeagueID:     LeagueIDHackneySunday,
			Date:         time.Date(2026, 2, 8, 10, 30, 0, 0, time.UTC),
			Location:     "Hackney Marshes Pitch 2",
			Status:       match.StatusCompleted,
			HomeTeamName: "Red Lions",
			AwayTeamName: "Clapton Casuals",
			HomeGoals:    m2Home,
			AwayGoals:    m2Away,
			HomeRoster:   []string{"usr-ade", "usr-ben"},
			AwayRoster:   []string{"usr-carlos", "usr-dan"},
		},
		{
			ID:            "mtc-cmd-001",
			LeagueID:      LeagueIDCamdenMidweek,
			Date:          time.Date(2026, 2, 4, 19, 0, 0, 0, time.UTC),
			Location:      "Talacre Sports Centre",
			Status:        match.StatusCompleted,
			HomeTeamName:  "Kentish Towners",
			AwayTeamName:  "Camden Locks",
			HomeGoals:     m3Home,
			AwayGoals:     m3Away,
			HomeRoster:    []string{"usr-emre", "usr-ade"},
			AwayRoster:    []string{"usr-femi"},
			HomeCaptainID: &captainEmre,
		},
		{
			ID:           "mtc-hkn-003",
			LeagueID:     LeagueIDHackneySunday,
			Date:         time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC),
			Location:     "Hackney Marshes Pitch 4",
			Status:       match.StatusScheduled,
			HomeTeamName: "Marsh Rovers",
			AwayTeamName: "Red Lions",
			HomeRoster:   []string{"usr-carlos"},
			AwayRoster:   []string{"usr-ade", "usr-ben", "usr-dan"},
		},
	}
}

func SeedMatchStats() []matchstat.Stat {
	return []matchstat.Stat{
		{ID: "sts-001", UserID: "usr-ade", MatchID: "mtc-hkn-001", Goals: 3, Assists: 1, MinutesPlayed: 90, Rating: 9.1},
		{ID: "sts-002", UserID: "usr-ben", MatchID: "mtc-hkn-001", Goals: 1, Assists: 2, MinutesPlayed: 90, Rating: 7.8},
		{ID: "sts-003", UserID: "usr-dan", MatchID: "mtc-hkn-001", CleanSheets: 0, MinutesPlayed: 90, Rating: 6.9},
		{ID: "sts-004", UserID: "usr-ade", MatchID: "mtc-hkn-002", Goals: 1, MinutesPlayed: 85, Rating: 7.2},
		{ID: "sts-005", UserID: "usr-emre", MatchID: "mtc-cmd-001", Goals: 2, Assists: 1, MinutesPlayed: 60, Rating: 8.5},
		{ID: "sts-006", UserID: "usr-ade", MatchID: "mtc-cmd-001", Goals: 1, MinutesPlayed: 60, Rating: 7.4},
	}
}

func SeedVotes() []vote.Vote {
	return []vote.Vote{
		{ID: "vot-001", MatchID: "mtc-hkn-001", VoterID: "usr-ben", VotedForID: "usr-ade"},
		{ID: "vot-002", MatchID: "mtc-hkn-001", VoterID: "usr-dan", VotedForID: "usr-ade"},
		{ID: "vot-003", MatchID: "mtc-hkn-001", VoterID: "usr-carlos", VotedForID: "usr-ben"},
		{ID: "vot-004", MatchID: "mtc-cmd-001", VoterID: "usr-femi", VotedForID: "usr-emre"},
		{ID: "vot-005", MatchID: "mtc-cmd-001", VoterID: "usr-ade", VotedForID: "usr-emre"},
	}
}
