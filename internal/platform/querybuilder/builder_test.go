package querybuilder

import "testing"

func TestSelect_WhereOrderBy(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("matches").
		Where(
			Eq("league_id", "league-1"),
			Eq("status", "completed"),
		).
		OrderBy("date ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM matches WHERE league_id = $1 AND status = $2 ORDER BY date ASC"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 || args[0] != "league-1" || args[1] != "completed" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_EmptyIn(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("users").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	if query != "SELECT id FROM users WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestUpdate_SetExprAndWhere(t *testing.T) {
	t.Parallel()

	query, args, err := Update("users").
		Set("xp", 350).
		SetExpr("version", "version + 1").
		Where(
			Eq("id", "user-1"),
			Eq("version", 4),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE users SET xp = $1, version = version + 1 WHERE id = $2 AND version = $3"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 3 || args[0] != 350 || args[1] != "user-1" || args[2] != 4 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel_UsesDBTags(t *testing.T) {
	t.Parallel()

	type row struct {
		ID     string `db:"id"`
		Goals  int    `db:"goals"`
		Hidden string `db:"-"`
	}

	query, args, err := InsertModel("match_statistics", row{ID: "stat-1", Goals: 2, Hidden: "x"}, "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO match_statistics (id, goals) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 || args[0] != "stat-1" || args[1] != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}
