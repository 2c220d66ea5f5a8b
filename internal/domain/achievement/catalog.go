package achievement

// Scope declares the boundary an entry's metric is computed over.
type Scope string

const (
	ScopeSingleLeague Scope = "single_league"
	ScopeAllLeagues   Scope = "all_leagues"
)

// Definition is one immutable catalog entry. Thresholds and XP values of
// shipped entries never change; already-awarded grants have no stored
// per-award value to migrate.
type Definition struct {
	ID          string
	Description string
	Scope       Scope
	Metric      MetricKey
	Threshold   int
	XP          int
}

// Qualifies applies the entry's predicate to the given metrics. Unknown
// metric keys never qualify.
func (d Definition) Qualifies(m Metrics) bool {
	value, ok := m.Value(d.Metric)
	if !ok {
		return false
	}
	return value >= d.Threshold
}

// catalog is declaration-ordered; awards are evaluated and appended in
// exactly this order. Extend by appending, never by removing or editing
// shipped entries.
var catalog = []Definition{
	{
		ID:          "hat_trick_3_matches",
		Description: "Scoring 3+ goals in 3 separate matches (within a single league)",
		Scope:       ScopeSingleLeague,
		Metric:      MetricHatTrickMatches,
		Threshold:   3,
		XP:          100,
	},
	{
		ID:          "captain_5_wins",
		Description: "5 wins as captain, leading the team to victory (across all leagues)",
		Scope:       ScopeAllLeagues,
		Metric:      MetricCaptainWins,
		Threshold:   5,
		XP:          150,
	},
	{
		ID:          "assist_10_consecutive",
		Description: "Assist in 10 consecutive matches (within a single league)",
		Scope:       ScopeSingleLeague,
		Metric:      MetricConsecutiveAssists,
		Threshold:   10,
		XP:          200,
	},
	{
		ID:          "scoring_10_consecutive",
		Description: "Scoring in 10 consecutive matches (within a single league)",
		Scope:       ScopeSingleLeague,
		Metric:      MetricConsecutiveGoals,
		Threshold:   10,
		XP:          250,
	},
	{
		ID:          "captain_performance_3",
		Description: "Gets 3 captain's performance picks (within a single league)",
		Scope:       ScopeSingleLeague,
		Metric:      MetricCaptainPerformancePicks,
		Threshold:   3,
		XP:          300,
	},
	{
		ID:          "motm_4_consecutive",
		Description: "4 consecutive 'Man of the Match' performances (across all leagues)",
		Scope:       ScopeAllLeagues,
		Metric:      MetricConsecutiveMOTM,
		Threshold:   4,
		XP:          350,
	},
	{
		ID:          "clean_sheet_5_wins",
		Description: "5 consecutive wins with clean sheets (across all leagues)",
		Scope:       ScopeAllLeagues,
		Metric:      MetricConsecutiveCleanSheetWins,
		Threshold:   5,
		XP:          400,
	},
	{
		ID:          "top_spot_10_matches",
		Description: "Holding top spot in the league for more than 10 matches",
		Scope:       ScopeSingleLeague,
		Metric:      MetricTopSpotMatches,
		Threshold:   10,
		XP:          450,
	},
	{
		ID:          "consecutive_10_victories",
		Description: "Securing 10 consecutive victories in a single league",
		Scope:       ScopeSingleLeague,
		Metric:      MetricConsecutiveWins,
		Threshold:   10,
		XP:          500,
	},
}

// Catalog returns the ordered achievement definitions. Callers get a copy;
// the catalog itself is immutable.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a definition by id.
func Lookup(id string) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
