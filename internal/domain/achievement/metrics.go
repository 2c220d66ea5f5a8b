package achievement

// MetricKey names one aggregated metric a catalog entry can gate on.
type MetricKey string

const (
	MetricHatTrickMatches           MetricKey = "hat_trick_matches"
	MetricCaptainWins               MetricKey = "captain_wins"
	MetricConsecutiveAssists        MetricKey = "consecutive_assists"
	MetricConsecutiveGoals          MetricKey = "consecutive_goals"
	MetricCaptainPerformancePicks   MetricKey = "captain_performance_picks"
	MetricConsecutiveMOTM           MetricKey = "consecutive_motm"
	MetricConsecutiveCleanSheetWins MetricKey = "consecutive_clean_sheet_wins"
	MetricTopSpotMatches            MetricKey = "top_spot_matches"
	MetricConsecutiveWins           MetricKey = "consecutive_wins"
)

// Metrics is the aggregator output for one user and one scope.
//
// CaptainPerformancePicks, ConsecutiveMOTM and TopSpotMatches are always
// zero for now: the rules that would feed them (captain's-pick source,
// MOTM plurality tie-break, top-spot table snapshot) are undecided, and
// guessing one would award achievements on made-up semantics.
type Metrics struct {
	HatTrickMatches           int
	CaptainWins               int
	ConsecutiveAssists        int
	ConsecutiveGoals          int
	CaptainPerformancePicks   int
	ConsecutiveMOTM           int
	ConsecutiveCleanSheetWins int
	TopSpotMatches            int
	ConsecutiveWins           int
}

// Value resolves a metric by key. The second return is false for keys the
// record does not carry.
func (m Metrics) Value(key MetricKey) (int, bool) {
	switch key {
	case MetricHatTrickMatches:
		return m.HatTrickMatches, true
	case MetricCaptainWins:
		return m.CaptainWins, true
	case MetricConsecutiveAssists:
		return m.ConsecutiveAssists, true
	case MetricConsecutiveGoals:
		return m.ConsecutiveGoals, true
	case MetricCaptainPerformancePicks:
		return m.CaptainPerformancePicks, true
	case MetricConsecutiveMOTM:
		return m.ConsecutiveMOTM, true
	case MetricConsecutiveCleanSheetWins:
		return m.ConsecutiveCleanSheetWins, true
	case MetricTopSpotMatches:
		return m.TopSpotMatches, true
	case MetricConsecutiveWins:
		return m.ConsecutiveWins, true
	default:
		return 0, false
	}
}

// CombineLeague folds another league's metrics into m for the all-leagues
// scope. Counters sum across leagues; streaks take the per-league maximum,
// because "consecutive" achievements are scoped to a single league and a
// cross-league combined streak is never computed.
func (m Metrics) CombineLeague(other Metrics) Metrics {
	m.HatTrickMatches += other.HatTrickMatches
	m.CaptainWins += other.CaptainWins
	m.CaptainPerformancePicks += other.CaptainPerformancePicks
	m.TopSpotMatches += other.TopSpotMatches

	m.ConsecutiveAssists = maxInt(m.ConsecutiveAssists, other.ConsecutiveAssists)
	m.ConsecutiveGoals = maxInt(m.ConsecutiveGoals, other.ConsecutiveGoals)
	m.ConsecutiveMOTM = maxInt(m.ConsecutiveMOTM, other.ConsecutiveMOTM)
	m.ConsecutiveCleanSheetWins = maxInt(m.ConsecutiveCleanSheetWins, other.ConsecutiveCleanSheetWins)
	m.ConsecutiveWins = maxInt(m.ConsecutiveWins, other.ConsecutiveWins)

	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
