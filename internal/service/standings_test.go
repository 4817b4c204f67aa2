package service

import (
	"testing"

	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/AdamBeresnev/worldcup-sim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStandings_GroupAScenario(t *testing.T) {
	matches := GenerateInitialFixtures()

	// Group A roster order: mx, eg, pl, kr
	setResult(t, matches, "M1", 3, 0) // mx - eg
	setResult(t, matches, "M2", 1, 1) // pl - kr
	setResult(t, matches, "M3", 2, 1) // mx - pl
	setResult(t, matches, "M4", 0, 0) // eg - kr
	setResult(t, matches, "M5", 1, 0) // mx - kr
	setResult(t, matches, "M6", 2, 2) // eg - pl

	standings := ComputeStandings(matches)
	table := standings["A"]
	require.Len(t, table, 4)

	expected := []tournament.GroupStanding{
		{TeamID: "mx", Group: "A", Played: 3, Won: 3, GoalsFor: 6, GoalsAgainst: 1, GoalDifference: 5, Points: 9, Rank: 1},
		{TeamID: "pl", Group: "A", Played: 3, Drawn: 2, Lost: 1, GoalsFor: 4, GoalsAgainst: 5, GoalDifference: -1, Points: 2, Rank: 2},
		{TeamID: "kr", Group: "A", Played: 3, Drawn: 2, Lost: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1, Points: 2, Rank: 3},
		{TeamID: "eg", Group: "A", Played: 3, Drawn: 2, Lost: 1, GoalsFor: 2, GoalsAgainst: 5, GoalDifference: -3, Points: 2, Rank: 4},
	}
	assert.Equal(t, expected, table)

	// Other groups exist but have no results yet
	require.Len(t, standings, 12)
	for _, row := range standings["B"] {
		assert.Zero(t, row.Played)
		assert.Zero(t, row.Points)
	}
}

func TestComputeStandings_Laws(t *testing.T) {
	matches := GenerateInitialFixtures()
	for i := range matches {
		// Spread of wins, draws and losses that differs per match
		setResult(t, matches, matches[i].ID, i%4, (i*7)%3)
	}

	standings := ComputeStandings(matches)
	require.Len(t, standings, 12)

	for label, table := range standings {
		require.Len(t, table, 4, "group %s", label)
		for i, row := range table {
			assert.Equal(t, 3*row.Won+row.Drawn, row.Points, "points law for %s", row.TeamID)
			assert.Equal(t, row.GoalsFor-row.GoalsAgainst, row.GoalDifference, "goal difference law for %s", row.TeamID)
			assert.Equal(t, row.Won+row.Drawn+row.Lost, row.Played)
			assert.Equal(t, i+1, row.Rank)
			assert.Equal(t, label, row.Group)

			if i == 0 {
				continue
			}
			prev := table[i-1]
			assert.False(t, row.RanksAhead(prev), "group %s rows %d and %d out of order", label, i, i+1)
		}
	}
}

func TestComputeStandings_Deterministic(t *testing.T) {
	matches := GenerateInitialFixtures()
	playGroupStageHomeWins(t, matches)
	// A few draws so that ties have to be kept in insertion order
	setResult(t, matches, "M7", 0, 0)
	setResult(t, matches, "M8", 0, 0)

	first := ComputeStandings(matches)
	second := ComputeStandings(matches)
	assert.Equal(t, first, second)
}

func TestComputeStandings_TiesKeepInsertionOrder(t *testing.T) {
	matches := GenerateInitialFixtures()

	standings := ComputeStandings(matches)
	assert.Equal(t, []string{"mx", "eg", "pl", "kr"}, teamIDs(standings["A"]))
	assert.Equal(t, []string{"ci", "gr", "pa", "ie"}, teamIDs(standings["L"]))
}

func TestComputeStandings_LazyRows(t *testing.T) {
	matches := []tournament.Match{
		{ID: "M1", HomeTeamID: utils.Ptr("mx"), AwayTeamID: utils.Ptr("eg"), Stage: tournament.StageGroup, Group: "A", HomeScore: utils.Ptr(0), AwayScore: utils.Ptr(2)},
		// Knockout matches never count towards a group
		{ID: "R32-1", HomeTeamID: utils.Ptr("mx"), AwayTeamID: utils.Ptr("pl"), Stage: tournament.StageRoundOf32, HomeScore: utils.Ptr(5), AwayScore: utils.Ptr(0)},
		// Undetermined slots do not create rows
		{ID: "M2", HomeTeamID: utils.Ptr("ca"), Stage: tournament.StageGroup, Group: "B", HomeScore: utils.Ptr(1), AwayScore: utils.Ptr(1)},
	}

	standings := ComputeStandings(matches)

	assert.Equal(t, []string{"eg", "mx"}, teamIDs(standings["A"]))
	assert.Equal(t, 3, standings["A"][0].Points)
	assert.Equal(t, 1, standings["A"][1].Played)

	require.Len(t, standings["B"], 1)
	assert.Equal(t, 0, standings["B"][0].Played, "a match with a missing team is not counted")
	assert.Equal(t, []string{"A", "B"}, standings.Labels())
}

func TestComputeStandings_DoesNotModifyInput(t *testing.T) {
	matches := GenerateInitialFixtures()
	playGroupStageHomeWins(t, matches)
	before := tournament.CloneMatches(matches)

	ComputeStandings(matches)

	assert.Equal(t, before, matches)
}

func TestComputeStandings_Empty(t *testing.T) {
	assert.Empty(t, ComputeStandings(nil))
}
