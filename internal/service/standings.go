package service

import (
	"sort"

	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
)

// ComputeStandings builds the ranked table of every group that has at least
// one group stage match. Rows are created the first time a team shows up in a
// fixture, so a team without fixtures has no row. The input is not modified.
func ComputeStandings(matches []tournament.Match) tournament.Standings {
	rows := make(map[string]map[string]*tournament.GroupStanding)
	// Insertion order per group, kept so that full ties stay in encounter order
	order := make(map[string][]string)

	row := func(group string, teamID *string) *tournament.GroupStanding {
		if teamID == nil {
			return nil
		}
		if rows[group] == nil {
			rows[group] = make(map[string]*tournament.GroupStanding)
		}
		s, ok := rows[group][*teamID]
		if !ok {
			s = &tournament.GroupStanding{TeamID: *teamID, Group: group}
			rows[group][*teamID] = s
			order[group] = append(order[group], *teamID)
		}
		return s
	}

	for i := range matches {
		m := &matches[i]
		if m.Stage != tournament.StageGroup || m.Group == "" {
			continue
		}

		home := row(m.Group, m.HomeTeamID)
		away := row(m.Group, m.AwayTeamID)

		if home == nil || away == nil || !m.IsPlayed() {
			continue
		}
		recordResult(home, away, *m.HomeScore, *m.AwayScore)
	}

	standings := make(tournament.Standings, len(order))
	for group, ids := range order {
		table := make([]tournament.GroupStanding, 0, len(ids))
		for _, id := range ids {
			table = append(table, *rows[group][id])
		}
		sortStandings(table)
		for i := range table {
			table[i].Rank = i + 1
		}
		standings[group] = table
	}

	return standings
}

func recordResult(home, away *tournament.GroupStanding, homeGoals, awayGoals int) {
	home.Played++
	away.Played++
	home.GoalsFor += homeGoals
	home.GoalsAgainst += awayGoals
	away.GoalsFor += awayGoals
	away.GoalsAgainst += homeGoals
	home.GoalDifference = home.GoalsFor - home.GoalsAgainst
	away.GoalDifference = away.GoalsFor - away.GoalsAgainst

	switch {
	case homeGoals > awayGoals:
		home.Won++
		home.Points += pointsForWin
		away.Lost++
	case homeGoals < awayGoals:
		away.Won++
		away.Points += pointsForWin
		home.Lost++
	default:
		home.Drawn++
		away.Drawn++
		home.Points += pointsForDraw
		away.Points += pointsForDraw
	}
}

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// sortStandings orders by points, goal difference and goals scored. It is
// stable, there is no head-to-head or fair play tiebreak.
func sortStandings(table []tournament.GroupStanding) {
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].RanksAhead(table[j])
	})
}
