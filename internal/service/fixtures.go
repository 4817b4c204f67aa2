package service

import (
	"fmt"
	"time"

	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
)

// Round-robin pairings by roster position, two per matchday
var groupPairings = [][2]int{
	{0, 1}, {2, 3},
	{0, 2}, {1, 3},
	{0, 3}, {1, 2},
}

var kickOffTimes = []string{"13:00", "16:00", "19:00", "21:00"}

var groupStageStart = time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC)

const daysBetweenMatchdays = 4

// GenerateInitialFixtures creates the 72 unplayed group stage matches, M1 to
// M72, in group order. Groups kick off on consecutive days and each matchday
// is four days after the previous one.
func GenerateInitialFixtures() []tournament.Match {
	groups := tournament.Groups()
	stadiums := tournament.Stadiums()
	matches := make([]tournament.Match, 0, len(groups)*len(groupPairings))

	counter := 1
	for gi, group := range groups {
		teams := tournament.GroupTeams(gi)

		for p, pair := range groupPairings {
			matchday := p / 2
			id := fmt.Sprintf("M%d", counter)
			counter++

			home := teams[pair[0]].ID
			away := teams[pair[1]].ID

			matches = append(matches, tournament.Match{
				ID:         id,
				HomeTeamID: &home,
				AwayTeamID: &away,
				Date:       groupStageStart.AddDate(0, 0, matchday*daysBetweenMatchdays+gi).Format(time.DateOnly),
				Time:       kickOffTimes[counter%len(kickOffTimes)],
				StadiumID:  stadiums[counter%len(stadiums)].ID,
				Stage:      tournament.StageGroup,
				Group:      group,
			})
		}
	}

	return matches
}
