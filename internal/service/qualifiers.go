package service

import "github.com/AdamBeresnev/worldcup-sim/internal/tournament"

// MaxQualifiers is the number of third-placed teams that reach the Round of 32.
const MaxQualifiers = 8

// ComputeQualifiers ranks the third-placed team of every group that has at
// least three rows and keeps the best MaxQualifiers. Early in the tournament
// fewer groups qualify and the result is shorter.
func ComputeQualifiers(standings tournament.Standings) []tournament.GroupStanding {
	thirds := make([]tournament.GroupStanding, 0, len(standings))
	for _, label := range standings.Labels() {
		table := standings[label]
		if len(table) < 3 {
			continue
		}
		thirds = append(thirds, table[2])
	}

	sortStandings(thirds)

	if len(thirds) > MaxQualifiers {
		thirds = thirds[:MaxQualifiers]
	}
	return thirds
}
