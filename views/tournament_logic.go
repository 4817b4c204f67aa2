package views

import (
	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
)

type BracketRound struct {
	Stage   tournament.Stage
	Matches []tournament.Match
}

type BracketData struct {
	Rounds []BracketRound
	// Set once a semi final loser is known
	ThirdPlace *tournament.Match
}

var roundOrder = []tournament.Stage{
	tournament.StageRoundOf32,
	tournament.StageRoundOf16,
	tournament.StageQuarterFinals,
	tournament.StageSemiFinals,
	tournament.StageFinal,
}

// PrepareBracketData groups the resolved knockout matches into rounds for
// display. Rounds without any visible match are left out.
func PrepareBracketData(knockout []tournament.Match) BracketData {
	byStage := make(map[tournament.Stage][]tournament.Match)
	var data BracketData

	for _, m := range knockout {
		if m.Stage == tournament.StageThirdPlace {
			third := m
			data.ThirdPlace = &third
			continue
		}
		byStage[m.Stage] = append(byStage[m.Stage], m)
	}

	for _, stage := range roundOrder {
		if matches := byStage[stage]; len(matches) > 0 {
			data.Rounds = append(data.Rounds, BracketRound{Stage: stage, Matches: matches})
		}
	}
	return data
}
