package service

import (
	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/AdamBeresnev/worldcup-sim/internal/utils"
)

// knockoutSlot is one of the 31 knockout matches as resolved for the current
// results, before the output filter is applied.
type knockoutSlot struct {
	match  tournament.Match
	stored bool
}

func (s knockoutSlot) visible() bool {
	if s.stored || s.match.Stage == tournament.StageRoundOf32 {
		return true
	}
	return s.match.HomeTeamID != nil || s.match.AwayTeamID != nil
}

// ComputeBracket resolves the knockout stage from the group standings, the
// qualifying third-placed teams and the stored knockout records.
//
// Round of 32 slots are filled from seed codes. Every later match takes the
// winners of the two matches feeding it and the third place match takes the
// semi final losers. A stored record that has a result is returned verbatim,
// which is what lets an edit deep in the bracket survive recomputation.
//
// All Round of 32 matches are returned. Later matches are only returned when
// they are stored or at least one team is known.
func ComputeBracket(standings tournament.Standings, qualifiers []tournament.GroupStanding, knockout []tournament.Match) []tournament.Match {
	slots := resolveKnockout(standings, qualifiers, knockout)

	matches := make([]tournament.Match, 0, len(slots))
	for _, s := range slots {
		if s.visible() {
			matches = append(matches, s.match)
		}
	}
	return matches
}

// resolveKnockout returns every knockout slot in bracket order: R32, R16, QF,
// SF, Final, then the third place match.
func resolveKnockout(standings tournament.Standings, qualifiers []tournament.GroupStanding, knockout []tournament.Match) []knockoutSlot {
	stored := indexKnockout(knockout)
	slots := make([]knockoutSlot, 0, 32)

	var previous, semis []tournament.Match
	for r, round := range tournament.KnockoutRounds {
		current := make([]tournament.Match, round.Matches)

		for i := 0; i < round.Matches; i++ {
			var home, away *string
			if r == 0 {
				pair := tournament.RoundOf32Seeds[i]
				home = resolveSeed(pair.Home, standings, qualifiers)
				away = resolveSeed(pair.Away, standings, qualifiers)
			} else {
				home = utils.Copy(previous[2*i].Winner())
				away = utils.Copy(previous[2*i+1].Winner())
			}

			slot := placeMatch(round, i, home, away, stored)
			current[i] = slot.match
			slots = append(slots, slot)
		}

		if round.Stage == tournament.StageSemiFinals {
			semis = current
		}
		previous = current
	}

	var home, away *string
	if len(semis) == 2 {
		home = utils.Copy(semis[0].Loser())
		away = utils.Copy(semis[1].Loser())
	}
	slots = append(slots, placeMatch(tournament.ThirdPlaceRound, 0, home, away, stored))

	return slots
}

// placeMatch merges the derived teams with the stored record for the slot, if
// there is one.
func placeMatch(round tournament.Round, i int, home, away *string, stored map[string]tournament.Match) knockoutSlot {
	id := round.MatchID(i)

	if existing, ok := stored[id]; ok {
		m := existing.Clone()
		// A cleared record keeps its metadata but follows the bracket again
		if !m.IsPlayed() {
			m.HomeTeamID = home
			m.AwayTeamID = away
		}
		return knockoutSlot{match: m, stored: true}
	}

	return knockoutSlot{
		match: tournament.Match{
			ID:         id,
			HomeTeamID: home,
			AwayTeamID: away,
			Date:       round.Date,
			Time:       round.Time,
			StadiumID:  round.StadiumID,
			Stage:      round.Stage,
			BracketID:  id,
		},
	}
}

func resolveSeed(seed tournament.Seed, standings tournament.Standings, qualifiers []tournament.GroupStanding) *string {
	switch s := seed.(type) {
	case tournament.GroupRank:
		return standings.At(s.Group, s.Position)
	case tournament.BestThird:
		if len(qualifiers) == 0 {
			return nil
		}
		// Wraps around when fewer teams have qualified than there are slots
		id := qualifiers[s.Ordinal%len(qualifiers)].TeamID
		return &id
	default:
		return nil
	}
}

// indexKnockout maps knockout records by id. The first record wins if an id
// is repeated, group stage records are ignored.
func indexKnockout(matches []tournament.Match) map[string]tournament.Match {
	index := make(map[string]tournament.Match, len(matches))
	for _, m := range matches {
		if !m.Stage.IsKnockout() {
			continue
		}
		if _, ok := index[m.ID]; !ok {
			index[m.ID] = m
		}
	}
	return index
}
