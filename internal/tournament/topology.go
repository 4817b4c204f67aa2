package tournament

import "fmt"

// Seed is a symbolic reference to the team that fills a Round of 32 slot.
// It is either a GroupRank or a BestThird.
type Seed interface {
	isSeed()
	String() string
}

// GroupRank is the team finishing at Position (1-based) in Group.
type GroupRank struct {
	Group    string
	Position int
}

// BestThird is one of the qualifying third-placed teams. Ordinal indexes the
// qualifier list, wrapping around when there are fewer qualifiers.
type BestThird struct {
	Ordinal int
}

func (GroupRank) isSeed() {}
func (BestThird) isSeed() {}

func (g GroupRank) String() string { return fmt.Sprintf("%d%s", g.Position, g.Group) }
func (b BestThird) String() string { return fmt.Sprintf("3rd#%d", b.Ordinal+1) }

type SeedPair struct {
	Home Seed
	Away Seed
}

func winner(g string) GroupRank   { return GroupRank{Group: g, Position: 1} }
func runnerUp(g string) GroupRank { return GroupRank{Group: g, Position: 2} }

// RoundOf32Seeds lists the first-round pairings in slot order (R32-1 first).
// Left half of the draw is the first eight entries.
var RoundOf32Seeds = [16]SeedPair{
	{winner("A"), BestThird{0}},
	{winner("B"), BestThird{1}},
	{winner("C"), runnerUp("L")},
	{winner("D"), BestThird{2}},
	{runnerUp("A"), runnerUp("B")},
	{winner("E"), BestThird{3}},
	{winner("F"), runnerUp("C")},
	{winner("G"), BestThird{4}},

	{winner("H"), BestThird{5}},
	{winner("I"), BestThird{6}},
	{winner("J"), runnerUp("H")},
	{winner("K"), BestThird{7}},
	{runnerUp("D"), runnerUp("E")},
	{winner("L"), runnerUp("I")},
	{runnerUp("F"), runnerUp("G")},
	{runnerUp("J"), runnerUp("K")},
}

// Round describes one stage of the knockout tree and the placeholder schedule
// used for matches that have not been stored yet.
type Round struct {
	Stage     Stage
	Prefix    string
	Matches   int
	Date      string
	Time      string
	StadiumID string
}

// MatchID returns the id of the 0-based i-th match in the round.
func (r Round) MatchID(i int) string {
	if r.Matches == 1 {
		return r.Prefix
	}
	return fmt.Sprintf("%s-%d", r.Prefix, i+1)
}

// KnockoutRounds is the winners' path, each round fed pairwise by the one
// before it.
var KnockoutRounds = []Round{
	{Stage: StageRoundOf32, Prefix: "R32", Matches: 16, Date: "2026-06-28", Time: "TBD", StadiumID: "S1"},
	{Stage: StageRoundOf16, Prefix: "R16", Matches: 8, Date: "2026-07-04", Time: "TBD", StadiumID: "S2"},
	{Stage: StageQuarterFinals, Prefix: "QF", Matches: 4, Date: "2026-07-11", Time: "TBD", StadiumID: "S3"},
	{Stage: StageSemiFinals, Prefix: "SF", Matches: 2, Date: "2026-07-15", Time: "TBD", StadiumID: "S4"},
	{Stage: StageFinal, Prefix: "FINAL", Matches: 1, Date: "2026-07-19", Time: "20:00", StadiumID: "S1"},
}

// ThirdPlaceRound is fed by the losers of the semi finals.
var ThirdPlaceRound = Round{Stage: StageThirdPlace, Prefix: "THIRD", Matches: 1, Date: "2026-07-18", Time: "18:00", StadiumID: "S5"}
