package tournament

import "github.com/AdamBeresnev/worldcup-sim/internal/utils"

type Stage string

const (
	StageGroup         Stage = "Group Stage"
	StageRoundOf32     Stage = "Round of 32"
	StageRoundOf16     Stage = "Round of 16"
	StageQuarterFinals Stage = "Quarter Finals"
	StageSemiFinals    Stage = "Semi Finals"
	StageFinal         Stage = "Final"
	StageThirdPlace    Stage = "Third Place"
)

func (s Stage) IsKnockout() bool {
	return s != StageGroup
}

type Match struct {
	ID string `json:"id"`

	// Nil until the bracket has resolved the slot
	HomeTeamID *string `json:"homeTeamId"`
	AwayTeamID *string `json:"awayTeamId"`

	// Nil means not played. Both are set or neither is.
	HomeScore *int `json:"homeScore"`
	AwayScore *int `json:"awayScore"`

	Date      string `json:"date"`
	Time      string `json:"time"`
	StadiumID string `json:"stadiumId"`
	Stage     Stage  `json:"stage"`

	Group     string `json:"group,omitempty"`
	BracketID string `json:"bracketId,omitempty"`

	IsSimulated bool `json:"isSimulated,omitempty"`
}

func (m *Match) IsPlayed() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Winner returns the winning team of a played match. A draw goes to the home
// team since penalty shootouts are not modelled.
func (m *Match) Winner() *string {
	if !m.IsPlayed() {
		return nil
	}
	if *m.AwayScore > *m.HomeScore {
		return m.AwayTeamID
	}
	return m.HomeTeamID
}

// Loser is the counterpart of Winner, so the away team loses a draw.
func (m *Match) Loser() *string {
	if !m.IsPlayed() {
		return nil
	}
	if *m.AwayScore > *m.HomeScore {
		return m.HomeTeamID
	}
	return m.AwayTeamID
}

// Clone returns a copy that shares no pointers with m.
func (m Match) Clone() Match {
	m.HomeTeamID = utils.Copy(m.HomeTeamID)
	m.AwayTeamID = utils.Copy(m.AwayTeamID)
	m.HomeScore = utils.Copy(m.HomeScore)
	m.AwayScore = utils.Copy(m.AwayScore)
	return m
}

func CloneMatches(matches []Match) []Match {
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = m.Clone()
	}
	return out
}
