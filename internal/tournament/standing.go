package tournament

import "sort"

type GroupStanding struct {
	TeamID         string `json:"teamId"`
	Group          string `json:"group"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"gf"`
	GoalsAgainst   int    `json:"ga"`
	GoalDifference int    `json:"gd"`
	Points         int    `json:"points"`
	Rank           int    `json:"rank"`
}

// RanksAhead reports whether s sorts strictly before o: more points, then
// better goal difference, then more goals scored.
func (s GroupStanding) RanksAhead(o GroupStanding) bool {
	if s.Points != o.Points {
		return s.Points > o.Points
	}
	if s.GoalDifference != o.GoalDifference {
		return s.GoalDifference > o.GoalDifference
	}
	return s.GoalsFor > o.GoalsFor
}

// Standings maps a group label to its ranked table.
type Standings map[string][]GroupStanding

func (s Standings) Labels() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// At returns the team at a 1-based position of a group, or nil when the group
// has not produced that many rows.
func (s Standings) At(group string, position int) *string {
	rows := s[group]
	if position < 1 || position > len(rows) {
		return nil
	}
	id := rows[position-1].TeamID
	return &id
}
