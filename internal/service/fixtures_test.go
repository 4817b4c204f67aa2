package service

import (
	"fmt"
	"testing"

	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInitialFixtures(t *testing.T) {
	matches := GenerateInitialFixtures()
	require.Len(t, matches, 72)

	perTeam := make(map[string]int)
	pairs := make(map[string]bool)
	for i, m := range matches {
		assert.Equal(t, fmt.Sprintf("M%d", i+1), m.ID)
		assert.Equal(t, tournament.StageGroup, m.Stage)
		assert.Equal(t, tournament.Groups()[i/6], m.Group)
		assert.False(t, m.IsPlayed())
		assert.False(t, m.IsSimulated)
		assert.Empty(t, m.BracketID)
		require.NotNil(t, m.HomeTeamID)
		require.NotNil(t, m.AwayTeamID)

		_, ok := tournament.FindStadium(m.StadiumID)
		assert.True(t, ok, "unknown stadium %s", m.StadiumID)

		perTeam[*m.HomeTeamID]++
		perTeam[*m.AwayTeamID]++
		pairs[*m.HomeTeamID+"-"+*m.AwayTeamID] = true
	}

	// Single round robin: three matches each, no pairing repeated
	assert.Len(t, perTeam, 48)
	for team, n := range perTeam {
		assert.Equal(t, 3, n, team)
	}
	assert.Len(t, pairs, 72)
}

func TestGenerateInitialFixtures_Schedule(t *testing.T) {
	matches := GenerateInitialFixtures()

	tests := []struct {
		id      string
		home    string
		away    string
		date    string
		time    string
		stadium string
	}{
		{"M1", "mx", "eg", "2026-06-11", "19:00", "S3"},
		{"M2", "pl", "kr", "2026-06-11", "21:00", "S4"},
		{"M3", "mx", "pl", "2026-06-15", "13:00", "S5"},
		{"M6", "eg", "pl", "2026-06-19", "21:00", "S8"},
		{"M7", "ca", "fr", "2026-06-12", "13:00", "S9"},
		{"M72", "gr", "pa", "2026-06-30", "16:00", "S10"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m := findByID(matches, tt.id)
			require.NotNil(t, m)
			assert.Equal(t, tt.home, *m.HomeTeamID)
			assert.Equal(t, tt.away, *m.AwayTeamID)
			assert.Equal(t, tt.date, m.Date)
			assert.Equal(t, tt.time, m.Time)
			assert.Equal(t, tt.stadium, m.StadiumID)
		})
	}
}

func TestGenerateInitialFixtures_Fresh(t *testing.T) {
	first := GenerateInitialFixtures()
	*first[0].HomeTeamID = "xx"

	second := GenerateInitialFixtures()
	assert.Equal(t, "mx", *second[0].HomeTeamID)
}
