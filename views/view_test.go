package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/AdamBeresnev/worldcup-sim/internal/middleware"
	"github.com/AdamBeresnev/worldcup-sim/internal/service"
	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/AdamBeresnev/worldcup-sim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareBracketData(t *testing.T) {
	knockout := []tournament.Match{
		{ID: "R32-1", Stage: tournament.StageRoundOf32},
		{ID: "R32-2", Stage: tournament.StageRoundOf32},
		{ID: "R16-1", Stage: tournament.StageRoundOf16},
		{ID: "THIRD", Stage: tournament.StageThirdPlace},
	}

	data := PrepareBracketData(knockout)

	require.Len(t, data.Rounds, 2)
	assert.Equal(t, tournament.StageRoundOf32, data.Rounds[0].Stage)
	assert.Len(t, data.Rounds[0].Matches, 2)
	assert.Equal(t, tournament.StageRoundOf16, data.Rounds[1].Stage)
	require.NotNil(t, data.ThirdPlace)
	assert.Equal(t, "THIRD", data.ThirdPlace.ID)

	assert.Nil(t, PrepareBracketData(nil).ThirdPlace)
}

func TestScoreLine(t *testing.T) {
	assert.Equal(t, "vs", ScoreLine(tournament.Match{}))
	assert.Equal(t, "2 - 1", ScoreLine(tournament.Match{HomeScore: utils.Ptr(2), AwayScore: utils.Ptr(1)}))
}

func renderIndex(t *testing.T, ctx context.Context) string {
	t.Helper()
	matches := service.GenerateInitialFixtures()
	matches[0].HomeScore, matches[0].AwayScore = utils.Ptr(3), utils.Ptr(0)

	standings := service.ComputeStandings(matches)
	qualifiers := service.ComputeQualifiers(standings)
	snap := service.Snapshot{
		Matches:    matches,
		Standings:  standings,
		Qualifiers: qualifiers,
		Knockout:   service.ComputeBracket(standings, qualifiers, nil),
	}

	var buf bytes.Buffer
	require.NoError(t, Index(snap).Render(ctx, &buf))
	return buf.String()
}

func TestIndex(t *testing.T) {
	html := renderIndex(t, context.Background())

	assert.Contains(t, html, "<caption>Group A</caption>")
	assert.Contains(t, html, "<td>Mexico</td>")
	assert.Contains(t, html, "<td>+3</td>")
	assert.Contains(t, html, `id="R32-16"`)
	assert.NotContains(t, html, `name="home_score"`)
	assert.Contains(t, html, `action="/admin/login"`)
}

func TestIndex_Admin(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.AdminKey, true)
	html := renderIndex(t, ctx)

	assert.Contains(t, html, `action="/api/matches/R32-1/score"`)
	assert.Contains(t, html, `action="/api/reset"`)
	assert.NotContains(t, html, `action="/admin/login"`)
}

func TestBracket_Escapes(t *testing.T) {
	data := BracketData{Rounds: []BracketRound{{
		Stage:   tournament.StageFinal,
		Matches: []tournament.Match{{ID: "<b>", Stage: tournament.StageFinal}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, Bracket(data, false).Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), "&lt;b&gt;")
	assert.NotContains(t, buf.String(), "<b>")
	assert.Contains(t, buf.String(), "TBD")
}
