package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/worldcup-sim/internal/db"
	"github.com/AdamBeresnev/worldcup-sim/internal/store"
	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/AdamBeresnev/worldcup-sim/internal/utils"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.InitDB(db.InMemory)
	require.NoError(t, err, "Failed to connect to in-memory DB")

	require.NoError(t, db.RunMigrations(database.DB), "Failed to apply migrations")

	return database
}

// memoryRepo is a MatchRepository whose failures can be switched on.
type memoryRepo struct {
	matches []tournament.Match
	loadErr error
	saveErr error
	saves   int
}

func (r *memoryRepo) Load(ctx context.Context) ([]tournament.Match, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.matches == nil {
		return nil, store.ErrNotFound
	}
	return tournament.CloneMatches(r.matches), nil
}

func (r *memoryRepo) Save(ctx context.Context, matches []tournament.Match) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.matches = tournament.CloneMatches(matches)
	return nil
}

// setResult records a score on the match with the given id in place.
func setResult(t *testing.T, matches []tournament.Match, id string, home, away int) {
	t.Helper()
	for i := range matches {
		if matches[i].ID == id {
			matches[i].HomeScore = utils.Ptr(home)
			matches[i].AwayScore = utils.Ptr(away)
			return
		}
	}
	require.Failf(t, "match not found", "no match with id %s", id)
}

// playGroupStageHomeWins gives every group match a 1-0 home win. Each group
// then finishes in roster order: 9, 6, 3 and 0 points, and every third-placed
// team ends on 3 points with a goal difference of -1.
func playGroupStageHomeWins(t *testing.T, matches []tournament.Match) {
	t.Helper()
	for i := range matches {
		if matches[i].Stage == tournament.StageGroup {
			setResult(t, matches, matches[i].ID, 1, 0)
		}
	}
}

func findByID(matches []tournament.Match, id string) *tournament.Match {
	for i := range matches {
		if matches[i].ID == id {
			return &matches[i]
		}
	}
	return nil
}

func teamIDs(rows []tournament.GroupStanding) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.TeamID
	}
	return ids
}
