package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AdamBeresnev/worldcup-sim/internal/store"
	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/AdamBeresnev/worldcup-sim/internal/utils"
	"github.com/google/uuid"
)

// TournamentService owns the authoritative match list. SetScore and ResetAll
// are the only writers; reads get a Snapshot computed from one consistent
// version of the list.
type TournamentService struct {
	mu       sync.RWMutex
	repo     store.MatchRepository
	logger   *slog.Logger
	matches  []tournament.Match
	revision uuid.UUID
}

func NewTournamentService(repo store.MatchRepository, logger *slog.Logger) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TournamentService{repo: repo, logger: logger}
}

// Snapshot is the derived view of one revision of the match list.
type Snapshot struct {
	Revision   uuid.UUID                  `json:"revision"`
	Matches    []tournament.Match         `json:"matches"`
	Standings  tournament.Standings       `json:"standings"`
	Qualifiers []tournament.GroupStanding `json:"qualifiers"`
	Knockout   []tournament.Match         `json:"knockout"`
}

// Init loads the saved match list. A missing or undecodable list is replaced
// by fresh fixtures, any other storage error is returned.
func (s *TournamentService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		s.matches = matches
		s.revision = uuid.New()
		s.logger.Info("loaded saved matches", "count", len(matches), "revision", s.revision)
		return nil
	case errors.Is(err, store.ErrCorruptState):
		s.logger.Warn("discarding saved matches", "error", err)
	case errors.Is(err, store.ErrNotFound):
		s.logger.Info("no saved matches, generating fixtures")
	default:
		return fmt.Errorf("failed to load matches: %w", err)
	}

	return s.replace(ctx, GenerateInitialFixtures())
}

func (s *TournamentService) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return buildSnapshot(s.revision, s.matches)
}

func buildSnapshot(revision uuid.UUID, matches []tournament.Match) Snapshot {
	standings := ComputeStandings(matches)
	qualifiers := ComputeQualifiers(standings)
	knockout := ComputeBracket(standings, qualifiers, knockoutRecords(matches))

	return Snapshot{
		Revision:   revision,
		Matches:    tournament.CloneMatches(matches),
		Standings:  standings,
		Qualifiers: qualifiers,
		Knockout:   knockout,
	}
}

// SetScore records a result, or clears it when both scores are nil. A
// knockout match that so far only exists as a projection of the bracket is
// stored from that projection. On error the match list is left unchanged.
func (s *TournamentService) SetScore(ctx context.Context, matchID string, home, away *int) (tournament.Match, error) {
	if err := validateScore(home, away); err != nil {
		return tournament.Match{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := tournament.CloneMatches(s.matches)

	idx := findMatch(next, matchID)
	if idx < 0 {
		projection, ok := findProjection(next, matchID)
		if !ok {
			return tournament.Match{}, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
		}
		next = append(next, projection)
		idx = len(next) - 1
		s.logger.Debug("materialized knockout match", "match_id", matchID)
	}

	m := &next[idx]
	m.HomeScore = utils.Copy(home)
	m.AwayScore = utils.Copy(away)
	m.IsSimulated = true

	if err := s.replace(ctx, next); err != nil {
		return tournament.Match{}, err
	}

	s.logger.Info("score updated", "match_id", matchID, "stage", m.Stage, "played", m.IsPlayed())
	return m.Clone(), nil
}

// ResetAll discards every result and knockout record and starts over from the
// initial fixtures.
func (s *TournamentService) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.replace(ctx, GenerateInitialFixtures()); err != nil {
		return err
	}
	s.logger.Info("tournament reset", "revision", s.revision)
	return nil
}

// replace persists matches and then swaps them in. Callers hold the write lock.
func (s *TournamentService) replace(ctx context.Context, matches []tournament.Match) error {
	if err := s.repo.Save(ctx, matches); err != nil {
		return fmt.Errorf("failed to save matches: %w", err)
	}
	s.matches = matches
	s.revision = uuid.New()
	return nil
}

func findMatch(matches []tournament.Match, id string) int {
	for i := range matches {
		if matches[i].ID == id {
			return i
		}
	}
	return -1
}

// findProjection looks the id up in the bracket as it currently resolves.
func findProjection(matches []tournament.Match, id string) (tournament.Match, bool) {
	standings := ComputeStandings(matches)
	qualifiers := ComputeQualifiers(standings)
	for _, m := range ComputeBracket(standings, qualifiers, knockoutRecords(matches)) {
		if m.ID == id {
			return m, true
		}
	}
	return tournament.Match{}, false
}

func knockoutRecords(matches []tournament.Match) []tournament.Match {
	knockout := make([]tournament.Match, 0)
	for _, m := range matches {
		if m.Stage.IsKnockout() {
			knockout = append(knockout, m)
		}
	}
	return knockout
}
