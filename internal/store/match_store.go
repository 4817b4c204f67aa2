package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound     = errors.New("no saved matches")
	ErrCorruptState = errors.New("saved matches could not be decoded")
)

// MatchesKey is the slot holding the authoritative match list.
const MatchesKey = "worldcup.matches"

// MatchRepository persists the authoritative match list as one flat value.
type MatchRepository interface {
	Load(ctx context.Context) ([]tournament.Match, error)
	Save(ctx context.Context, matches []tournament.Match) error
}

type kvRecord struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

const (
	getValueQuery = "SELECT key, value, updated_at FROM kv_store WHERE key = ?"
	putValueQuery = `
		INSERT INTO kv_store (key, value, updated_at) VALUES (:key, :value, :updated_at)
		ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
	`
)

// MatchStore keeps the match list as JSON in the sqlite key-value table.
type MatchStore struct {
	db  *sqlx.DB
	key string
}

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db, key: MatchesKey}
}

func (s *MatchStore) Load(ctx context.Context) ([]tournament.Match, error) {
	var rec kvRecord
	err := s.db.GetContext(ctx, &rec, getValueQuery, s.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.key, err)
	}

	var matches []tournament.Match
	if err := json.Unmarshal([]byte(rec.Value), &matches); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return matches, nil
}

func (s *MatchStore) Save(ctx context.Context, matches []tournament.Match) error {
	if matches == nil {
		matches = []tournament.Match{}
	}
	value, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to encode matches: %w", err)
	}

	_, err = s.db.NamedExecContext(ctx, putValueQuery, kvRecord{
		Key:       s.key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}
