package sqlite

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/batchrating/gen/model"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	s, err := New(filepath.Join(t.TempDir(), "rating.sqlite"), logrus.NewEntry(l))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func addPlayer(t *testing.T, s *Storage, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := s.db.Exec(`INSERT INTO players (id, name) VALUES (?, ?)`, id.String(), name)
	require.NoError(t, err)
	return id
}

func TestNewMigratesTwice(t *testing.T) {
	dir := t.TempDir()
	l := logrus.New()
	l.SetOutput(io.Discard)
	for i := 0; i < 2; i++ {
		s, err := New(filepath.Join(dir, "rating.sqlite"), logrus.NewEntry(l))
		require.NoError(t, err)
		require.NoError(t, s.Close())
	}
}

func TestListMatches(t *testing.T) {
	s := newTestStorage(t)
	ash := addPlayer(t, s, "Ash")
	misty := addPlayer(t, s, "Misty")

	_, err := s.db.Exec(`INSERT INTO matches (player_a, player_b, winner) VALUES (?, ?, ?)`, ash.String(), misty.String(), misty.String())
	require.NoError(t, err)
	_, err = s.db.Exec(`INSERT INTO matches (player_a, player_b, winner) VALUES (?, ?, NULL)`, misty.String(), ash.String())
	require.NoError(t, err)
	_, err = s.db.Exec(`INSERT INTO matches (player_a, player_b, winner, points_a, points_b) VALUES (?, ?, ?, 21, 17)`, ash.String(), misty.String(), ash.String())
	require.NoError(t, err)

	matches, err := s.ListMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "Ash", matches[0].PlayerA.Name)
	assert.Equal(t, misty, matches[0].PlayerB.ID)
	assert.Equal(t, 0.0, matches[0].PointsA)
	assert.Equal(t, 1.0, matches[0].PointsB)

	assert.Equal(t, 0.5, matches[1].PointsA)
	assert.Equal(t, 0.5, matches[1].PointsB)

	assert.Equal(t, 21.0, matches[2].PointsA)
	assert.Equal(t, 17.0, matches[2].PointsB)
	assert.Less(t, matches[0].ID, matches[2].ID)
}

func TestListMatchesEmpty(t *testing.T) {
	s := newTestStorage(t)
	matches, err := s.ListMatches(context.Background())
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestListMatchesUnknownPlayer(t *testing.T) {
	s := newTestStorage(t)
	ash := addPlayer(t, s, "Ash")
	_, err := s.db.Exec(`INSERT INTO matches (player_a, player_b) VALUES (?, ?)`, ash.String(), uuid.NewString())
	require.NoError(t, err)

	_, err = s.ListMatches(context.Background())
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestGet(t *testing.T) {
	s := newTestStorage(t)
	id := addPlayer(t, s, "Brock")

	p, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Brock", p.Name)
	assert.False(t, p.RegisteredAt.IsZero())

	_, err = s.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMatchPoints(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	other := uuid.NewString()
	nilWinner := uuid.Nil.String()
	half := 0.5
	tests := []struct {
		name    string
		winner  *string
		pa, pb  *float64
		wantA   float64
		wantB   float64
		wantErr error
	}{
		{name: "a wins", winner: &a, wantA: 1, wantB: 0},
		{name: "b wins", winner: &b, wantA: 0, wantB: 1},
		{name: "draw", wantA: 0.5, wantB: 0.5},
		{name: "nil uuid draw", winner: &nilWinner, wantA: 0.5, wantB: 0.5},
		{name: "stored points win over winner", winner: &a, pa: &half, pb: &half, wantA: 0.5, wantB: 0.5},
		{name: "stranger wins", winner: &other, wantErr: ErrWrongWinner},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pa, pb, err := matchPoints(modelMatch(a, b, tt.winner, tt.pa, tt.pb))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, pa)
			assert.Equal(t, tt.wantB, pb)
		})
	}
}

func modelMatch(a, b string, winner *string, pa, pb *float64) model.Matches {
	return model.Matches{
		PlayerA: a,
		PlayerB: b,
		Winner:  winner,
		PointsA: pa,
		PointsB: pb,
	}
}
