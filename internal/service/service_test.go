package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/batchrating/internal/domain"
	"github.com/goserg/batchrating/internal/elo"
	"github.com/goserg/batchrating/internal/metrics"
	"github.com/goserg/batchrating/internal/storage/csvfile"
)

type fakeRecorder struct {
	outcomes []string
	rounds   []int
}

func (f *fakeRecorder) ObserveSolve(outcome string, rounds int, _ time.Duration) {
	f.outcomes = append(f.outcomes, outcome)
	f.rounds = append(f.rounds, rounds)
}

func newTestService(t *testing.T, params elo.Params) (*RatingService, *fakeRecorder) {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	log := logrus.NewEntry(l)
	solver, err := elo.NewSolver(params, log)
	require.NoError(t, err)
	rec := &fakeRecorder{}
	return New(solver, rec, log), rec
}

func match(a, b string, pa, pb float64) domain.Match {
	return domain.Match{
		PlayerA: domain.Player{Name: a},
		PlayerB: domain.Player{Name: b},
		PointsA: pa,
		PointsB: pb,
	}
}

func names(players []domain.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.Name)
	}
	return out
}

func TestGetRatings(t *testing.T) {
	tests := []struct {
		name      string
		matches   []domain.Match
		wantOrder []string
	}{
		{
			name: "draws keep first seen order",
			matches: []domain.Match{
				match("Ash", "Misty", 1, 1),
				match("Brock", "Ash", 0.5, 0.5),
			},
			wantOrder: []string{"Ash", "Misty", "Brock"},
		},
		{
			name: "winner on top",
			matches: []domain.Match{
				match("Ash", "Misty", 0, 1),
			},
			wantOrder: []string{"Misty", "Ash"},
		},
		{
			name: "chain",
			matches: []domain.Match{
				match("c", "b", 1, 2),
				match("b", "a", 1, 2),
				match("c", "a", 1, 1),
			},
			wantOrder: []string{"a", "b", "c"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestService(t, elo.DefaultParams())
			got, err := s.GetRatings(tt.matches)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, names(got.Players))
			assert.Equal(t, []string{metrics.OutcomeConverged}, rec.outcomes)
			assert.Equal(t, []int{got.Rounds}, rec.rounds)
		})
	}
}

func TestGetRatingsDraws(t *testing.T) {
	s, _ := newTestService(t, elo.DefaultParams())
	got, err := s.GetRatings([]domain.Match{match("a", "b", 2, 2)})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Rounds)
	for _, p := range got.Players {
		assert.Equal(t, 1500.0, p.EloRating)
		assert.Equal(t, 1, p.GamesPlayed)
	}
}

func TestGetRatingsInvalidPoints(t *testing.T) {
	s, rec := newTestService(t, elo.DefaultParams())
	_, err := s.GetRatings([]domain.Match{match("a", "b", 1, 0), match("b", "c", -1, 0)})
	assert.ErrorIs(t, err, elo.ErrInvalidPoints)
	assert.Equal(t, []string{metrics.OutcomeInvalidInput}, rec.outcomes)
}

func TestGetRatingsNoConvergence(t *testing.T) {
	params := elo.DefaultParams()
	params.RoundLimit = 2
	s, rec := newTestService(t, params)
	_, err := s.GetRatings([]domain.Match{match("a", "b", 1, 0)})

	var noConv *NoConvergenceError
	require.True(t, errors.As(err, &noConv))
	assert.Equal(t, 2, noConv.Rounds)
	assert.Equal(t, []string{"a", "b"}, names(noConv.Players))
	assert.Greater(t, noConv.Players[0].RatingChange, 0.01)
	assert.Less(t, noConv.Players[1].RatingChange, -0.01)

	var failure *elo.ConvergenceFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, failure.LastRatings[0], noConv.Players[0].EloRating)
	assert.Equal(t, []string{metrics.OutcomeNoConvergence}, rec.outcomes)
}

func TestRateStorage(t *testing.T) {
	s, _ := newTestService(t, elo.DefaultParams())
	got, err := s.RateStorage(context.Background(), csvfile.New(strings.NewReader("x,y,3,1\n# z,x,0,1\n")))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, names(got.Players))
	assert.InDelta(t, 3000, got.Players[0].EloRating+got.Players[1].EloRating, 1e-6)
}

func TestRateStorageMalformed(t *testing.T) {
	s, _ := newTestService(t, elo.DefaultParams())
	_, err := s.RateStorage(context.Background(), csvfile.New(strings.NewReader("x,y,3\n")))
	assert.ErrorIs(t, err, csvfile.ErrMalformedLine)
}

func TestNewWithoutLogger(t *testing.T) {
	solver, err := elo.NewSolver(elo.DefaultParams(), nil)
	require.NoError(t, err)
	s := New(solver, nil, nil)

	ratings, err := s.GetRatings([]domain.Match{match("Ash", "Asha", 1, 1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ash", "Asha"}, names(ratings.Players))
}
