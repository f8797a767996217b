package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/goserg/batchrating/internal/competition"
	"github.com/goserg/batchrating/internal/domain"
	"github.com/goserg/batchrating/internal/elo"
	"github.com/goserg/batchrating/internal/metrics"
	"github.com/goserg/batchrating/internal/storage"
)

// similarNameDistance is the edit distance under which two team names are
// reported as a probable typo.
const similarNameDistance = 1

type Recorder interface {
	ObserveSolve(outcome string, rounds int, elapsed time.Duration)
}

type RatingService struct {
	solver  *elo.Solver
	metrics Recorder
	log     *logrus.Entry
}

func New(solver *elo.Solver, recorder Recorder, log *logrus.Entry) *RatingService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &RatingService{
		solver:  solver,
		metrics: recorder,
		log:     log,
	}
}

// Ratings are players sorted by rating, best first.
type Ratings struct {
	Players []domain.Player
	Rounds  int
}

// NoConvergenceError names the teams of an *elo.ConvergenceFailure.
// Players are in first-seen order, RatingChange holds the last adjustment.
type NoConvergenceError struct {
	Rounds  int
	Players []domain.Player
	failure *elo.ConvergenceFailure
}

func (e *NoConvergenceError) Error() string {
	return e.failure.Error()
}

func (e *NoConvergenceError) Unwrap() error {
	return e.failure
}

func (s *RatingService) RateStorage(ctx context.Context, matchStorage storage.MatchStorage) (Ratings, error) {
	matches, err := matchStorage.ListMatches(ctx)
	if err != nil {
		return Ratings{}, fmt.Errorf("list matches: %w", err)
	}
	return s.GetRatings(matches)
}

// GetRatings computes the fixed-point ratings of every player seen in matches.
func (s *RatingService) GetRatings(matches []domain.Match) (Ratings, error) {
	comp, err := competition.Build(matches)
	if err != nil {
		s.metrics.ObserveSolve(metrics.OutcomeInvalidInput, 0, 0)
		return Ratings{}, err
	}
	for _, pair := range comp.SimilarNames(similarNameDistance) {
		s.log.WithField("names", pair).Warn("similar team names, probably the same team")
	}

	start := time.Now()
	res, err := s.solver.Solve(len(comp.Teams), comp.Games)
	elapsed := time.Since(start)
	if err != nil {
		var failure *elo.ConvergenceFailure
		if errors.As(err, &failure) {
			s.metrics.ObserveSolve(metrics.OutcomeNoConvergence, failure.Rounds, elapsed)
			return Ratings{}, &NoConvergenceError{
				Rounds:  failure.Rounds,
				Players: comp.Players(failure.LastRatings, failure.LastAdjustments),
				failure: failure,
			}
		}
		s.metrics.ObserveSolve(metrics.OutcomeInvalidInput, 0, elapsed)
		return Ratings{}, err
	}
	s.metrics.ObserveSolve(metrics.OutcomeConverged, res.Rounds, elapsed)
	s.log.WithFields(logrus.Fields{
		"teams":   len(comp.Teams),
		"games":   len(comp.Games),
		"rounds":  res.Rounds,
		"elapsed": elapsed,
	}).Info("ratings computed")
	return Ratings{
		Players: comp.Ranked(res.Ratings),
		Rounds:  res.Rounds,
	}, nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveSolve(string, int, time.Duration) {}
