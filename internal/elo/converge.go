package elo

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPoints = errors.New("points must be nonnegative")
	ErrTeamIndex     = errors.New("team index out of range")
)

// Params tunes the fixed-point iteration.
type Params struct {
	RoundLimit    int     `toml:"round_limit" validate:"gt=0"`
	Epsilon       float64 `toml:"epsilon" validate:"gte=0"`
	InitialRating float64 `toml:"initial_rating"`
	KFactor       float64 `toml:"k_factor" validate:"gt=0"`
	Workers       int     `toml:"workers" validate:"gte=1"`
}

func DefaultParams() Params {
	return Params{
		RoundLimit:    10000,
		Epsilon:       0.01,
		InitialRating: 1500,
		KFactor:       DefaultK,
		Workers:       1,
	}
}

func (p Params) Validate() error {
	return validator.New().Struct(p)
}

// ConvergenceFailure is returned when the ratings did not settle within
// the round limit. Both vectors belong to the last round played, and
// LastRatings already include LastAdjustments.
type ConvergenceFailure struct {
	Rounds          int
	LastRatings     []float64
	LastAdjustments []float64
}

func (f *ConvergenceFailure) Error() string {
	return fmt.Sprintf("elo: no convergence after %d rounds, max adjustment %g", f.Rounds, maxAbs(f.LastAdjustments))
}

// Result holds converged ratings in team index order.
type Result struct {
	Ratings []float64
	Rounds  int
}

type Solver struct {
	params Params
	log    *logrus.Entry
}

func NewSolver(params Params, log *logrus.Entry) (*Solver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Solver{
		params: params,
		log:    log,
	}, nil
}

func (s *Solver) Params() Params {
	return s.params
}

// Solve starts every one of n teams at the initial rating and applies batch
// adjustments until no team moves by more than epsilon in a round.
// A *ConvergenceFailure is returned when the round limit runs out.
func (s *Solver) Solve(n int, games []Game) (Result, error) {
	if err := validateGames(n, games); err != nil {
		return Result{}, err
	}
	ratings := make([]float64, n)
	for i := range ratings {
		ratings[i] = s.params.InitialRating
	}
	var adjustments []float64
	for round := 1; round <= s.params.RoundLimit; round++ {
		adjustments = parallelBatchAdjustments(ratings, games, s.params.KFactor, s.params.Workers)
		converged := true
		for i, a := range adjustments {
			ratings[i] += a
			// NaN or Inf (q overflows past ~123000) never counts as converged.
			if !(math.Abs(a) <= s.params.Epsilon) {
				converged = false
			}
		}
		if s.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
			s.log.WithField("round", round).WithField("max_adjustment", maxAbs(adjustments)).Trace("round done")
		}
		if converged {
			s.log.WithFields(logrus.Fields{
				"teams":  n,
				"games":  len(games),
				"rounds": round,
			}).Debug("ratings converged")
			return Result{Ratings: ratings, Rounds: round}, nil
		}
	}
	s.log.WithFields(logrus.Fields{
		"teams":          n,
		"games":          len(games),
		"rounds":         s.params.RoundLimit,
		"max_adjustment": maxAbs(adjustments),
	}).Debug("ratings did not converge")
	return Result{}, &ConvergenceFailure{
		Rounds:          s.params.RoundLimit,
		LastRatings:     ratings,
		LastAdjustments: adjustments,
	}
}

func validateGames(n int, games []Game) error {
	for i, game := range games {
		if game.A < 0 || game.A >= n || game.B < 0 || game.B >= n {
			return fmt.Errorf("game %d (%d vs %d, %d teams): %w", i, game.A, game.B, n, ErrTeamIndex)
		}
		if !valid(game.PointsA) || !valid(game.PointsB) {
			return fmt.Errorf("game %d (%v:%v): %w", i, game.PointsA, game.PointsB, ErrInvalidPoints)
		}
	}
	return nil
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
