package elo

import (
	"fmt"
	"math"
)

// Points is a nonnegative share of a game outcome. Any scale works, only the
// fraction Pa/(Pa+Pb) matters.
type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

const DefaultK = 10.0

// TeamResult is one side of a game: its current rating and the points it scored.
type TeamResult struct {
	Rating float64
	Points Points
}

// Adjustment returns the rating change for team after a game against opponent.
// R += K(S - Qa/(Qa + Qb)), where Q = 10^(R/400) and S is team's share of the points.
// A game where nobody scored changes nothing.
// Negative points are a broken precondition and cause a panic.
func Adjustment(team, opponent TeamResult, k float64) float64 {
	if !valid(team.Points) || !valid(opponent.Points) {
		panic(fmt.Sprintf("elo: points must be nonnegative, got %v and %v", team.Points, opponent.Points))
	}
	if team.Points == 0 && opponent.Points == 0 {
		return 0
	}
	qa := q(team.Rating)
	qb := q(opponent.Rating)
	expected := qa / (qa + qb)
	actual := float64(team.Points / (team.Points + opponent.Points))
	return k * (actual - expected)
}

func q(rating float64) float64 {
	return math.Pow(10, rating/400.0)
}

func valid(p Points) bool {
	return p >= 0 && !math.IsInf(float64(p), 0)
}
