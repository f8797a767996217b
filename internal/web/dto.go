package web

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/goserg/batchrating/internal/domain"
)

var validate = validator.New()

var ErrNoGames = errors.New("empty game list")

type gameRequest struct {
	TeamA   string  `json:"team_a" validate:"required"`
	TeamB   string  `json:"team_b" validate:"required"`
	PointsA float64 `json:"points_a" validate:"gte=0"`
	PointsB float64 `json:"points_b" validate:"gte=0"`
}

type ratingsRequest struct {
	Games []gameRequest `json:"games" validate:"dive"`
}

// Validate reports every problem of the request at once.
func (r ratingsRequest) Validate() error {
	if len(r.Games) == 0 {
		return ErrNoGames
	}
	err := validate.Struct(r)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var joined error
	for _, fe := range verrs {
		joined = errors.Join(joined, fmt.Errorf("%s: failed on %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return joined
}

func (r ratingsRequest) convertToDomainMatches() []domain.Match {
	matches := make([]domain.Match, 0, len(r.Games))
	for i, g := range r.Games {
		matches = append(matches, domain.Match{
			ID:      i,
			PlayerA: domain.Player{Name: g.TeamA},
			PlayerB: domain.Player{Name: g.TeamB},
			PointsA: g.PointsA,
			PointsB: g.PointsB,
		})
	}
	return matches
}

type ratingResponse struct {
	Team        string  `json:"team"`
	Rating      float64 `json:"rating"`
	GamesPlayed int     `json:"games_played"`
}

type ratingsResponse struct {
	Rounds  int              `json:"rounds"`
	Ratings []ratingResponse `json:"ratings"`
}

type teamStateResponse struct {
	Team       string  `json:"team"`
	Rating     float64 `json:"rating"`
	Adjustment float64 `json:"adjustment"`
}

type failureResponse struct {
	Error  string              `json:"error"`
	Rounds int                 `json:"rounds"`
	Teams  []teamStateResponse `json:"teams"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

func convertRatings(rounds int, players []domain.Player) ratingsResponse {
	resp := ratingsResponse{
		Rounds:  rounds,
		Ratings: make([]ratingResponse, 0, len(players)),
	}
	for _, p := range players {
		resp.Ratings = append(resp.Ratings, ratingResponse{
			Team:        p.Name,
			Rating:      p.EloRating,
			GamesPlayed: p.GamesPlayed,
		})
	}
	return resp
}

func convertFailure(err error, rounds int, players []domain.Player) failureResponse {
	resp := failureResponse{
		Error:  err.Error(),
		Rounds: rounds,
		Teams:  make([]teamStateResponse, 0, len(players)),
	}
	for _, p := range players {
		resp.Teams = append(resp.Teams, teamStateResponse{
			Team:       p.Name,
			Rating:     p.EloRating,
			Adjustment: p.RatingChange,
		})
	}
	return resp
}
