package sqlite

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/goserg/batchrating/gen/model"
	"github.com/goserg/batchrating/internal/domain"
	"github.com/goserg/batchrating/internal/elo"
)

var (
	ErrUnknownPlayer = errors.New("match references unknown player")
	ErrWrongWinner   = errors.New("winner is not a participant")
)

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", player.Name, err)
	}
	return domain.Player{
		ID:           id,
		Name:         player.Name,
		RegisteredAt: player.CreatedAt,
	}, nil
}

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayersToMap(players []domain.Player) map[string]domain.Player {
	m := make(map[string]domain.Player, len(players))
	for i := range players {
		m[players[i].ID.String()] = players[i]
	}
	return m
}

func checkReferences(matches []model.Matches, players map[string]domain.Player) error {
	referenced := mapset.NewThreadUnsafeSet[string]()
	for _, match := range matches {
		referenced.Append(match.PlayerA, match.PlayerB)
	}
	known := mapset.NewThreadUnsafeSetFromMapKeys(players)
	missing := referenced.Difference(known)
	if missing.Cardinality() > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownPlayer, missing.ToSlice())
	}
	return nil
}

func convertMatchToDomain(match model.Matches, players map[string]domain.Player) (domain.Match, error) {
	pointsA, pointsB, err := matchPoints(match)
	if err != nil {
		return domain.Match{}, fmt.Errorf("match %d: %w", match.ID, err)
	}
	return domain.Match{
		ID:      int(match.ID),
		PlayerA: players[match.PlayerA],
		PlayerB: players[match.PlayerB],
		PointsA: pointsA,
		PointsB: pointsB,
		Date:    match.CreatedAt,
	}, nil
}

// matchPoints prefers the stored score split and falls back to the winner:
// no winner is a draw.
func matchPoints(match model.Matches) (float64, float64, error) {
	if match.PointsA != nil && match.PointsB != nil {
		return *match.PointsA, *match.PointsB, nil
	}
	if match.Winner == nil || *match.Winner == "" || *match.Winner == uuid.Nil.String() {
		return float64(elo.Draw), float64(elo.Draw), nil
	}
	switch *match.Winner {
	case match.PlayerA:
		return float64(elo.Win), float64(elo.Lose), nil
	case match.PlayerB:
		return float64(elo.Lose), float64(elo.Win), nil
	}
	return 0, 0, ErrWrongWinner
}
