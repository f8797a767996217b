package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/goserg/batchrating/internal/domain"
)

type PlayerStorage interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Player, error)
}

// MatchStorage is anything that can list the games to rate.
type MatchStorage interface {
	ListMatches(ctx context.Context) ([]domain.Match, error)
}
