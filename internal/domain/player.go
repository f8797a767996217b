package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is a competitor. ID and RegisteredAt are only known when the
// player comes from a database.
type Player struct {
	ID           uuid.UUID
	Name         string
	RegisteredAt time.Time
	EloRating    float64
	GamesPlayed  int
	// RatingChange is the adjustment of the last round played.
	RatingChange float64
}
