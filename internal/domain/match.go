package domain

import "time"

// Match is one scored game. Points are any nonnegative split of the outcome.
type Match struct {
	ID      int
	PlayerA Player
	PlayerB Player
	PointsA float64
	PointsB float64
	Date    time.Time
}
