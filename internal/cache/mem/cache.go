package mem

import (
	"sync"

	"github.com/goserg/batchrating/internal/domain"
	"github.com/goserg/batchrating/internal/normalize"
)

// Cache keeps the ratings of the last successful computation.
type Cache struct {
	mu      sync.RWMutex
	valid   bool
	ranked  []domain.Player
	rounds  int
	players map[string]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
	}
}

// Update replaces the cached ratings. players must be ranked, best first.
func (c *Cache) Update(players []domain.Player, rounds int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ranked = append([]domain.Player(nil), players...)
	c.players = make(map[string]domain.Player, len(players))
	for i := range players {
		c.players[normalize.Key(players[i].Name)] = players[i]
	}
	c.rounds = rounds
	c.valid = true
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	player, ok := c.players[normalize.Key(name)]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}

// GetRatings returns a copy of the cached ratings with the rounds they took
// and false when nothing was computed yet.
func (c *Cache) GetRatings() ([]domain.Player, int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return nil, 0, false
	}
	return append([]domain.Player(nil), c.ranked...), c.rounds, true
}
