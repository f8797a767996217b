package competition

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/goserg/batchrating/internal/domain"
	"github.com/goserg/batchrating/internal/elo"
	"github.com/goserg/batchrating/internal/normalize"
)

var ErrEmptyName = errors.New("empty team name")

// Competition is a list of games over teams numbered in first-seen order.
type Competition struct {
	Teams       []domain.Player
	Games       []elo.Game
	gamesPlayed []int
}

// Builder assigns team indexes while matches are added.
type Builder struct {
	index map[string]int
	comp  Competition
}

func NewBuilder() *Builder {
	return &Builder{
		index: make(map[string]int),
	}
}

func (b *Builder) Add(match domain.Match) error {
	a, err := b.team(match.PlayerA)
	if err != nil {
		return fmt.Errorf("match %d: %w", match.ID, err)
	}
	o, err := b.team(match.PlayerB)
	if err != nil {
		return fmt.Errorf("match %d: %w", match.ID, err)
	}
	b.comp.Games = append(b.comp.Games, elo.Game{
		A:       a,
		B:       o,
		PointsA: elo.Points(match.PointsA),
		PointsB: elo.Points(match.PointsB),
	})
	b.comp.gamesPlayed[a]++
	b.comp.gamesPlayed[o]++
	return nil
}

func (b *Builder) team(player domain.Player) (int, error) {
	name := normalize.Name(player.Name)
	if name == "" {
		return 0, ErrEmptyName
	}
	if i, ok := b.index[name]; ok {
		return i, nil
	}
	player.Name = name
	b.comp.Teams = append(b.comp.Teams, player)
	b.comp.gamesPlayed = append(b.comp.gamesPlayed, 0)
	b.index[name] = len(b.comp.Teams) - 1
	return len(b.comp.Teams) - 1, nil
}

func (b *Builder) Build() Competition {
	return b.comp
}

// Build collects all matches into a competition.
func Build(matches []domain.Match) (Competition, error) {
	b := NewBuilder()
	for _, m := range matches {
		if err := b.Add(m); err != nil {
			return Competition{}, err
		}
	}
	return b.Build(), nil
}

// Players pairs every team with its rating and last adjustment.
// adjustments may be nil.
func (c Competition) Players(ratings, adjustments []float64) []domain.Player {
	players := make([]domain.Player, len(c.Teams))
	for i := range c.Teams {
		players[i] = c.Teams[i]
		players[i].EloRating = ratings[i]
		players[i].GamesPlayed = c.gamesPlayed[i]
		if adjustments != nil {
			players[i].RatingChange = adjustments[i]
		}
	}
	return players
}

// Ranked is Players sorted by rating, best first. Ties keep first-seen order.
func (c Competition) Ranked(ratings []float64) []domain.Player {
	players := c.Players(ratings, nil)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].EloRating > players[j].EloRating
	})
	return players
}

// SimilarNames returns pairs of distinct team names that are at most
// maxDistance edits apart once case is ignored. Such pairs are usually
// one team spelled two ways.
func (c Competition) SimilarNames(maxDistance int) [][2]string {
	var pairs [][2]string
	for i := range c.Teams {
		ki := normalize.Key(c.Teams[i].Name)
		for j := i + 1; j < len(c.Teams); j++ {
			kj := normalize.Key(c.Teams[j].Name)
			if levenshtein.ComputeDistance(ki, kj) > maxDistance {
				continue
			}
			pairs = append(pairs, [2]string{c.Teams[i].Name, c.Teams[j].Name})
		}
	}
	return pairs
}
