package elo

import "golang.org/x/sync/errgroup"

// Game is a single scored contest between the teams at indexes A and B.
type Game struct {
	A       int
	B       int
	PointsA Points
	PointsB Points
}

// BatchAdjustments returns the total adjustment of every team over all games,
// treating the games as simultaneous: every game sees the same ratings.
// ratings is not modified.
func BatchAdjustments(ratings []float64, games []Game, k float64) []float64 {
	adjustments := make([]float64, len(ratings))
	accumulate(adjustments, ratings, games, k)
	return adjustments
}

func accumulate(dst, ratings []float64, games []Game, k float64) {
	for _, game := range games {
		a := TeamResult{Rating: ratings[game.A], Points: game.PointsA}
		b := TeamResult{Rating: ratings[game.B], Points: game.PointsB}
		dst[game.A] += Adjustment(a, b, k)
		dst[game.B] += Adjustment(b, a, k)
	}
}

// parallelBatchAdjustments splits games into contiguous chunks, sums every
// chunk into its own vector and reduces the vectors in chunk order, so the
// result only depends on the number of workers.
func parallelBatchAdjustments(ratings []float64, games []Game, k float64, workers int) []float64 {
	if workers <= 1 || len(games) < 2*workers {
		return BatchAdjustments(ratings, games, k)
	}
	chunk := (len(games) + workers - 1) / workers
	partial := make([][]float64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(games))
		if lo >= hi {
			continue
		}
		partial[w] = make([]float64, len(ratings))
		dst := partial[w]
		g.Go(func() error {
			accumulate(dst, ratings, games[lo:hi], k)
			return nil
		})
	}
	_ = g.Wait()

	adjustments := make([]float64, len(ratings))
	for _, p := range partial {
		for i, v := range p {
			adjustments[i] += v
		}
	}
	return adjustments
}
