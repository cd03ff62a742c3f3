package solver

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/laeos/wwfsolve/board"
	"github.com/laeos/wwfsolve/gaddag"
	"github.com/laeos/wwfsolve/move"
	"github.com/laeos/wwfsolve/variant"
)

// SolveConcurrent is an opt-in alternative to Solve that fans one goroutine
// out per anchor. It is not part of the core contract: the anchors are
// independent by construction (each owns its own traversal state and rack
// copy), so results match Solve exactly, but callers who need determinism
// of any other kind -- timing, goroutine count -- should use Solve instead.
func SolveConcurrent(ctx context.Context, b *board.Board, graph gaddag.WordGraph, rack board.Rack, v variant.Variant, workers int) ([]move.Solution, error) {
	anchors := Anchors(b)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	var mu sync.Mutex
	plays := make(map[move.Key]move.Solution)

	for _, a := range anchors {
		a := a
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			local := &Solver{board: b, graph: graph, rack: rack, variant: v, anchor: a, plays: make(map[move.Key]move.Solution)}
			local.gen(0, "", local.rack, []int{0}, nil, local.graph.InitialArc())

			mu.Lock()
			for k, v := range local.plays {
				plays[k] = v
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := &Solver{plays: plays}
	return s.sortedPlays(), nil
}
