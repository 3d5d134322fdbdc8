package label

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch labels every grid in grids under the same connectivity, running
// the labelings concurrently. Each labeling is independent (no shared
// state), so no coordination beyond the final join is needed.
//
// The result slice is index-aligned with grids. On the first error the
// remaining work is cancelled and only the error is returned, wrapped with
// the offending grid's index. Context cancellation is observed between
// grids, not inside a single labeling pass.
func Batch(ctx context.Context, grids [][][]bool, conn Connectivity) ([][][]int, error) {
	if conn != Conn4 && conn != Conn8 {
		return nil, fmt.Errorf("%w: %d", ErrConnectivity, conn)
	}

	out := make([][][]int, len(grids))
	g, ctx := errgroup.WithContext(ctx)
	for idx, grid := range grids {
		idx, grid := idx, grid
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			labels, err := Label(grid, conn)
			if err != nil {
				return fmt.Errorf("grid %d: %w", idx, err)
			}
			out[idx] = labels

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
