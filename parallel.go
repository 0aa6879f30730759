package gotrans

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fanOut calls every client concurrently and waits for all of them. Results are
// stored by position so the caller sees them in client order, not completion
// order. Siblings are not cancelled when one fails; the first error is returned.
func fanOut(ctx context.Context, text string, clients []Client) ([]Result, error) {
	results := make([]Result, len(clients))

	var g errgroup.Group
	for i, c := range clients {
		i, c := i, c
		g.Go(func() error {
			r, err := c.Translate(ctx, text)
			if err != nil {
				return err
			}
			if r == nil {
				return &EmptyResultError{Provider: c.Name()}
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
