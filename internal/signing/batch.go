package signing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mrz1836/textsign/internal/constants"
)

// SignResult is the outcome of one input of a batch.
type SignResult struct {
	Name      string
	Signature string
}

// SignAll signs every request with at most limit calls in flight and returns
// the results in request order. The first failure cancels the remaining calls.
// A limit below one falls back to constants.DefaultParallelism.
func (s *Service) SignAll(ctx context.Context, reqs []SignRequest, limit int) ([]SignResult, error) {
	if limit < 1 {
		limit = constants.DefaultParallelism
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]SignResult, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			sig, err := s.Sign(gctx, req)
			if err != nil {
				return err
			}
			// each goroutine owns results[i]
			results[i] = SignResult{Name: req.Name, Signature: sig}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
