// Package batch validates many requests concurrently on a bounded worker pool.
package batch

import (
	"context"
	"errors"

	"github.com/liuran001/SocialValidator-Go/validator"
	"golang.org/x/sync/errgroup"
)

// Dispatcher validates a single request; *registry.Registry satisfies it.
type Dispatcher interface {
	Validate(req validator.Request) validator.Result
}

// Runner fans requests out to a worker pool and collects results in input order.
type Runner struct {
	dispatcher Dispatcher
	pool       validator.WorkerPool
	logger     validator.Logger
}

// New creates a Runner. logger may be nil.
func New(dispatcher Dispatcher, pool validator.WorkerPool, logger validator.Logger) *Runner {
	return &Runner{dispatcher: dispatcher, pool: pool, logger: logger}
}

// Run validates all requests and returns one result per request, in the same order.
// Rejected values are reported through Result.Err; the returned error is only
// set when ctx is done or the pool refuses work, in which case the results
// gathered so far are discarded.
func (r *Runner) Run(ctx context.Context, reqs []validator.Request) ([]validator.Result, error) {
	results := make([]validator.Result, len(reqs))
	if len(reqs) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.pool.Size())

	for i, req := range reqs {
		g.Go(func() error {
			return r.pool.SubmitWaitContext(gctx, func() error {
				results[i] = r.dispatcher.Validate(req)
				r.logResult(results[i])
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Stream validates requests from in and sends results to the returned channel
// as they complete. The output channel is closed once in is drained or ctx is done.
func (r *Runner) Stream(ctx context.Context, in <-chan validator.Request) <-chan validator.Result {
	out := make(chan validator.Result, r.pool.Size())

	go func() {
		defer close(out)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.pool.Size())

	loop:
		for {
			select {
			case <-gctx.Done():
				break loop
			case req, ok := <-in:
				if !ok {
					break loop
				}
				g.Go(func() error {
					return r.pool.SubmitWaitContext(gctx, func() error {
						res := r.dispatcher.Validate(req)
						r.logResult(res)
						select {
						case out <- res:
							return nil
						case <-gctx.Done():
							return gctx.Err()
						}
					})
				})
			}
		}

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && r.logger != nil {
			r.logger.Warn("batch stream stopped", "error", err)
		}
	}()

	return out
}

func (r *Runner) logResult(res validator.Result) {
	if r.logger == nil {
		return
	}
	req := res.Request
	switch {
	case res.Err == nil:
		r.logger.Debug("value accepted", "platform", req.Platform, "field", req.Field)
	case validator.IsConfigError(res.Err):
		r.logger.Error("validation misconfigured", "platform", req.Platform, "field", req.Field, "error", res.Err)
	default:
		r.logger.Debug("value rejected", "platform", req.Platform, "field", req.Field, "error", res.Err)
	}
}
