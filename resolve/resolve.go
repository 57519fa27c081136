package resolve

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/sector-atlas/parameter"
	"github.com/lixenwraith/sector-atlas/sector"
)

// Provider answers the external coordinate-source query: given a waat,
// an integer (lat, lon) pair. May fail per sector; that sector simply
// stays pending until the next pass.
type Provider interface {
	Resolve(ctx context.Context, waat string) (lat, lon *big.Int, err error)
}

// Runner incrementally resolves pending sectors in the background.
// Fixed-size batches with concurrent per-sector requests, a short delay
// between batches to rate-limit the provider, and only fully-resolved
// sectors ever cross back to the frame loop (over the updates channel).
type Runner struct {
	provider Provider
	log      *zap.Logger

	updates chan sector.Sector

	// inFlight guards against re-entry while a pass is running
	inFlight atomic.Bool

	// alive is the liveness flag; Stop clears it and the pass stops
	// scheduling further batches
	alive atomic.Bool
}

// NewRunner wires a runner to a provider. The logger may be zap.NewNop.
func NewRunner(provider Provider, log *zap.Logger) *Runner {
	r := &Runner{
		provider: provider,
		log:      log,
		updates:  make(chan sector.Sector, parameter.ResolveUpdateBuffer),
	}
	r.alive.Store(true)
	return r
}

// Updates delivers resolved sectors. The frame loop drains this
// between frames and applies store saves plus a scene rebuild.
func (r *Runner) Updates() <-chan sector.Sector {
	return r.updates
}

// Kick starts a resolution pass over the given pending sectors. A
// no-op when a previous pass is still in flight or the runner has been
// stopped. The slice is owned by the runner until the pass ends.
func (r *Runner) Kick(pending []sector.Sector) {
	if len(pending) == 0 || !r.alive.Load() {
		return
	}
	if !r.inFlight.CompareAndSwap(false, true) {
		return
	}

	go r.run(pending)
}

// Stop clears the liveness flag. An in-flight pass finishes its
// current batch and exits; no further batches are scheduled.
func (r *Runner) Stop() {
	r.alive.Store(false)
}

func (r *Runner) run(pending []sector.Sector) {
	defer r.inFlight.Store(false)

	ctx := context.Background()
	resolved := 0

	for start := 0; start < len(pending); start += parameter.ResolveBatchSize {
		if !r.alive.Load() {
			break
		}

		end := start + parameter.ResolveBatchSize
		if end > len(pending) {
			end = len(pending)
		}

		resolved += r.runBatch(ctx, pending[start:end])

		if end < len(pending) {
			time.Sleep(parameter.ResolveBatchDelay)
		}
	}

	r.log.Debug("resolution pass finished",
		zap.Int("pending", len(pending)),
		zap.Int("resolved", resolved))
}

// runBatch resolves one batch concurrently. Individual failures are
// swallowed: one failing sector never aborts the batch.
func (r *Runner) runBatch(ctx context.Context, batch []sector.Sector) int {
	var wg sync.WaitGroup
	var resolved atomic.Int64

	for i := range batch {
		wg.Add(1)
		go func(s sector.Sector) {
			defer wg.Done()

			lat, lon, err := r.provider.Resolve(ctx, s.Waat)
			if err != nil {
				r.log.Debug("sector resolution failed",
					zap.String("address", s.Address),
					zap.Error(err))
				return
			}

			s.Hecke = &sector.HeckePair{
				Lat: lat.String(),
				Lon: lon.String(),
			}
			resolved.Add(1)

			select {
			case r.updates <- s:
			default:
				// Frame loop stalled and the buffer filled; drop the
				// update, the sector stays pending and retries next pass
			}
		}(batch[i])
	}

	wg.Wait()
	return int(resolved.Load())
}
