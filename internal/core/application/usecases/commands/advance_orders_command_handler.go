package commands

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// AdvanceOrdersResult summarizes one lifecycle tick.
type AdvanceOrdersResult struct {
	// Evaluated is the number of in-flight orders considered.
	Evaluated int

	// Updated is the number of orders successfully moved to a new status.
	Updated int

	// Failed is the number of status updates that errored.
	Failed int

	// Elapsed is the wall time the tick took.
	Elapsed time.Duration
}

// AdvanceOrdersCommandHandler is the order lifecycle engine. On every tick it
// fetches all in-flight orders (pending, in-preparation, ready), evaluates the
// progression policy for each, and writes the resulting status transitions
// back through the store.
//
// Updates for all advancing orders are issued concurrently and the tick
// completes only after every one has settled. A write failure for one order
// is logged with its id and counted; it never aborts the tick or affects the
// other orders. There is no mutual exclusion between ticks: a tick that
// overruns the schedule may overlap the next one, and the store's blind-merge
// update means the later write wins.
type AdvanceOrdersCommandHandler struct {
	store  ports.OrderStore
	policy services.ProgressionPolicy
	logger *slog.Logger
}

// NewAdvanceOrdersCommandHandler creates the lifecycle engine handler.
func NewAdvanceOrdersCommandHandler(
	store ports.OrderStore,
	policy services.ProgressionPolicy,
	logger *slog.Logger,
) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		store:  store,
		policy: policy,
		logger: logger.With("component", "lifecycle_engine"),
	}
}

// Handle runs one tick and reports how many orders were updated, how many
// updates failed, and how long the pass took. The returned error covers only
// the initial fetch; per-order failures are absorbed into the result.
func (h *AdvanceOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrdersCommand,
) (AdvanceOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrdersResult{}, err
	}

	start := time.Now()
	now := start

	inFlight, err := h.store.List(ctx, ports.OrderFilter{
		Statuses: []order.Status{order.Pending, order.InPreparation, order.Ready},
	})
	if err != nil {
		return AdvanceOrdersResult{}, err
	}

	var wg sync.WaitGroup
	var updated, failed atomic.Int64

	for _, o := range inFlight {
		nextStatus, advance := h.policy.NextTransition(o, now)
		if !advance {
			continue
		}

		patch := ports.OrderPatch{Status: nextStatus}
		switch nextStatus {
		case order.Ready:
			patch.ReadyAt = &now
		case order.Completed:
			patch.CompletedAt = &now
		}

		wg.Add(1)
		go func(id string, patch ports.OrderPatch) {
			defer wg.Done()

			if _, updateErr := h.store.Update(ctx, id, patch); updateErr != nil {
				h.logger.ErrorContext(ctx, "Failed to update order status",
					"orderId", id,
					"status", patch.Status.String(),
					"error", updateErr,
				)
				failed.Add(1)
				return
			}
			updated.Add(1)
		}(o.ID(), patch)
	}

	wg.Wait()

	return AdvanceOrdersResult{
		Evaluated: len(inFlight),
		Updated:   int(updated.Load()),
		Failed:    int(failed.Load()),
		Elapsed:   time.Since(start),
	}, nil
}
