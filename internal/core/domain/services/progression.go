package services

import (
	"math"
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// Rand is the source of randomness for probabilistic decisions.
// SystemRand implements it for production use; tests substitute a
// deterministic stub.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// Thresholds for the probabilistic transition rules, in minutes.
// Each rule has a window where the transition fires with 50% probability
// per tick and a deadline past which it fires deterministically.
const (
	preparationEligibleAfterMin = 1.0
	preparationForcedAfterMin   = 3.0

	readyWindowMin = 3.0

	completionEligibleAfterMin = 1.0
	completionForcedAfterMin   = 2.0

	transitionProbability = 0.5
)

// Estimation window for order completion, in minutes. For orders of more
// than two pizzas both bounds grow by one minute per extra pizza.
const (
	estimateMinMinutes = 3
	estimateMaxMinutes = 5
	estimateBasePizzas = 2
)

// ProgressionPolicy decides whether and how an in-flight order advances on a
// lifecycle tick. The rules are time-based with a probabilistic early-trigger
// component, simulating realistic but bounded kitchen timing:
//
//   - Pending -> InPreparation: deterministic once the order is older than
//     3 minutes; from 1 minute on, fires with 50% probability per tick.
//   - InPreparation -> Ready: with d = minutes past the completion estimate
//     (signed), deterministic once d > 3; while |d| <= 3, fires with 50%
//     probability per tick.
//   - Ready -> Completed: requires at least 1 minute since the order became
//     ready; deterministic after 2 minutes, otherwise 50% per tick.
//
// One random draw is made per applicable rule per tick; draws are never
// memoized across ticks.
type ProgressionPolicy struct {
	rnd Rand
}

// NewProgressionPolicy creates a policy using the given randomness source.
func NewProgressionPolicy(rnd Rand) ProgressionPolicy {
	return ProgressionPolicy{rnd: rnd}
}

// NextTransition evaluates the transition rule for the order's current status
// at the given instant. It returns the status the order should move to and
// true, or (Unknown, false) when the order stays put this tick.
//
// Terminal orders and orders in unexpected states never advance.
func (p ProgressionPolicy) NextTransition(o *order.Order, now time.Time) (order.Status, bool) {
	switch o.Status() {
	case order.Pending:
		minutesSinceCreated := now.Sub(o.CreatedAt()).Minutes()
		if minutesSinceCreated > preparationForcedAfterMin ||
			(minutesSinceCreated >= preparationEligibleAfterMin && p.rnd.Float64() < transitionProbability) {
			return order.InPreparation, true
		}

	case order.InPreparation:
		diffMinutes := now.Sub(o.EstimatedCompletionAt()).Minutes()
		if diffMinutes > readyWindowMin ||
			(math.Abs(diffMinutes) <= readyWindowMin && p.rnd.Float64() < transitionProbability) {
			return order.Ready, true
		}

	case order.Ready:
		readyAt := o.ReadyAt()
		if readyAt == nil {
			break
		}
		minutesSinceReady := now.Sub(*readyAt).Minutes()
		if minutesSinceReady >= completionEligibleAfterMin &&
			(minutesSinceReady > completionForcedAfterMin || p.rnd.Float64() < transitionProbability) {
			return order.Completed, true
		}
	}

	return order.Unknown, false
}

// EstimateCompletion draws the estimated completion time for a new order.
//
// The base window is 3 to 5 minutes; for every pizza above two, both bounds
// grow by one minute. The estimate is a uniformly random whole minute within
// the window, fixed at creation and never recomputed.
func EstimateCompletion(rnd Rand, now time.Time, pizzaCount int) time.Time {
	minMinutes := estimateMinMinutes
	maxMinutes := estimateMaxMinutes
	if pizzaCount > estimateBasePizzas {
		minMinutes += pizzaCount - estimateBasePizzas
		maxMinutes += pizzaCount - estimateBasePizzas
	}

	estimatedMinutes := rnd.IntN(maxMinutes-minMinutes+1) + minMinutes
	return now.Add(time.Duration(estimatedMinutes) * time.Minute)
}
