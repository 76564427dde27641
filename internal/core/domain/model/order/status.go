package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> InPreparation ──> Ready ──> Completed
//	   │
//	   └──> Cancelled
//
// Only the lifecycle engine moves orders forward; Cancelled is reachable
// only from Pending and only through a cancellation request.
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for the kitchen to pick them up.
	Pending

	// InPreparation indicates the kitchen is working on the order.
	InPreparation

	// Ready indicates the order is ready for pickup.
	Ready

	// Completed indicates the order has been picked up.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the customer cancelled the order before
	// preparation started. This is a final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Pending:       "pending",
		InPreparation: "in-preparation",
		Ready:         "ready",
		Completed:     "completed",
		Cancelled:     "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "pending",
		InPreparation: "in-preparation",
		Ready:         "ready",
		Completed:     "completed",
		Cancelled:     "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InPreparation, Ready, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "unknown" for invalid status values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsInFlight reports whether the order is still moving through the
// fulfillment pipeline and should be considered by the lifecycle engine.
func (s Status) IsInFlight() bool {
	return s == Pending || s == InPreparation || s == Ready
}

// IsActive reports whether the order counts against a customer's
// concurrent order cap.
func (s Status) IsActive() bool {
	return s == Pending || s == InPreparation
}

// StartPreparation transitions the status to InPreparation.
//
// Valid transitions:
//   - Pending -> InPreparation
//
// Returns:
//   - (InPreparation, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) StartPreparation() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start preparation", s.String()),
		)
	}
	return InPreparation, nil
}

// MarkReady transitions the status to Ready.
//
// Valid transitions:
//   - InPreparation -> Ready
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) MarkReady() (Status, error) {
	if s != InPreparation {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark ready", s.String()),
		)
	}
	return Ready, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Ready -> Completed
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Complete() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Orders that have entered preparation can no longer be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
