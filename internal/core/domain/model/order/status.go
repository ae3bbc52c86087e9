package order

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change is not an
// edge of the order workflow. The order is left unchanged.
var ErrInvalidTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of a food order.
// It implements a state machine with defined transitions so that orders
// follow the canteen workflow and never skip preparation steps.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Prepared ──> Delivered
//	   │            │
//	   └──> Rejected <┘
//
// Delivered, Rejected, and Cancelled are terminal. There are no self
// loops: re-applying the current status is an invalid transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order,
	// waiting for the canteen staff to look at it.
	Pending

	// Confirmed indicates staff accepted the order and its payment proof.
	Confirmed

	// Prepared indicates the food is ready for pickup or delivery.
	Prepared

	// Delivered indicates the order was handed over. Terminal.
	Delivered

	// Rejected indicates staff refused the order. Terminal.
	Rejected

	// Cancelled indicates the order was withdrawn before confirmation. Terminal.
	Cancelled
)

// getStatusStrings returns the wire names for all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Prepared:  "prepared",
		Delivered: "delivered",
		Rejected:  "rejected",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the statuses accepted from external input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Prepared:  "prepared",
		Delivered: "delivered",
		Rejected:  "rejected",
		Cancelled: "cancelled",
	}
}

// statusAliases maps legacy synonym names onto the canonical statuses.
// Older clients still submit "waiting" and "ready".
func statusAliases() map[string]Status {
	return map[string]Status{
		"waiting": Pending,
		"ready":   Prepared,
	}
}

// transitions is the closed edge set of the order workflow.
// Rejection is deliberately allowed from Pending and Confirmed but not
// from Prepared: once food is made, the order runs to delivery.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Rejected},
		Confirmed: {Prepared, Rejected},
		Prepared:  {Delivered},
	}
}

// StatusFromString normalizes an externally supplied status name into a
// Status value. Canonical names and the legacy aliases "waiting" and
// "ready" are accepted; anything else is rejected.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	if status, ok := statusAliases()[s]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status name", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo applies one step of the workflow.
//
// Returns (target, nil) when current->target is a listed edge, otherwise
// (0, error) wrapping ErrInvalidTransition. Requesting the current status
// again fails: the edge set contains no self loops.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}

	return target, nil
}
