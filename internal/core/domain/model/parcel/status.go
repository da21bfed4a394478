package parcel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatusTransition is returned when a lifecycle operation is
// attempted from a status that does not allow it, for example confirming
// delivery of a parcel that has already been delivered. Errors returned by
// the transition methods wrap this sentinel and are matchable with errors.Is.
var ErrInvalidStatusTransition = errors.New("parcel status does not allow this transition")

// Status represents the lifecycle state of a parcel.
// It implements a state machine with defined transitions to ensure
// parcels follow the correct mailroom workflow.
//
// State transitions:
//
//	Pending ──┬──> Delivered (terminal)
//	          │
//	          └──> Archived ──> Delivered
//	        (30-day staleness)  (late pickup)
//
// Archived parcels only leave the archive through explicit external action
// (return to carrier) or a late delivery confirmation; Delivered is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status stamped at intake.
	// Parcels in this status are waiting to be picked up.
	Pending

	// Delivered indicates the parcel was handed to its recipient with a
	// captured signature. This is a final state with no further transitions.
	Delivered

	// Archived indicates the parcel aged past the staleness dwell time
	// without being picked up ("dead letter" shelf).
	Archived
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
		Archived:  "Archived",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Delivered: "Delivered",
		Archived:  "Archived",
	}
}

// ParseStatus converts a status name to its Status value. Matching is
// case-insensitive so HTTP query values like "pending" resolve too.
// Returns an error for names that do not denote a valid status.
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, name) {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%q is not a valid parcel status", name)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Delivered, Archived.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid parcel status", s)
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateDeliver checks if the status allows delivery confirmation without
// performing the transition.
//
// Valid statuses for delivery:
//   - Pending (normal pickup)
//   - Archived (late pickup of an aged parcel)
//
// Invalid statuses for delivery:
//   - Delivered (already handed out; the original delivery record must not
//     be silently overwritten)
//   - Unknown (invalid status)
func (s Status) ValidateDeliver() error {
	if s != Pending && s != Archived {
		return fmt.Errorf("%w: %s cannot be delivered", ErrInvalidStatusTransition, s)
	}
	return nil
}

// Deliver transitions the status to Delivered.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error wrapping ErrInvalidStatusTransition) otherwise
func (s Status) Deliver() (Status, error) {
	if err := s.ValidateDeliver(); err != nil {
		return 0, err
	}

	return Delivered, nil
}

// Archive transitions the status to Archived.
//
// Valid transitions:
//   - Pending -> Archived (staleness reclassification)
//
// Delivered parcels are never archived regardless of age, and an Archived
// parcel stays archived; both attempts fail.
func (s Status) Archive() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: %s cannot be archived", ErrInvalidStatusTransition, s)
	}

	return Archived, nil
}
