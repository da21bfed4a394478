package parcel

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel or RestoreParcel factory methods.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructors")

	// ErrSignatureIsRequired is returned when a delivery confirmation carries an
	// empty or blank signature payload.
	ErrSignatureIsRequired = errors.New("signature is required for delivery confirmation")
)

// Parcel represents a physical package tracked from mailroom intake through
// delivery or archival. It is the aggregate root of the package lifecycle.
//
// Parcel follows these invariants:
//   - All intake fields (carrier, tracking number, recipient, category, size,
//     slot, rack number, registered-by) are required and validated at creation
//   - registeredAt is stamped once at creation and never mutated
//   - Status transitions are monotonic: Pending -> {Delivered, Archived};
//     Delivered is terminal
//   - deliveredAt and signature are present if and only if status is Delivered
//   - The color label, when present, belongs to the fixed palette
//
// The tracking number is not unique across records: duplicate intake creates
// a second Pending record on purpose (preserved carrier behavior).
type Parcel struct {
	id             kernel.UUID
	trackingNumber string
	carrier        string
	recipient      string
	category       string
	size           Size
	slot           kernel.Slot
	rackNumber     string
	colorLabel     string
	registeredBy   string
	registeredAt   time.Time
	deliveredAt    *time.Time
	signature      []byte
	status         Status

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a new Parcel at intake time with validation. This is the
// only way to create a fresh parcel record; it stamps registeredAt with the
// given instant, sets status to Pending and leaves delivery fields empty.
//
// Every textual intake field is required; a missing field fails with a
// ValueIsRequiredError naming it. All field errors are joined, so a caller
// sees everything that is missing at once.
func NewParcel(
	id kernel.UUID,
	trackingNumber string,
	carrier string,
	recipient string,
	category string,
	size Size,
	slot kernel.Slot,
	rackNumber string,
	colorLabel string,
	registeredBy string,
	now time.Time,
) (*Parcel, error) {
	p := &Parcel{
		status:        Pending,
		registeredAt:  now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRequiredField("trackingNumber", trackingNumber, &p.trackingNumber),
		p.setRequiredField("carrier", carrier, &p.carrier),
		p.setRequiredField("recipient", recipient, &p.recipient),
		p.setRequiredField("category", category, &p.category),
		p.setSize(size),
		p.setSlot(slot),
		p.setRequiredField("rackNumber", rackNumber, &p.rackNumber),
		p.setColorLabel(colorLabel),
		p.setRequiredField("registeredBy", registeredBy, &p.registeredBy),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistent storage, including its
// lifecycle state. The restored parcel behaves identically to one that went
// through the normal intake and delivery operations.
//
// Business rules enforced on restore:
//   - All intake fields must still be valid
//   - The status must be a valid lifecycle state
//   - deliveredAt and signature must be present exactly when status is Delivered
func RestoreParcel(
	id kernel.UUID,
	trackingNumber string,
	carrier string,
	recipient string,
	category string,
	size Size,
	slot kernel.Slot,
	rackNumber string,
	colorLabel string,
	registeredBy string,
	registeredAt time.Time,
	status Status,
	deliveredAt *time.Time,
	signature []byte,
) (*Parcel, error) {
	p := &Parcel{
		registeredAt:  registeredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRequiredField("trackingNumber", trackingNumber, &p.trackingNumber),
		p.setRequiredField("carrier", carrier, &p.carrier),
		p.setRequiredField("recipient", recipient, &p.recipient),
		p.setRequiredField("category", category, &p.category),
		p.setSize(size),
		p.setSlot(slot),
		p.setRequiredField("rackNumber", rackNumber, &p.rackNumber),
		p.setColorLabel(colorLabel),
		p.setRequiredField("registeredBy", registeredBy, &p.registeredBy),
		p.setLifecycle(status, deliveredAt, signature),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed through a
// constructor. Call it when reconstructing parcels from persistence.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// TrackingNumber returns the carrier tracking number as entered at intake.
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// Carrier returns the carrier name.
func (p *Parcel) Carrier() string {
	return p.carrier
}

// Recipient returns the free-text recipient name.
func (p *Parcel) Recipient() string {
	return p.recipient
}

// Category returns the package category.
func (p *Parcel) Category() string {
	return p.category
}

// Size returns the size class of the parcel.
func (p *Parcel) Size() Size {
	return p.size
}

// Slot returns the assigned storage slot.
func (p *Parcel) Slot() kernel.Slot {
	return p.slot
}

// RackNumber returns the assigned rack.
func (p *Parcel) RackNumber() string {
	return p.rackNumber
}

// ColorLabel returns the operator color label, or "" when none is applied.
func (p *Parcel) ColorLabel() string {
	return p.colorLabel
}

// RegisteredBy returns the name of the operator who registered the parcel.
func (p *Parcel) RegisteredBy() string {
	return p.registeredBy
}

// RegisteredAt returns the intake instant. It is stamped once at creation.
func (p *Parcel) RegisteredAt() time.Time {
	return p.registeredAt
}

// DeliveredAt returns the delivery instant, or nil while undelivered.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// Signature returns the captured signature blob, or nil while undelivered.
func (p *Parcel) Signature() []byte {
	return p.signature
}

// Status returns the current lifecycle status of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// AgeDays returns the whole number of days elapsed since registration,
// rounded down. Used by the staleness rule.
func (p *Parcel) AgeDays(now time.Time) int {
	return int(now.Sub(p.registeredAt).Hours() / 24)
}

// Deliver confirms handover of the parcel to its recipient.
//
// Business rules:
//   - The signature payload must be non-empty and non-blank
//     (fails with ErrSignatureIsRequired)
//   - The parcel must be Pending or Archived; delivering an already
//     Delivered parcel fails with an error wrapping ErrInvalidStatusTransition
//     and leaves the record unchanged
//
// On success the status becomes Delivered and deliveredAt is stamped with
// the given instant, exactly once.
func (p *Parcel) Deliver(signature []byte, now time.Time) error {
	if len(bytes.TrimSpace(signature)) == 0 {
		return ErrSignatureIsRequired
	}

	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.deliveredAt = &now
	p.signature = signature
	return nil
}

// Archive reclassifies a stale Pending parcel to Archived.
// Delivered parcels are never archived; archiving them fails with an error
// wrapping ErrInvalidStatusTransition.
func (p *Parcel) Archive() error {
	newStatus, err := p.status.Archive()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// ApplyColorLabel sets the operator color label. An empty label clears it;
// anything else must belong to the fixed palette.
func (p *Parcel) ApplyColorLabel(label string) error {
	return p.setColorLabel(label)
}

// setID validates and sets the parcel's unique identifier.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setRequiredField validates that a textual intake field is non-blank and
// stores it at dst.
func (p *Parcel) setRequiredField(name, value string, dst *string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}

func (p *Parcel) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("size", err)
	}
	p.size = size
	return nil
}

func (p *Parcel) setSlot(slot kernel.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	p.slot = slot
	return nil
}

func (p *Parcel) setColorLabel(label string) error {
	if label != "" && !IsKnownColorLabel(label) {
		return errs.NewValueIsInvalidError("colorLabel")
	}
	p.colorLabel = label
	return nil
}

// setLifecycle restores the lifecycle fields, enforcing that delivery
// evidence is present exactly when the status is Delivered.
func (p *Parcel) setLifecycle(status Status, deliveredAt *time.Time, signature []byte) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	delivered := status == Delivered
	hasEvidence := deliveredAt != nil && len(signature) > 0
	if delivered != hasEvidence {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("deliveryDate and signature must be present exactly when status is Delivered"))
	}

	p.status = status
	p.deliveredAt = deliveredAt
	p.signature = signature
	return nil
}
