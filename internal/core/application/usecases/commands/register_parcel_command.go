package commands

import (
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrRegisterParcelCommandIsNotConstructed = errors.New(
	"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
)

// RegisterParcelCommand represents a request to register a parcel at mailroom
// intake. Encapsulates the intake form: carrier, tracking number, recipient,
// category, size, storage placement and an optional color label.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewRegisterParcelCommand(parcelID, "TRK-1001", "Amazon",
//	    "Maria Rodriguez", "Caja", "Chico", "A1", "R1", "", "Carlos Lopez")
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//
//	handler := NewRegisterParcelCommandHandler(uowFactory, directory, matcher, allocator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register parcel: %w", err)
//	}
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID       kernel.UUID
	trackingNumber string
	carrier        string
	recipient      string
	category       string
	size           parcel.Size
	slot           kernel.Slot
	rackNumber     string
	colorLabel     string
	registeredBy   string

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a new parcel.
// Size and slot arrive as their catalog names ("Chico", "A1") and are parsed
// here; every other textual field must be non-blank except colorLabel, which
// may be empty. Returns an error joining every validation failure.
func NewRegisterParcelCommand(
	parcelID kernel.UUID,
	trackingNumber string,
	carrier string,
	recipient string,
	category string,
	sizeName string,
	slotCode string,
	rackNumber string,
	colorLabel string,
	registeredBy string,
) (RegisterParcelCommand, error) {
	command := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setRequired("trackingNumber", trackingNumber, &command.trackingNumber),
		command.setRequired("carrier", carrier, &command.carrier),
		command.setRequired("recipient", recipient, &command.recipient),
		command.setRequired("category", category, &command.category),
		command.setSize(sizeName),
		command.setSlot(slotCode),
		command.setRequired("rackNumber", rackNumber, &command.rackNumber),
		command.setColorLabel(colorLabel),
		command.setRequired("registeredBy", registeredBy, &command.registeredBy),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterParcelCommandIsNotConstructed if validation fails.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel record.
func (c RegisterParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// TrackingNumber returns the carrier tracking number from the intake form.
func (c RegisterParcelCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Carrier returns the carrier name.
func (c RegisterParcelCommand) Carrier() string {
	return c.carrier
}

// Recipient returns the free-text recipient name.
func (c RegisterParcelCommand) Recipient() string {
	return c.recipient
}

// Category returns the package category.
func (c RegisterParcelCommand) Category() string {
	return c.category
}

// Size returns the parsed size class.
func (c RegisterParcelCommand) Size() parcel.Size {
	return c.size
}

// Slot returns the parsed storage slot.
func (c RegisterParcelCommand) Slot() kernel.Slot {
	return c.slot
}

// RackNumber returns the assigned rack.
func (c RegisterParcelCommand) RackNumber() string {
	return c.rackNumber
}

// ColorLabel returns the operator color label, "" when none was picked.
func (c RegisterParcelCommand) ColorLabel() string {
	return c.colorLabel
}

// RegisteredBy returns the name of the operator registering the parcel.
func (c RegisterParcelCommand) RegisteredBy() string {
	return c.registeredBy
}

func (c *RegisterParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RegisterParcelCommand) setRequired(name, value string, dst *string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}

	*dst = value
	return nil
}

func (c *RegisterParcelCommand) setSize(sizeName string) error {
	size, err := parcel.ParseSize(sizeName)
	if err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *RegisterParcelCommand) setSlot(slotCode string) error {
	slot, err := kernel.ParseSlot(slotCode)
	if err != nil {
		return err
	}

	c.slot = slot
	return nil
}

func (c *RegisterParcelCommand) setColorLabel(colorLabel string) error {
	if colorLabel != "" && !parcel.IsKnownColorLabel(colorLabel) {
		return errs.NewValueIsInvalidError("colorLabel")
	}

	c.colorLabel = colorLabel
	return nil
}
