package commands

import (
	"errors"
	"strings"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrDeliverParcelCommandIsNotConstructed = errors.New(
	"DeliverParcelCommand must be created via NewDeliverParcelCommand constructor",
)

// DeliverParcelCommand represents a request to confirm handover of a parcel
// to its recipient, identified by tracking number, with a captured signature.
//
// Example:
//
//	cmd, err := NewDeliverParcelCommand("TRK-1001", signaturePNG)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewDeliverParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to confirm delivery: %w", err)
//	}
type DeliverParcelCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	signature      []byte

	guard guard.ConstructorGuard
}

// NewDeliverParcelCommand creates a command to confirm a delivery.
// The tracking number must be non-blank. The signature payload is carried
// as-is; the aggregate rejects blank signatures when the command is handled.
func NewDeliverParcelCommand(trackingNumber string, signature []byte) (DeliverParcelCommand, error) {
	command := DeliverParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(trackingNumber) == "" {
		return DeliverParcelCommand{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	command.trackingNumber = trackingNumber
	command.signature = signature
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverParcelCommandIsNotConstructed if validation fails.
func (c DeliverParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeliverParcelCommandIsNotConstructed)
}

// TrackingNumber returns the tracking number identifying the parcel.
func (c DeliverParcelCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Signature returns the captured signature payload.
func (c DeliverParcelCommand) Signature() []byte {
	return c.signature
}
