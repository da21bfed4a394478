package commands

import (
	"errors"

	"mailroom/internal/pkg/guard"
)

var ErrReclassifyStaleParcelsCommandIsNotConstructed = errors.New(
	"ReclassifyStaleParcelsCommand must be created via NewReclassifyStaleParcelsCommand constructor",
)

// ReclassifyStaleParcelsCommand triggers archival of parcels left unclaimed
// past the dwell time. There is no scheduler: read paths issue this command
// before querying, so classifications always reflect the current clock.
//
// Example:
//
//	cmd := NewReclassifyStaleParcelsCommand()
//	handler := NewReclassifyStaleParcelsCommandHandler(uowFactory, archiver)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("reclassification failed: %v", err)
//	}
type ReclassifyStaleParcelsCommand struct {
	guard guard.ConstructorGuard
}

// NewReclassifyStaleParcelsCommand creates a command to archive stale parcels.
// This is a parameterless command that processes all pending records.
func NewReclassifyStaleParcelsCommand() ReclassifyStaleParcelsCommand {
	return ReclassifyStaleParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrReclassifyStaleParcelsCommandIsNotConstructed if validation fails.
func (c *ReclassifyStaleParcelsCommand) Validate() error {
	return c.guard.Validate(ErrReclassifyStaleParcelsCommandIsNotConstructed)
}
