package commands

import (
	"context"
	"time"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
	"mailroom/internal/core/ports"
	"mailroom/internal/pkg/errs"
)

// RegisterParcelCommandHandler handles the business logic for parcel intake.
// Validates the storage slot against carrier and size constraints, checks the
// recipient against the directory, and persists a new Pending record.
//
// Business rules:
//   - The chosen slot must be eligible for the carrier/size combination
//   - An unrecognized recipient name forces the red color label
//   - An exactly matched recipient drops a submitted red label
//   - Duplicate tracking numbers create independent records
type RegisterParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	directory  ports.RecipientDirectory
	matcher    services.Matcher
	allocator  services.SlotAllocator
}

// NewRegisterParcelCommandHandler creates a handler for parcel intake operations.
// Requires a ParcelUoWFactory for transactional persistence and the recipient
// directory for the unknown-recipient rule.
func NewRegisterParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	directory ports.RecipientDirectory,
	matcher services.Matcher,
	allocator services.SlotAllocator,
) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
		matcher:    matcher,
		allocator:  allocator,
	}
}

// Handle processes the parcel registration command.
// Verifies slot eligibility, applies the unknown-recipient red label when the
// directory has no trace of the name, and stores the parcel in Pending status.
// Uses a transaction to ensure the record is properly persisted or rolled back.
func (h *RegisterParcelCommandHandler) Handle(ctx context.Context, cmd RegisterParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	available := h.allocator.AvailableSlots(cmd.Carrier(), cmd.Size())
	if h.allocator.Reconcile(cmd.Slot().String(), available) != cmd.Slot().String() {
		return errs.NewValueIsInvalidError("slot")
	}

	entries, err := h.directory.GetAll(ctx)
	if err != nil {
		return err
	}

	colorLabel := cmd.ColorLabel()
	match := h.matcher.Match(cmd.Recipient(), entries)
	switch {
	case match.Quarantined:
		colorLabel = parcel.ColorLabelRed
	case match.ClearRedLabel && colorLabel == parcel.ColorLabelRed:
		// A confirmed recipient cannot carry the quarantine label.
		colorLabel = ""
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.TrackingNumber(),
		cmd.Carrier(),
		cmd.Recipient(),
		cmd.Category(),
		cmd.Size(),
		cmd.Slot(),
		cmd.RackNumber(),
		colorLabel,
		cmd.RegisteredBy(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
