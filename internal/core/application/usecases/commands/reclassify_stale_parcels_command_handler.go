package commands

import (
	"context"
	"time"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"
)

// ReclassifyStaleParcelsCommandHandler orchestrates archival of stale parcels.
// Loads every Pending record, applies the dwell-time rule, and persists only
// the records that changed. The whole sweep runs in a single transaction.
type ReclassifyStaleParcelsCommandHandler struct {
	uowFactory ParcelUoWFactory
	archiver   services.StaleArchiver
}

// NewReclassifyStaleParcelsCommandHandler creates a handler for the
// reclassification sweep. Requires a ParcelUoWFactory and the StaleArchiver
// domain service.
func NewReclassifyStaleParcelsCommandHandler(
	uowFactory ParcelUoWFactory,
	archiver services.StaleArchiver,
) ReclassifyStaleParcelsCommandHandler {
	return ReclassifyStaleParcelsCommandHandler{
		uowFactory: uowFactory,
		archiver:   archiver,
	}
}

// Handle processes the reclassification command.
// A sweep over records that are all fresh performs no writes, so running it
// repeatedly is safe.
func (h *ReclassifyStaleParcelsCommandHandler) Handle(ctx context.Context, cmd ReclassifyStaleParcelsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	pending, err := parcelRepo.GetAllInStatus(ctx, parcel.Pending)
	if err != nil {
		return err
	}

	changed, err := h.archiver.Reclassify(pending, time.Now())
	if err != nil {
		return err
	}

	for _, aggregate := range changed {
		if err = parcelRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
