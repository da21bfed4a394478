package commands

import (
	"context"
	"time"
)

// DeliverParcelCommandHandler handles the business logic for delivery
// confirmation. Looks up the record targeted by the tracking number and
// marks it Delivered with the signature and timestamp.
//
// Example:
//
//	handler := NewDeliverParcelCommandHandler(uowFactory)
//	cmd, _ := NewDeliverParcelCommand("TRK-1001", signaturePNG)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery confirmation failed: %w", err)
//	}
type DeliverParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeliverParcelCommandHandler creates a handler for delivery confirmation.
// Requires a ParcelUoWFactory for transactional persistence.
func NewDeliverParcelCommandHandler(uowFactory ParcelUoWFactory) DeliverParcelCommandHandler {
	return DeliverParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
// Fails with an ObjectNotFoundError when no record carries the tracking
// number, and with the aggregate's transition error when the targeted
// record cannot be delivered (an already-Delivered record is looked up and
// rejected, not reported missing); failures leave the record unchanged.
func (h *DeliverParcelCommandHandler) Handle(ctx context.Context, cmd DeliverParcelCommand) error {
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
	aggregate, err := parcelRepo.GetForDelivery(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	if err = aggregate.Deliver(cmd.Signature(), time.Now()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
