package ports

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and querying parcel records by
// identifier, tracking number, and lifecycle status.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetForDelivery retrieves the record a delivery confirmation targets:
	// the most recently registered undelivered parcel with the given tracking
	// number, falling back to the most recent record of any status so that
	// delivering an already-Delivered parcel surfaces a transition error
	// rather than not-found. Tracking numbers are not unique; duplicate
	// intake creates independent records.
	GetForDelivery(ctx context.Context, trackingNumber string) (*parcel.Parcel, error)

	// GetAll retrieves every parcel, most recently registered first.
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)

	// GetAllInStatus retrieves every parcel in the given lifecycle status,
	// most recently registered first.
	GetAllInStatus(ctx context.Context, status parcel.Status) ([]*parcel.Parcel, error)
}
