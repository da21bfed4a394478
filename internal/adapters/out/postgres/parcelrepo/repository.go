package parcelrepo

import (
	"context"
	"errors"
	"sort"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForDelivery retrieves the record a delivery confirmation targets.
// Tracking numbers are not unique, so intake duplicates resolve to the newest
// open record; when every record carrying the number is already Delivered,
// the newest of those is returned so the aggregate can reject the transition.
func (r *GormParcelRepository) GetForDelivery(
	ctx context.Context,
	trackingNumber string,
) (*parcel.Parcel, error) {
	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
	}

	parcels, err := toDomainSlice(dtos)
	if err != nil {
		return nil, err
	}

	for _, aggregate := range parcels {
		if aggregate.Status() != parcel.Delivered {
			return aggregate, nil
		}
	}

	return parcels[0], nil
}

// GetAll retrieves every parcel, most recently registered first.
func (r *GormParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInStatus retrieves every parcel in the given status, most recently
// registered first.
func (r *GormParcelRepository) GetAllInStatus(
	ctx context.Context,
	status parcel.Status,
) ([]*parcel.Parcel, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// toDomainSlice maps the rows and orders them most recently registered
// first. Ordering happens after mapping because legacy rows store their
// timestamps in a format that does not sort lexicographically; only the
// normalized instants compare correctly.
func toDomainSlice(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, aggregate)
	}

	sort.SliceStable(parcels, func(i, j int) bool {
		return parcels[i].RegisteredAt().After(parcels[j].RegisteredAt())
	})

	return parcels, nil
}
