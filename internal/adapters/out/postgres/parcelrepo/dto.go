// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. Implements the repository pattern for the parcel domain
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Indexed by tracking number (non-unique: duplicate intake creates independent
// rows) and by status for the reclassification sweep.
//
// Timestamps are stored as text. New rows are written in RFC 3339; rows
// imported from the legacy system may carry "DD/MM/YYYY, HH:MM:SS" and are
// normalized on read.
type ParcelDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"index"`
	Carrier        string
	Recipient      string
	Category       string
	Size           string
	Slot           string `gorm:"type:varchar(2)"`
	RackNumber     string
	ColorLabel     string
	RegisteredBy   string
	RegisteredAt   string `gorm:"index"`
	DeliveredAt    *string
	Signature      []byte
	Status         string `gorm:"index"`
}

// TableName specifies the database table name for parcel records.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var deliveredAt *string
	if instant := aggregate.DeliveredAt(); instant != nil {
		formatted := instant.Format(time.RFC3339Nano)
		deliveredAt = &formatted
	}

	return ParcelDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		Carrier:        aggregate.Carrier(),
		Recipient:      aggregate.Recipient(),
		Category:       aggregate.Category(),
		Size:           aggregate.Size().String(),
		Slot:           aggregate.Slot().String(),
		RackNumber:     aggregate.RackNumber(),
		ColorLabel:     aggregate.ColorLabel(),
		RegisteredBy:   aggregate.RegisteredBy(),
		RegisteredAt:   aggregate.RegisteredAt().Format(time.RFC3339Nano),
		DeliveredAt:    deliveredAt,
		Signature:      aggregate.Signature(),
		Status:         aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including lifecycle state using
// RestoreParcel. Legacy timestamps are normalized; an unparseable value
// falls back to the current time rather than failing the read.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	size, err := parcel.ParseSize(dto.Size)
	if err != nil {
		return nil, err
	}

	slot, err := kernel.ParseSlot(dto.Slot)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	registeredAt, _ := kernel.NormalizeInstant(dto.RegisteredAt, now)

	var deliveredAt *time.Time
	if dto.DeliveredAt != nil {
		instant, _ := kernel.NormalizeInstant(*dto.DeliveredAt, now)
		deliveredAt = &instant
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingNumber,
		dto.Carrier,
		dto.Recipient,
		dto.Category,
		size,
		slot,
		dto.RackNumber,
		dto.ColorLabel,
		dto.RegisteredBy,
		registeredAt,
		status,
		deliveredAt,
		dto.Signature,
	)
}
