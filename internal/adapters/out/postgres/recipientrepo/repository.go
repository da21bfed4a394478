package recipientrepo

import (
	"context"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/recipient"

	"gorm.io/gorm"
)

// GormRecipientDirectory implements RecipientDirectory using GORM.
type GormRecipientDirectory struct {
	db *gorm.DB
}

// NewGormRecipientDirectory creates a new GORM recipient directory.
func NewGormRecipientDirectory(db *gorm.DB) *GormRecipientDirectory {
	return &GormRecipientDirectory{db: db}
}

// GetAll retrieves every directory entry in insertion order.
func (r *GormRecipientDirectory) GetAll(ctx context.Context) ([]*recipient.Entry, error) {
	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*recipient.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Seed populates an empty directory with the building's known recipients.
// A directory that already holds entries is left untouched, so restarts do
// not duplicate rows.
func (r *GormRecipientDirectory) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&EntryDTO{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name string
		role recipient.Role
	}{
		{"Andrei Diaz", recipient.RoleStudent},
		{"Maria Rodriguez", recipient.RoleEmployee},
		{"Juan Perez", recipient.RoleResident},
		{"Ana Garcia", recipient.RoleStudent},
		{"Carlos Lopez", recipient.RoleEmployee},
		{"Sofia Martinez", recipient.RoleResident},
		{"Miguel Angel", recipient.RoleStudent},
		{"Laura Torres", recipient.RoleEmployee},
		{"Pedro Sanchez", recipient.RoleResident},
		{"Elena Ramirez", recipient.RoleStudent},
	}

	dtos := make([]EntryDTO, 0, len(seed))
	for _, s := range seed {
		entry, err := recipient.NewEntry(kernel.NewUUID(), s.name, s.role)
		if err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(entry))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
