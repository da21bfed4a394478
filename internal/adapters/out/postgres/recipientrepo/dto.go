// Package recipientrepo provides persistence for the recipient directory.
// The directory is reference data: seeded once at startup and read at intake
// time to validate recipient names.
package recipientrepo

import (
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for directory entries.
type EntryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"index"`
	Role string
}

// TableName specifies the database table name for directory entries.
func (EntryDTO) TableName() string {
	return "recipients"
}

// fromDomain converts a directory entry to its database representation.
func fromDomain(entry *recipient.Entry) EntryDTO {
	return EntryDTO{
		ID:   entry.ID().Bytes(),
		Name: entry.Name(),
		Role: entry.Role().String(),
	}
}

// toDomain converts a database DTO to a directory entry.
func toDomain(dto EntryDTO) (*recipient.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := recipient.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return recipient.RestoreEntry(id, dto.Name, role)
}
