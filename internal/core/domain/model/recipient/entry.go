package recipient

import (
	"errors"
	"strings"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not
// created through the NewEntry or RestoreEntry factory methods.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructors")

// Entry is a single record in the recipient directory: a person known to the
// mailroom who may receive packages. The directory is the source of truth
// the matcher validates free-text recipient names against.
type Entry struct {
	id   kernel.UUID
	name string
	role Role

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewEntry creates a directory entry with validation.
func NewEntry(id kernel.UUID, name string, role Role) (*Entry, error) {
	e := &Entry{
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setRole(role),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs a directory entry from persistent storage.
func RestoreEntry(id kernel.UUID, name string, role Role) (*Entry, error) {
	return NewEntry(id, name, role)
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}

	return nil
}

// IsEqual compares two entries by their unique identifiers.
func (e *Entry) IsEqual(other *Entry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Name returns the person's full name as it appears in the directory.
func (e *Entry) Name() string {
	return e.name
}

// Role returns the person's relationship with the building.
func (e *Entry) Role() Role {
	return e.role
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}

func (e *Entry) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	e.role = role
	return nil
}
