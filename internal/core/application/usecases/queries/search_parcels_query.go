// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly and return view models; they
// never mutate state, so reclassification runs as a command beforehand.
package queries

import (
	"errors"
	"strings"
	"time"

	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/guard"
)

var ErrSearchParcelsQueryIsNotConstructed = errors.New(
	"SearchParcelsQuery must be created via NewSearchParcelsQuery constructor",
)

// SearchParcelsQuery retrieves parcel records, optionally narrowed by
// lifecycle status and a free-text search over recipient, tracking number,
// carrier and slot.
//
// Example:
//
//	query, err := NewSearchParcelsQuery("pending", "maria")
//	if err != nil {
//	    return fmt.Errorf("invalid search: %w", err)
//	}
//
//	handler := NewSearchParcelsQueryHandler(db)
//	parcels, err := handler.Handle(ctx, query)
type SearchParcelsQuery struct {
	status parcel.Status
	text   string

	guard guard.ConstructorGuard
}

// NewSearchParcelsQuery creates a search query. statusName narrows the result
// to one lifecycle status ("pending", "delivered", "archived") or matches
// everything when empty or "all"; text is the free-text filter, "" for none.
func NewSearchParcelsQuery(statusName string, text string) (SearchParcelsQuery, error) {
	query := SearchParcelsQuery{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}

	if statusName != "" && !strings.EqualFold(statusName, "all") {
		status, err := parcel.ParseStatus(statusName)
		if err != nil {
			return SearchParcelsQuery{}, err
		}
		query.status = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchParcelsQueryIsNotConstructed if validation fails.
func (q SearchParcelsQuery) Validate() error {
	return q.guard.Validate(ErrSearchParcelsQueryIsNotConstructed)
}

// Status returns the status filter, parcel.Unknown when the search spans all
// lifecycle states.
func (q SearchParcelsQuery) Status() parcel.Status {
	return q.status
}

// Text returns the free-text filter.
func (q SearchParcelsQuery) Text() string {
	return q.text
}

// ParcelView is the read model for a single parcel record.
//
// RegisteredAt is normalized from storage, which may still hold timestamps
// in the legacy "DD/MM/YYYY, HH:MM:SS" form alongside RFC 3339.
type ParcelView struct {
	ID             string
	TrackingNumber string
	Carrier        string
	Recipient      string
	Category       string
	Size           string
	Slot           string
	RackNumber     string
	ColorLabel     string
	RegisteredBy   string
	RegisteredAt   time.Time
	DeliveredAt    *time.Time
	Status         string
}
