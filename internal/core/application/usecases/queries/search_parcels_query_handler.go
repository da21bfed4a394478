package queries

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// SearchParcelsQueryHandler retrieves parcel records from the database.
// Applies the status filter in SQL and the free-text filter in memory, and
// normalizes stored timestamps that may still be in the legacy format.
//
// Example:
//
//	handler := NewSearchParcelsQueryHandler(db)
//	query, _ := NewSearchParcelsQuery("", "TRK-10")
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("search failed: %v", err)
//	    return err
//	}
type SearchParcelsQueryHandler struct {
	db *gorm.DB
}

// NewSearchParcelsQueryHandler creates a handler for parcel searches.
// Requires a GORM database connection for query execution.
func NewSearchParcelsQueryHandler(db *gorm.DB) SearchParcelsQueryHandler {
	return SearchParcelsQueryHandler{db: db}
}

// Handle executes the search and returns matching records, most recently
// registered first. A record whose stored registration timestamp cannot be
// parsed is kept with the current time and logged, never dropped.
func (h SearchParcelsQueryHandler) Handle(
	ctx context.Context,
	query SearchParcelsQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			tracking_number,
			carrier,
			recipient,
			category,
			size,
			slot,
			rack_number,
			color_label,
			registered_by,
			registered_at,
			delivered_at,
			status
		FROM parcels
	`
	args := make([]any, 0, 1)
	if query.Status() != parcel.Unknown {
		sql += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	parcels := make([]ParcelView, 0)

	for rows.Next() {
		var view ParcelView
		var registeredAt string
		var deliveredAt *string

		err = rows.Scan(
			&view.ID,
			&view.TrackingNumber,
			&view.Carrier,
			&view.Recipient,
			&view.Category,
			&view.Size,
			&view.Slot,
			&view.RackNumber,
			&view.ColorLabel,
			&view.RegisteredBy,
			&registeredAt,
			&deliveredAt,
			&view.Status,
		)
		if err != nil {
			return nil, err
		}

		instant, ok := kernel.NormalizeInstant(registeredAt, now)
		if !ok {
			slog.Warn("unparseable registration timestamp",
				"parcelID", view.ID, "registeredAt", registeredAt)
		}
		view.RegisteredAt = instant

		if deliveredAt != nil {
			instant, ok = kernel.NormalizeInstant(*deliveredAt, now)
			if !ok {
				slog.Warn("unparseable delivery timestamp",
					"parcelID", view.ID, "deliveredAt", *deliveredAt)
			}
			view.DeliveredAt = &instant
		}

		parcels = append(parcels, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Most-recent-first ordering is applied after normalization: legacy
	// timestamps do not sort lexicographically, so the column order is
	// unreliable.
	sort.SliceStable(parcels, func(i, j int) bool {
		return parcels[i].RegisteredAt.After(parcels[j].RegisteredAt)
	})

	return FilterParcels(parcels, query.Text()), nil
}
