package queries

import (
	"context"
	"log/slog"
	"time"

	"mailroom/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ParcelStatisticsQueryHandler computes statistics over the parcel records.
// Loads the rows needed for aggregation and delegates the math to pure
// functions, so the business rules stay testable without a database.
type ParcelStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewParcelStatisticsQueryHandler creates a handler for statistics queries.
// Requires a GORM database connection for query execution.
func NewParcelStatisticsQueryHandler(db *gorm.DB) ParcelStatisticsQueryHandler {
	return ParcelStatisticsQueryHandler{db: db}
}

// Handle executes the statistics query.
func (h ParcelStatisticsQueryHandler) Handle(
	ctx context.Context,
	query ParcelStatisticsQuery,
) (ParcelStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelStatisticsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier,
			size,
			registered_at,
			delivered_at,
			status
		FROM parcels
	`).Rows()
	if err != nil {
		return ParcelStatisticsQueryResponse{}, err
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
			&view.Carrier,
			&view.Size,
			&registeredAt,
			&deliveredAt,
			&view.Status,
		)
		if err != nil {
			return ParcelStatisticsQueryResponse{}, err
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
		return ParcelStatisticsQueryResponse{}, err
	}

	scoped := ScopeParcels(parcels, query.RangeName(), query.Carrier(), now)
	return ComputeStatistics(scoped), nil
}
