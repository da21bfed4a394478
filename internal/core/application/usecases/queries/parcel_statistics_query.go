package queries

import (
	"errors"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

var ErrParcelStatisticsQueryIsNotConstructed = errors.New(
	"ParcelStatisticsQuery must be created via NewParcelStatisticsQuery constructor",
)

// Statistics range names accepted by ParcelStatisticsQuery.
const (
	RangeLastWeek  = "7days"
	RangeLastMonth = "30days"
	RangeLastYear  = "year"
	RangeAll       = "all"
)

// ParcelStatisticsQuery computes operational statistics over the parcel
// records, optionally narrowed to a registration date range and a carrier.
//
// Example:
//
//	query, err := NewParcelStatisticsQuery("30days", "Amazon")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewParcelStatisticsQueryHandler(db)
//	stats, err := handler.Handle(ctx, query)
type ParcelStatisticsQuery struct {
	rangeName string
	carrier   string

	guard guard.ConstructorGuard
}

// NewParcelStatisticsQuery creates a statistics query. rangeName must be one
// of "7days", "30days", "year" or "all"; empty defaults to "all". carrier
// narrows to one carrier, with "" or "all" meaning every carrier.
func NewParcelStatisticsQuery(rangeName string, carrier string) (ParcelStatisticsQuery, error) {
	if rangeName == "" {
		rangeName = RangeAll
	}

	switch rangeName {
	case RangeLastWeek, RangeLastMonth, RangeLastYear, RangeAll:
	default:
		return ParcelStatisticsQuery{}, errs.NewValueIsInvalidError("range")
	}

	if carrier == "all" {
		carrier = ""
	}

	return ParcelStatisticsQuery{
		rangeName: rangeName,
		carrier:   carrier,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrParcelStatisticsQueryIsNotConstructed if validation fails.
func (q ParcelStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrParcelStatisticsQueryIsNotConstructed)
}

// RangeName returns the registration date range.
func (q ParcelStatisticsQuery) RangeName() string {
	return q.rangeName
}

// Carrier returns the carrier filter, "" for every carrier.
func (q ParcelStatisticsQuery) Carrier() string {
	return q.carrier
}

// HourCount is one bar of the registrations-per-hour histogram.
type HourCount struct {
	Hour  int
	Count int
}

// ParcelStatisticsQueryResponse carries the computed statistics.
type ParcelStatisticsQueryResponse struct {
	// Total is the number of records in scope.
	Total int

	// ActiveCount is the number of Pending records in scope.
	ActiveCount int

	// DeliveredCount is the number of Delivered records in scope.
	DeliveredCount int

	// ArchivedCount is the number of Archived records in scope.
	ArchivedCount int

	// BusiestWeekday is the weekday with the most registrations,
	// e.g. "Monday". Empty when there are no records.
	BusiestWeekday string

	// AvgPickupMinutes is the mean time from registration to delivery in
	// whole minutes, over delivered records with a positive duration.
	AvgPickupMinutes int

	// RegistrationsByHour lists hours of the day with at least one
	// registration, in hour order.
	RegistrationsByHour []HourCount

	// SizeDistribution counts records per size class name.
	SizeDistribution map[string]int
}
