package queries

import (
	"math"
	"time"
)

// rangeCutoff returns the earliest registration instant included in the
// range, or the zero time when the range spans everything.
func rangeCutoff(rangeName string, now time.Time) time.Time {
	switch rangeName {
	case RangeLastWeek:
		return now.AddDate(0, 0, -7)
	case RangeLastMonth:
		return now.AddDate(0, 0, -30)
	case RangeLastYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}

// ScopeParcels narrows views to the statistics scope: registrations at or
// after the range cutoff, for the given carrier ("" means every carrier).
func ScopeParcels(parcels []ParcelView, rangeName, carrier string, now time.Time) []ParcelView {
	cutoff := rangeCutoff(rangeName, now)

	scoped := make([]ParcelView, 0, len(parcels))
	for _, view := range parcels {
		if carrier != "" && view.Carrier != carrier {
			continue
		}
		if !cutoff.IsZero() && view.RegisteredAt.Before(cutoff) {
			continue
		}
		scoped = append(scoped, view)
	}

	return scoped
}

// ComputeStatistics aggregates the scoped views into the statistics response.
func ComputeStatistics(parcels []ParcelView) ParcelStatisticsQueryResponse {
	response := ParcelStatisticsQueryResponse{
		Total:            len(parcels),
		SizeDistribution: make(map[string]int),
	}

	var weekdayCounts [7]int
	var hourCounts [24]int
	var pickupMinutes float64
	var pickupCount int

	for _, view := range parcels {
		switch view.Status {
		case "Pending":
			response.ActiveCount++
		case "Delivered":
			response.DeliveredCount++
		case "Archived":
			response.ArchivedCount++
		}

		weekdayCounts[view.RegisteredAt.Weekday()]++
		hourCounts[view.RegisteredAt.Hour()]++
		response.SizeDistribution[view.Size]++

		if view.Status == "Delivered" && view.DeliveredAt != nil {
			diff := view.DeliveredAt.Sub(view.RegisteredAt)
			if diff > 0 {
				pickupMinutes += diff.Minutes()
				pickupCount++
			}
		}
	}

	if len(parcels) > 0 {
		busiest := 0
		for weekday, count := range weekdayCounts {
			if count > weekdayCounts[busiest] {
				busiest = weekday
			}
		}
		response.BusiestWeekday = time.Weekday(busiest).String()
	}

	if pickupCount > 0 {
		response.AvgPickupMinutes = int(math.Round(pickupMinutes / float64(pickupCount)))
	}

	for hour, count := range hourCounts {
		if count > 0 {
			response.RegistrationsByHour = append(response.RegistrationsByHour,
				HourCount{Hour: hour, Count: count})
		}
	}

	return response
}
