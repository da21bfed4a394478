package http

import (
	"time"

	"mailroom/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterParcelRequest is the intake form payload.
type RegisterParcelRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	Carrier        string `json:"carrier"`
	Recipient      string `json:"recipient"`
	Category       string `json:"category"`
	Size           string `json:"size"`
	Slot           string `json:"slot"`
	RackNumber     string `json:"rackNumber"`
	ColorLabel     string `json:"colorLabel,omitempty"`
	RegisteredBy   string `json:"registeredBy"`
}

// RegisterParcelResponse returns the identifier of the new record.
type RegisterParcelResponse struct {
	ID string `json:"id"`
}

// DeliverParcelRequest carries the signature captured at handover,
// typically a data URL produced by the signature pad.
type DeliverParcelRequest struct {
	Signature string `json:"signature"`
}

// ParcelResponse is the JSON shape of one parcel record.
type ParcelResponse struct {
	ID             string     `json:"id"`
	TrackingNumber string     `json:"trackingNumber"`
	Carrier        string     `json:"carrier"`
	Recipient      string     `json:"recipient"`
	Category       string     `json:"category"`
	Size           string     `json:"size"`
	Slot           string     `json:"slot"`
	RackNumber     string     `json:"rackNumber"`
	ColorLabel     string     `json:"colorLabel,omitempty"`
	RegisteredBy   string     `json:"registeredBy"`
	RegisteredAt   time.Time  `json:"registeredAt"`
	DeliveredAt    *time.Time `json:"deliveredAt,omitempty"`
	Status         string     `json:"status"`
}

func parcelResponse(view queries.ParcelView) ParcelResponse {
	return ParcelResponse{
		ID:             view.ID,
		TrackingNumber: view.TrackingNumber,
		Carrier:        view.Carrier,
		Recipient:      view.Recipient,
		Category:       view.Category,
		Size:           view.Size,
		Slot:           view.Slot,
		RackNumber:     view.RackNumber,
		ColorLabel:     view.ColorLabel,
		RegisteredBy:   view.RegisteredBy,
		RegisteredAt:   view.RegisteredAt,
		DeliveredAt:    view.DeliveredAt,
		Status:         view.Status,
	}
}

// RecipientResponse is the JSON shape of one directory entry.
type RecipientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// MatchRecipientsResponse is the outcome of a directory match.
type MatchRecipientsResponse struct {
	Candidates    []RecipientResponse `json:"candidates"`
	Exact         *RecipientResponse  `json:"exact,omitempty"`
	Quarantined   bool                `json:"quarantined"`
	ClearRedLabel bool                `json:"clearRedLabel"`
}

// CatalogsResponse lists the fixed value sets used by the intake form.
type CatalogsResponse struct {
	Carriers    []string `json:"carriers"`
	Categories  []string `json:"categories"`
	Sizes       []string `json:"sizes"`
	ColorLabels []string `json:"colorLabels"`
	Slots       []string `json:"slots"`
}

// AvailableSlotsResponse lists the slot codes eligible for a placement.
type AvailableSlotsResponse struct {
	Slots []string `json:"slots"`
}

// HourCountResponse is one bar of the registrations-per-hour histogram.
type HourCountResponse struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// StatisticsResponse carries the computed statistics.
type StatisticsResponse struct {
	Total               int                 `json:"total"`
	ActiveCount         int                 `json:"activeCount"`
	DeliveredCount      int                 `json:"deliveredCount"`
	ArchivedCount       int                 `json:"archivedCount"`
	BusiestWeekday      string              `json:"busiestWeekday,omitempty"`
	AvgPickupMinutes    int                 `json:"avgPickupMinutes"`
	RegistrationsByHour []HourCountResponse `json:"registrationsByHour"`
	SizeDistribution    map[string]int      `json:"sizeDistribution"`
}

func statisticsResponse(stats queries.ParcelStatisticsQueryResponse) StatisticsResponse {
	hours := make([]HourCountResponse, 0, len(stats.RegistrationsByHour))
	for _, hc := range stats.RegistrationsByHour {
		hours = append(hours, HourCountResponse{Hour: hc.Hour, Count: hc.Count})
	}

	return StatisticsResponse{
		Total:               stats.Total,
		ActiveCount:         stats.ActiveCount,
		DeliveredCount:      stats.DeliveredCount,
		ArchivedCount:       stats.ArchivedCount,
		BusiestWeekday:      stats.BusiestWeekday,
		AvgPickupMinutes:    stats.AvgPickupMinutes,
		RegistrationsByHour: hours,
		SizeDistribution:    stats.SizeDistribution,
	}
}
