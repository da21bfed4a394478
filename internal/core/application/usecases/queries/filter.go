package queries

import "strings"

// FilterParcels applies the free-text search to a list of views, preserving
// their order. The text is trimmed and compared case-insensitively against
// recipient, tracking number, carrier and slot; a record matches when any of
// the four fields contains it. Blank text matches everything.
func FilterParcels(parcels []ParcelView, text string) []ParcelView {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return parcels
	}

	lowered := strings.ToLower(trimmed)

	filtered := make([]ParcelView, 0, len(parcels))
	for _, view := range parcels {
		if parcelMatches(view, lowered) {
			filtered = append(filtered, view)
		}
	}

	return filtered
}

func parcelMatches(view ParcelView, lowered string) bool {
	for _, field := range []string{view.Recipient, view.TrackingNumber, view.Carrier, view.Slot} {
		if strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}

	return false
}
