package services

import (
	"time"

	"mailroom/internal/core/domain/model/parcel"
)

// StaleAfterDays is the dwell time after which an unclaimed parcel is
// considered stale and moves to the archive.
const StaleAfterDays = 30

// StaleArchiver is a domain service that reclassifies parcels that have sat
// unclaimed for too long. There is no background job: callers invoke it on
// read paths, so classifications are always derived from the current clock.
//
// Business rules:
//   - Only Pending parcels are examined; Delivered and Archived are untouched
//   - A parcel is stale once 30 whole days have elapsed since registration
//     (29 days and 23 hours is not stale)
//   - Reclassification is idempotent: a second run over the same records
//     changes nothing
type StaleArchiver struct{}

// NewStaleArchiver creates a new StaleArchiver instance.
func NewStaleArchiver() StaleArchiver {
	return StaleArchiver{}
}

// IsStale reports whether the parcel has been pending for the full dwell time.
func (StaleArchiver) IsStale(p *parcel.Parcel, now time.Time) bool {
	return p.Status() == parcel.Pending && p.AgeDays(now) >= StaleAfterDays
}

// Reclassify archives every stale pending parcel in place and returns the
// parcels that changed, so callers persist only those.
func (a StaleArchiver) Reclassify(parcels []*parcel.Parcel, now time.Time) ([]*parcel.Parcel, error) {
	var changed []*parcel.Parcel
	for _, p := range parcels {
		if !a.IsStale(p, now) {
			continue
		}

		if err := p.Archive(); err != nil {
			return nil, err
		}
		changed = append(changed, p)
	}

	return changed, nil
}
