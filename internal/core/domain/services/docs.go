// Package services contains domain services that implement business logic
// spanning more than one aggregate or requiring knowledge a single aggregate
// should not own.
//
// Services:
//   - RecipientMatcher: the linear-scan Matcher; validates free-text
//     recipient names against the directory and drives the
//     unknown-recipient quarantine rule
//   - SlotAllocator: computes eligible storage slots from carrier and size
//     constraints and reconciles in-flight selections
//   - StaleArchiver: reclassifies parcels left unclaimed past the dwell time
//
// All services are stateless and operate on aggregates passed in by the
// application layer.
package services
