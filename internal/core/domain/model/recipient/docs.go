// Package recipient contains the recipient directory model.
//
// The directory lists every person known to the mailroom. Intake validates
// free-text recipient names against it: an exact match confirms the name,
// a long query with no candidates flags the parcel for review.
package recipient
