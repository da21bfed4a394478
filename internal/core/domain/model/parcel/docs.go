// Package parcel contains the Parcel aggregate and its lifecycle rules.
//
// A parcel is registered at mailroom intake with carrier, recipient,
// category, size and a storage slot, and then either delivered (with a
// captured signature) or archived once it has sat unclaimed for too long.
//
// Key components:
//   - Parcel: aggregate root owning intake data and the lifecycle state
//   - Status: lifecycle state machine (Pending, Delivered, Archived)
//   - Size: size class of the package (Chico, Mediano, Grande)
//   - Carrier, category and color-label catalogs shared by intake and search
//
// The aggregate enforces its invariants inside constructors and behavior
// methods; callers never mutate fields directly.
package parcel
