// Package kernel holds the primitives shared by every aggregate in the
// mailroom domain model:
//
//   - UUID: immutable identifier value object with validation and comparison
//   - Slot: a coordinate on the physical storage grid (rows A-E, columns 1-4)
//   - NormalizeInstant: the total timestamp normalizer used by every
//     time-based rule
//
// All types here are immutable value objects, safe for concurrent use, and
// enforce their invariants at construction.
package kernel
