package services

import (
	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
)

// SlotAllocator is a domain service that determines which storage slots a
// parcel may be placed in, based on carrier and size constraints, and keeps a
// tentative slot selection consistent while intake data changes.
//
// Key responsibilities:
//   - Computing the eligible slot set for a carrier/size combination
//   - Reconciling an in-flight selection against the recomputed set
//
// Business rules:
//   - The full grid spans rows A-E and columns 1-4
//   - Amazon parcels are restricted to the A1-C2 block
//   - Small ("Chico") parcels are restricted to the high-density slots A1, A2
//   - Constraints intersect; the result preserves grid order
//
// Example usage:
//
//	allocator := NewSlotAllocator()
//	slots := allocator.AvailableSlots("Amazon", parcel.SizeSmall)
//	// slots is [A1 A2]
type SlotAllocator struct{}

// NewSlotAllocator creates a new SlotAllocator instance.
func NewSlotAllocator() SlotAllocator {
	return SlotAllocator{}
}

// AvailableSlots returns the slots eligible for the given carrier and size,
// in grid order (row-major, A1 first). An unrecognized carrier or an unset
// size imposes no constraint.
func (SlotAllocator) AvailableSlots(carrier string, size parcel.Size) []kernel.Slot {
	slots := kernel.GridSlots()

	if carrier == parcel.CarrierAmazon {
		slots = intersectSlots(slots, amazonSlotCodes())
	}

	if size == parcel.SizeSmall {
		slots = intersectSlots(slots, smallSlotCodes())
	}

	return slots
}

// Reconcile adjusts a tentative slot selection after the eligible set was
// recomputed. When exactly one slot is eligible it is selected automatically;
// a selection that is no longer eligible is cleared; anything else is kept.
//
// The selection is a slot code such as "B2", or "" for no selection.
func (SlotAllocator) Reconcile(selected string, available []kernel.Slot) string {
	if len(available) == 1 {
		return available[0].String()
	}

	for _, slot := range available {
		if slot.String() == selected {
			return selected
		}
	}

	return ""
}

// amazonSlotCodes is the A1-C2 block reserved for Amazon parcels.
func amazonSlotCodes() map[string]bool {
	return map[string]bool{
		"A1": true, "A2": true,
		"B1": true, "B2": true,
		"C1": true, "C2": true,
	}
}

// smallSlotCodes is the high-density area for small parcels.
func smallSlotCodes() map[string]bool {
	return map[string]bool{
		"A1": true, "A2": true,
	}
}

func intersectSlots(slots []kernel.Slot, allowed map[string]bool) []kernel.Slot {
	result := make([]kernel.Slot, 0, len(allowed))
	for _, slot := range slots {
		if allowed[slot.String()] {
			result = append(result, slot)
		}
	}

	return result
}
