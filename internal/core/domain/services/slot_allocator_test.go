package services_test

import (
	"testing"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func slotCodes(slots []kernel.Slot) []string {
	codes := make([]string, 0, len(slots))
	for _, slot := range slots {
		codes = append(codes, slot.String())
	}
	return codes
}

func TestSlotAllocator_AvailableSlots(t *testing.T) {
	allocator := services.NewSlotAllocator()

	t.Run("should return full grid without constraints", func(t *testing.T) {
		slots := allocator.AvailableSlots("DHL", parcel.SizeLarge)

		assert.Len(t, slots, 20)
		codes := slotCodes(slots)
		assert.Equal(t, "A1", codes[0])
		assert.Equal(t, "A4", codes[3])
		assert.Equal(t, "B1", codes[4])
		assert.Equal(t, "E4", codes[19])
	})

	t.Run("should restrict Amazon to the A1-C2 block", func(t *testing.T) {
		slots := allocator.AvailableSlots("Amazon", parcel.SizeLarge)

		assert.Equal(t, []string{"A1", "A2", "B1", "B2", "C1", "C2"}, slotCodes(slots))
	})

	t.Run("should restrict small parcels to the high-density slots", func(t *testing.T) {
		slots := allocator.AvailableSlots("UPS", parcel.SizeSmall)

		assert.Equal(t, []string{"A1", "A2"}, slotCodes(slots))
	})

	t.Run("should intersect carrier and size constraints", func(t *testing.T) {
		slots := allocator.AvailableSlots("Amazon", parcel.SizeSmall)

		assert.Equal(t, []string{"A1", "A2"}, slotCodes(slots))
	})

	t.Run("should not constrain on unset size", func(t *testing.T) {
		slots := allocator.AvailableSlots("Estafeta", parcel.SizeUnknown)

		assert.Len(t, slots, 20)
	})
}

func TestSlotAllocator_Reconcile(t *testing.T) {
	allocator := services.NewSlotAllocator()

	t.Run("should auto-select a lone eligible slot", func(t *testing.T) {
		available := allocator.AvailableSlots("Amazon", parcel.SizeSmall)[:1]

		assert.Equal(t, "A1", allocator.Reconcile("", available))
	})

	t.Run("should clear a selection that became ineligible", func(t *testing.T) {
		available := allocator.AvailableSlots("Amazon", parcel.SizeLarge)

		assert.Equal(t, "", allocator.Reconcile("D3", available))
	})

	t.Run("should keep a still-eligible selection", func(t *testing.T) {
		available := allocator.AvailableSlots("Amazon", parcel.SizeLarge)

		assert.Equal(t, "B2", allocator.Reconcile("B2", available))
	})

	t.Run("should leave an empty selection empty", func(t *testing.T) {
		available := allocator.AvailableSlots("DHL", parcel.SizeLarge)

		assert.Equal(t, "", allocator.Reconcile("", available))
	})
}
