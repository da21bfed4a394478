package parcel_test

import (
	"testing"
	"time"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/core/domain/model/parcel"
	"mailroom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, code string) kernel.Slot {
	t.Helper()

	slot, err := kernel.ParseSlot(code)
	require.NoError(t, err)
	return slot
}

func newTestParcel(t *testing.T, registeredAt time.Time) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"TRK-1001",
		"Amazon",
		"Maria Rodriguez",
		"Caja",
		parcel.SizeSmall,
		mustSlot(t, "A1"),
		"R1",
		"",
		"Carlos Lopez",
		registeredAt,
	)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	registeredAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("should create pending parcel with intake data", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)

		assert.Equal(t, parcel.Pending, p.Status())
		assert.Equal(t, "TRK-1001", p.TrackingNumber())
		assert.Equal(t, "Amazon", p.Carrier())
		assert.Equal(t, "Maria Rodriguez", p.Recipient())
		assert.Equal(t, "Caja", p.Category())
		assert.Equal(t, parcel.SizeSmall, p.Size())
		assert.Equal(t, "A1", p.Slot().String())
		assert.Equal(t, "R1", p.RackNumber())
		assert.Equal(t, "Carlos Lopez", p.RegisteredBy())
		assert.Equal(t, registeredAt, p.RegisteredAt())
		assert.Nil(t, p.DeliveredAt())
		assert.Nil(t, p.Signature())
		assert.NoError(t, p.Validate())
	})

	t.Run("should reject blank required fields", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(),
			"   ",
			"",
			"Maria Rodriguez",
			"Caja",
			parcel.SizeSmall,
			mustSlot(t, "A1"),
			"R1",
			"",
			"Carlos Lopez",
			registeredAt,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "trackingNumber")
		assert.Contains(t, err.Error(), "carrier")
	})

	t.Run("should reject unknown size", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(),
			"TRK-1001",
			"Amazon",
			"Maria Rodriguez",
			"Caja",
			parcel.SizeUnknown,
			mustSlot(t, "A1"),
			"R1",
			"",
			"Carlos Lopez",
			registeredAt,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject color label outside the palette", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(),
			"TRK-1001",
			"Amazon",
			"Maria Rodriguez",
			"Caja",
			parcel.SizeSmall,
			mustSlot(t, "A1"),
			"R1",
			"chartreuse",
			"Carlos Lopez",
			registeredAt,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept color label from the palette", func(t *testing.T) {
		p, err := parcel.NewParcel(
			kernel.NewUUID(),
			"TRK-1001",
			"Amazon",
			"Maria Rodriguez",
			"Caja",
			parcel.SizeSmall,
			mustSlot(t, "A1"),
			"R1",
			parcel.ColorLabelRed,
			"Carlos Lopez",
			registeredAt,
		)

		require.NoError(t, err)
		assert.Equal(t, parcel.ColorLabelRed, p.ColorLabel())
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("should reject zero-value parcel", func(t *testing.T) {
		var p parcel.Parcel

		err := p.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, parcel.ErrParcelIsNotConstructed)
	})

	t.Run("should reject nil parcel", func(t *testing.T) {
		var p *parcel.Parcel

		err := p.Validate()

		require.Error(t, err)
	})
}

func TestParcel_Deliver(t *testing.T) {
	registeredAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	deliveredAt := registeredAt.Add(48 * time.Hour)
	signature := []byte("data:image/png;base64,iVBORw0KGgo=")

	t.Run("should deliver pending parcel", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)

		err := p.Deliver(signature, deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, p.Status())
		require.NotNil(t, p.DeliveredAt())
		assert.Equal(t, deliveredAt, *p.DeliveredAt())
		assert.Equal(t, signature, p.Signature())
	})

	t.Run("should deliver archived parcel", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)
		require.NoError(t, p.Archive())

		err := p.Deliver(signature, deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, p.Status())
	})

	t.Run("should reject empty signature", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)

		err := p.Deliver(nil, deliveredAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, parcel.ErrSignatureIsRequired)
		assert.Equal(t, parcel.Pending, p.Status())
		assert.Nil(t, p.DeliveredAt())
	})

	t.Run("should reject blank signature", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)

		err := p.Deliver([]byte("   "), deliveredAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, parcel.ErrSignatureIsRequired)
	})

	t.Run("should reject delivering an already delivered parcel without mutation", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)
		require.NoError(t, p.Deliver(signature, deliveredAt))

		later := deliveredAt.Add(time.Hour)
		err := p.Deliver([]byte("other"), later)

		require.Error(t, err)
		assert.ErrorIs(t, err, parcel.ErrInvalidStatusTransition)
		assert.Equal(t, deliveredAt, *p.DeliveredAt())
		assert.Equal(t, signature, p.Signature())
	})
}

func TestParcel_Archive(t *testing.T) {
	registeredAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("should archive pending parcel", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)

		err := p.Archive()

		require.NoError(t, err)
		assert.Equal(t, parcel.Archived, p.Status())
	})

	t.Run("should reject archiving delivered parcel", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)
		require.NoError(t, p.Deliver([]byte("sig"), registeredAt.Add(time.Hour)))

		err := p.Archive()

		require.Error(t, err)
		assert.ErrorIs(t, err, parcel.ErrInvalidStatusTransition)
	})
}

func TestParcel_AgeDays(t *testing.T) {
	registeredAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("should floor partial days", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)

		assert.Equal(t, 0, p.AgeDays(registeredAt.Add(23*time.Hour)))
		assert.Equal(t, 1, p.AgeDays(registeredAt.Add(24*time.Hour)))
		assert.Equal(t, 29, p.AgeDays(registeredAt.Add(29*24*time.Hour+23*time.Hour)))
		assert.Equal(t, 30, p.AgeDays(registeredAt.Add(30*24*time.Hour)))
	})
}

func TestParcel_ApplyColorLabel(t *testing.T) {
	registeredAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("should set and clear label", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)

		require.NoError(t, p.ApplyColorLabel("blue"))
		assert.Equal(t, "blue", p.ColorLabel())

		require.NoError(t, p.ApplyColorLabel(""))
		assert.Empty(t, p.ColorLabel())
	})

	t.Run("should reject label outside the palette", func(t *testing.T) {
		p := newTestParcel(t, registeredAt)

		err := p.ApplyColorLabel("mauve")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreParcel(t *testing.T) {
	registeredAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	deliveredAt := registeredAt.Add(72 * time.Hour)
	signature := []byte("sig")

	restore := func(status parcel.Status, deliveredAt *time.Time, signature []byte) (*parcel.Parcel, error) {
		slot, err := kernel.ParseSlot("B2")
		require.NoError(t, err)

		return parcel.RestoreParcel(
			kernel.NewUUID(),
			"TRK-2002",
			"DHL",
			"Juan Perez",
			"Sobre",
			parcel.SizeMedium,
			slot,
			"R2",
			"",
			"Laura Torres",
			registeredAt,
			status,
			deliveredAt,
			signature,
		)
	}

	t.Run("should restore pending parcel", func(t *testing.T) {
		p, err := restore(parcel.Pending, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, parcel.Pending, p.Status())
		assert.NoError(t, p.Validate())
	})

	t.Run("should restore delivered parcel with evidence", func(t *testing.T) {
		p, err := restore(parcel.Delivered, &deliveredAt, signature)

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, p.Status())
		assert.Equal(t, signature, p.Signature())
	})

	t.Run("should reject delivered parcel without evidence", func(t *testing.T) {
		_, err := restore(parcel.Delivered, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject pending parcel carrying delivery evidence", func(t *testing.T) {
		_, err := restore(parcel.Pending, &deliveredAt, signature)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := restore(parcel.Unknown, nil, nil)

		require.Error(t, err)
	})
}
