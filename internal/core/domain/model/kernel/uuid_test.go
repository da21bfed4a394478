package kernel_test

import (
	"testing"

	"mailroom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create valid unique identifiers", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse canonical representation", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}

func TestUUID_RoundTrip(t *testing.T) {
	t.Run("bytes round trip preserves identity", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})
}
