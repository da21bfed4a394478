package guard_test

import (
	"errors"
	"testing"

	"mailroom/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage in a domain object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type RackAssignment struct {
		rack  string
		shelf int
		guard guard.ConstructorGuard
	}

	var errRackAssignmentNotConstructed = errors.New("RackAssignment must be created via newRackAssignment")

	newRackAssignment := func(rack string, shelf int) (RackAssignment, error) {
		if rack == "" {
			return RackAssignment{}, errors.New("rack is required")
		}
		if shelf < 1 {
			return RackAssignment{}, errors.New("shelf must be positive")
		}
		return RackAssignment{
			rack:  rack,
			shelf: shelf,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validate := func(a RackAssignment) error {
		return a.guard.Validate(errRackAssignmentNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		assignment, err := newRackAssignment("R1", 3)

		require.NoError(t, err)
		require.NoError(t, validate(assignment))
		assert.Equal(t, "R1", assignment.rack)
		assert.Equal(t, 3, assignment.shelf)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var assignment RackAssignment // zero value

		err := validate(assignment)

		require.Error(t, err)
		assert.Equal(t, errRackAssignmentNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newRackAssignment("", 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rack is required")

		_, err = newRackAssignment("R1", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shelf must be positive")
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

// BenchmarkConstructorGuard measures the overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
