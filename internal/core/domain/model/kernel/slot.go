package kernel

import (
	"errors"
	"fmt"

	"mailroom/internal/pkg/errs"
	"mailroom/internal/pkg/guard"
)

// Row identifies a horizontal shelf row on the storage grid, 'A' through 'E'.
type Row byte

// Column identifies a vertical position within a row, 1 through 4.
type Column int8

const (
	// SlotMinRow is the first valid row letter on the storage grid.
	SlotMinRow Row = 'A'
	// SlotMaxRow is the last valid row letter on the storage grid.
	SlotMaxRow Row = 'E'
	// SlotMinColumn is the first valid column number on the storage grid.
	SlotMinColumn Column = 1
	// SlotMaxColumn is the last valid column number on the storage grid.
	SlotMaxColumn Column = 4
)

// ErrSlotIsNotConstructed is returned when attempting to use an improperly initialized Slot.
// Slots must be created using the NewSlot or ParseSlot constructors to ensure validity.
var ErrSlotIsNotConstructed = errs.NewValueIsRequiredError(
	"slot must be created via NewSlot or ParseSlot constructors")

// Slot represents a single physical storage position on the mailroom grid,
// identified by a row letter and a column number (for example "B3").
// Slot is an immutable value object; the zero value is invalid and will fail
// validation - use the constructors to create instances.
//
// Example:
//
//	slot, err := kernel.NewSlot('B', 3)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(slot) // Output: B3
type Slot struct { //nolint:recvcheck //using for validation
	row    Row
	column Column
	guard  guard.ConstructorGuard
}

// NewSlot creates a new Slot at the given row and column.
// The row must be within [SlotMinRow..SlotMaxRow] and the column within
// [SlotMinColumn..SlotMaxColumn]; otherwise a validation error is returned.
func NewSlot(row Row, column Column) (Slot, error) {
	slot := Slot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(slot.setRow(row), slot.setColumn(column)); err != nil {
		return Slot{}, err
	}

	return slot, nil
}

// ParseSlot creates a Slot from its two-character code, e.g. "A1" or "E4".
// Returns a validation error for codes of the wrong length or with
// coordinates outside the grid.
func ParseSlot(code string) (Slot, error) {
	if len(code) != 2 {
		return Slot{}, errs.NewValueIsInvalidErrorWithCause(
			"slot code",
			fmt.Errorf("%q is not a row letter followed by a column digit", code),
		)
	}

	return NewSlot(Row(code[0]), Column(code[1]-'0'))
}

// GridSlots returns every slot of the storage grid in fixed grid order:
// row-major, A1..A4 through E1..E4. The order is deterministic and is the
// canonical presentation order for slot listings.
func GridSlots() []Slot {
	slots := make([]Slot, 0, int(SlotMaxRow-SlotMinRow+1)*int(SlotMaxColumn-SlotMinColumn+1))
	for row := SlotMinRow; row <= SlotMaxRow; row++ {
		for column := SlotMinColumn; column <= SlotMaxColumn; column++ {
			slot, err := NewSlot(row, column)
			if err != nil {
				// Unreachable: the loop only produces in-range coordinates.
				continue
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// Validate checks if the Slot was properly constructed using a constructor.
// The zero value of Slot is invalid and will fail this validation.
func (s Slot) Validate() error {
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

// Row returns the row letter of the slot.
func (s Slot) Row() Row {
	return s.row
}

// Column returns the column number of the slot.
func (s Slot) Column() Column {
	return s.column
}

// String returns the canonical slot code, e.g. "C2".
// This method implements the fmt.Stringer interface.
func (s Slot) String() string {
	return fmt.Sprintf("%c%d", s.row, s.column)
}

// IsEqual compares two slots for equality.
// Two slots are equal if they occupy the same row and column. Both slots
// must be properly constructed for the comparison to succeed.
func (s Slot) IsEqual(other Slot) (bool, error) {
	if err := errors.Join(s.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return s == other, nil
}

// setRow sets the row with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (s *Slot) setRow(row Row) error {
	if row < SlotMinRow || row > SlotMaxRow {
		return errs.NewValueIsOutOfRangeError("row", string(row), string(SlotMinRow), string(SlotMaxRow))
	}

	s.row = row
	return nil
}

// setColumn sets the column with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (s *Slot) setColumn(column Column) error {
	if column < SlotMinColumn || column > SlotMaxColumn {
		return errs.NewValueIsOutOfRangeError("column", column, SlotMinColumn, SlotMaxColumn)
	}

	s.column = column
	return nil
}
