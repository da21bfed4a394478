package parcel

import "fmt"

// Size classifies the physical bulk of a parcel. The display names are the
// ones used on intake forms and labels ("Chico", "Mediano", "Grande").
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	// SizeSmall is a small parcel, eligible only for the high-density slots.
	SizeSmall

	// SizeMedium is a regular parcel.
	SizeMedium

	// SizeLarge is a bulky parcel.
	SizeLarge
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeSmall:  "Chico",
		SizeMedium: "Mediano",
		SizeLarge:  "Grande",
	}
}

// ParseSize converts a display name to its Size value.
// Returns an error for names outside the fixed size set.
func ParseSize(name string) (Size, error) {
	for size, str := range getSizeStrings() {
		if str == name {
			return size, nil
		}
	}
	return SizeUnknown, fmt.Errorf("%q is not a valid parcel size", name)
}

// Validate checks if the Size value is one of the fixed size classes.
func (s Size) Validate() error {
	if _, ok := getSizeStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid parcel size", s)
	}
	return nil
}

// String returns the display name of the size, or "Unknown" for invalid
// values. This method implements the fmt.Stringer interface.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
