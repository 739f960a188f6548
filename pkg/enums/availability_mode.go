package enums

import "fmt"

// AvailabilityMode names a fulfilment option a product can be filtered by.
type AvailabilityMode string

const (
	AvailabilityShip        AvailabilityMode = "ship"
	AvailabilityStorePickup AvailabilityMode = "storePickup"
)

var validAvailabilityModes = []AvailabilityMode{
	AvailabilityShip,
	AvailabilityStorePickup,
}

// String implements fmt.Stringer.
func (m AvailabilityMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known AvailabilityMode.
func (m AvailabilityMode) IsValid() bool {
	for _, candidate := range validAvailabilityModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseAvailabilityMode converts raw input into an AvailabilityMode. Matching
// is exact, so "Ship" is not a valid mode.
func ParseAvailabilityMode(value string) (AvailabilityMode, error) {
	for _, candidate := range validAvailabilityModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid availability mode %q", value)
}
