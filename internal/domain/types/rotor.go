package types

import (
	"fmt"
	"strings"
)

// RotorCount is the number of rotor slots in the machine (left, middle, right).
const RotorCount = 3

// RotorType names one of the fixed rotor wirings.
type RotorType uint8

const (
	RotorI RotorType = iota + 1
	RotorII
	RotorIII
)

// RotorTypes returns every known rotor type in catalogue order.
func RotorTypes() []RotorType { return []RotorType{RotorI, RotorII, RotorIII} }

// String returns the roman-numeral name of the rotor.
func (r RotorType) String() string {
	switch r {
	case RotorI:
		return "I"
	case RotorII:
		return "II"
	case RotorIII:
		return "III"
	default:
		return fmt.Sprintf("RotorType(%d)", uint8(r))
	}
}

// ParseRotorType resolves a rotor name such as "II". Matching is exact; callers
// that accept user input should uppercase it first.
func ParseRotorType(name string) (RotorType, error) {
	for _, r := range RotorTypes() {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRotorType, name)
}

// ParseRotorOrder resolves exactly three rotor names, left to right.
func ParseRotorOrder(names []string) ([RotorCount]RotorType, error) {
	var order [RotorCount]RotorType
	if len(names) != RotorCount {
		return order, fmt.Errorf("%w: got %d rotor names", ErrRotorCount, len(names))
	}
	for i, name := range names {
		r, err := ParseRotorType(strings.TrimSpace(name))
		if err != nil {
			return order, err
		}
		order[i] = r
	}
	return order, nil
}
