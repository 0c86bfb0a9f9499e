package subnet

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Count is a number of addresses. An IPv6 prefix can span up to 2^128
// addresses, far past uint64 range, so a Count is either an exact value or
// an exponent-only "2^bits" form. Consumers must branch on IsExact rather
// than assume a usable integer.
type Count struct {
	value uint64
	bits  int
	huge  bool
}

func exactCount(v uint64) Count { return Count{value: v} }

// countForBits returns 2^hostBits, exact while it fits in a uint64.
func countForBits(hostBits int) Count {
	if hostBits >= 64 {
		return Count{bits: hostBits, huge: true}
	}
	return exactCount(1 << uint(hostBits))
}

// Exact returns the value and true, or 0 and false for the 2^n form.
func (c Count) Exact() (uint64, bool) {
	if c.huge {
		return 0, false
	}
	return c.value, true
}

// IsExact reports whether the count fits a native integer.
func (c Count) IsExact() bool { return !c.huge }

// Bits returns n for a 2^n count, or -1 when the count is exact.
func (c Count) Bits() int {
	if c.huge {
		return c.bits
	}
	return -1
}

// usable is the host count after excluding network and broadcast,
// floored at zero. The 2^n form is kept as-is: subtracting 2 from it is
// not representable and the display form stays exponent-only.
func (c Count) usable() Count {
	if c.huge {
		return c
	}
	if c.value <= 2 {
		return exactCount(0)
	}
	return exactCount(c.value - 2)
}

// String renders the exact decimal value, or "2^n" when too large.
func (c Count) String() string {
	if c.huge {
		return fmt.Sprintf("2^%d", c.bits)
	}
	return strconv.FormatUint(c.value, 10)
}

// MarshalJSON renders counts as their display string so the two variants
// serialize uniformly.
func (c Count) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// MarshalYAML mirrors MarshalJSON for the YAML encoder.
func (c Count) MarshalYAML() (any, error) { return c.String(), nil }
