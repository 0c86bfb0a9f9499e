package subnet

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluate is the engine's primary entry point. It parses input, an
// address with an optional /prefix suffix, and returns the derived subnet
// view. The family is chosen by the presence of a colon; a bare address
// gets the version-appropriate host length (/32 or /128). Parse and
// derivation failures surface unchanged.
func Evaluate(input string) (SubnetInfo, error) {
	text := strings.TrimSpace(input)
	addrText, cidrText, hasCidr := strings.Cut(text, "/")

	v6 := strings.Contains(addrText, ":")
	cidr := 32
	if v6 {
		cidr = 128
	}
	if hasCidr {
		n, err := strconv.Atoi(strings.TrimSpace(cidrText))
		if err != nil {
			return SubnetInfo{}, fmt.Errorf("%w: %q", ErrInvalidCidr, cidrText)
		}
		cidr = n
	}

	if v6 {
		addr, err := ParseIPv6(addrText)
		if err != nil {
			return SubnetInfo{}, err
		}
		return DeriveIPv6(addr, cidr)
	}
	addr, err := ParseIPv4(addrText)
	if err != nil {
		return SubnetInfo{}, err
	}
	return DeriveIPv4(addr, cidr)
}
