package subnet

import (
	"fmt"
	"strings"
)

// Contains reports whether the address in candidate lies inside the
// network. A trailing /prefix on the candidate is ignored; only the
// address part matters. The candidate must be the same IP family as the
// network. This is exact subnet membership, not a longest-prefix lookup.
func Contains(candidate string, network Prefix) (bool, error) {
	text := strings.TrimSpace(candidate)
	if i := strings.Index(text, "/"); i >= 0 {
		text = text[:i]
	}

	version := V4
	if strings.Contains(text, ":") {
		version = V6
	}
	if version != network.addr.version {
		return false, fmt.Errorf("%w: %s candidate against %s network",
			ErrVersionMismatch, version, network.addr.version)
	}

	addr, err := ParseAddress(text)
	if err != nil {
		return false, err
	}
	return addr.mask(network.cidr) == network.addr, nil
}
