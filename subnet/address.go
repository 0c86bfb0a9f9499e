// Package subnet implements dual-stack IP subnet arithmetic: parsing and
// formatting of IPv4/IPv6 addresses, mask and network computation,
// containment tests and bounded enumeration of child networks.
package subnet

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Sentinel errors
var (
	ErrInvalidFormat   = errors.New("subnet: invalid address format")
	ErrOctetOutOfRange = errors.New("subnet: octet out of range")
	ErrGroupOutOfRange = errors.New("subnet: group out of range")
	ErrInvalidCidr     = errors.New("subnet: invalid prefix length")
	ErrVersionMismatch = errors.New("subnet: address family mismatch")
	ErrNotEnumerable   = errors.New("subnet: prefix not enumerable")
)

// Version tags the IP family of an Address. It is decided once, at parse
// time; everything downstream dispatches on the tag instead of re-detecting
// the family from text.
type Version int

const (
	V4 Version = 4
	V6 Version = 6
)

func (v Version) String() string {
	if v == V4 {
		return "IPv4"
	}
	return "IPv6"
}

// Address represents a single IP address as a version tag plus the
// fixed-width unsigned value: 32 bits in v4 for IPv4, 128 bits split
// across hi/lo for IPv6. Addresses are immutable values produced only by
// successful parsing or by arithmetic on already-valid addresses.
type Address struct {
	version Version
	v4      uint32
	hi, lo  uint64
}

// Version returns the address family tag.
func (a Address) Version() Version { return a.version }

// ParseAddress parses either family, chosen by the presence of a colon.
func ParseAddress(s string) (Address, error) {
	if strings.Contains(s, ":") {
		return ParseIPv6(s)
	}
	return ParseIPv4(s)
}

// ParseIPv4 converts dotted-decimal text into an Address. The input must
// be exactly four dot-separated decimal octets, each in [0,255], with no
// surrounding garbage.
func ParseIPv4(s string) (Address, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 4 {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	var v uint32
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || n > 255 {
			return Address{}, fmt.Errorf("%w: %q", ErrOctetOutOfRange, p)
		}
		v = v<<8 | uint32(n)
	}
	return Address{version: V4, v4: v}, nil
}

// ParseIPv6 converts colon-hex text into an Address. At most one "::"
// marker is allowed; it expands to the 8-left-right missing zero groups.
// Without a marker the address must have exactly 8 groups. Each group is
// 1 to 4 hex digits.
func ParseIPv6(s string) (Address, error) {
	text := strings.TrimSpace(s)
	var groups []string
	switch strings.Count(text, "::") {
	case 0:
		groups = strings.Split(text, ":")
		if len(groups) != 8 {
			return Address{}, fmt.Errorf("%w: %q has %d groups", ErrInvalidFormat, s, len(groups))
		}
	case 1:
		halves := strings.SplitN(text, "::", 2)
		left := splitHexGroups(halves[0])
		right := splitHexGroups(halves[1])
		missing := 8 - len(left) - len(right)
		if missing < 1 {
			return Address{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		groups = append(groups, left...)
		for i := 0; i < missing; i++ {
			groups = append(groups, "0")
		}
		groups = append(groups, right...)
	default:
		return Address{}, fmt.Errorf("%w: multiple \"::\" in %q", ErrInvalidFormat, s)
	}

	var hi, lo uint64
	for i, g := range groups {
		n, err := strconv.ParseUint(g, 16, 64)
		if err != nil {
			return Address{}, fmt.Errorf("%w: group %q", ErrInvalidFormat, g)
		}
		if n > 0xffff || len(g) > 4 {
			return Address{}, fmt.Errorf("%w: group %q", ErrGroupOutOfRange, g)
		}
		if i < 4 {
			hi = hi<<16 | n
		} else {
			lo = lo<<16 | n
		}
	}
	return Address{version: V6, hi: hi, lo: lo}, nil
}

func splitHexGroups(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ":")
}

// String returns the canonical textual form: dotted decimal for IPv4,
// compressed colon-hex for IPv6.
func (a Address) String() string {
	if a.version == V4 {
		return fmt.Sprintf("%d.%d.%d.%d", byte(a.v4>>24), byte(a.v4>>16), byte(a.v4>>8), byte(a.v4))
	}
	return Compress(a.Expanded())
}

// Expanded returns the full 8 * 16-bit lowercase hex block representation
// of an IPv6 address.
func (a Address) Expanded() string {
	parts := make([]string, 8)
	for i := 0; i < 8; i++ {
		parts[i] = fmt.Sprintf("%04x", a.group(i))
	}
	return strings.Join(parts, ":")
}

// group returns the i-th 16-bit block, 0-indexed from the left.
func (a Address) group(i int) uint16 {
	if i < 4 {
		return uint16(a.hi >> (16 * (3 - uint(i))))
	}
	return uint16(a.lo >> (16 * (7 - uint(i))))
}

// Compress shortens an expanded IPv6 address for display: the longest run
// of consecutive all-zero groups collapses to "::" (the leftmost run wins
// ties, runs of a single group stay untouched) and leading zeros are
// stripped from the remaining groups.
func Compress(s string) string {
	groups := strings.Split(s, ":")
	for i, g := range groups {
		if t := strings.TrimLeft(g, "0"); t != "" {
			groups[i] = t
		} else {
			groups[i] = "0"
		}
	}
	return collapseZeroRun(groups)
}

// collapseZeroRun joins groups with the longest all-zero run replaced by
// "::". Groups are emitted as given, so callers control zero trimming.
func collapseZeroRun(groups []string) string {
	start, length := longestZeroRun(groups)
	if length < 2 {
		return strings.Join(groups, ":")
	}
	return strings.Join(groups[:start], ":") + "::" + strings.Join(groups[start+length:], ":")
}

func longestZeroRun(groups []string) (start, length int) {
	start = -1
	run, runStart := 0, 0
	for i, g := range groups {
		if strings.Trim(g, "0") != "" {
			run = 0
			continue
		}
		if run == 0 {
			runStart = i
		}
		run++
		if run > length {
			start, length = runStart, run
		}
	}
	return start, length
}

// ReverseDNS returns the reverse-mapping domain name: the octet-reversed
// in-addr.arpa name for IPv4, the nibble-reversed ip6.arpa name for IPv6.
func (a Address) ReverseDNS() string {
	if a.version == V4 {
		return fmt.Sprintf("%d.%d.%d.%d.in-addr.arpa.",
			byte(a.v4), byte(a.v4>>8), byte(a.v4>>16), byte(a.v4>>24))
	}
	hexstr := fmt.Sprintf("%016x%016x", a.hi, a.lo)
	var b strings.Builder
	for i := len(hexstr) - 1; i >= 0; i-- {
		b.WriteByte(hexstr[i])
		b.WriteByte('.')
	}
	b.WriteString("ip6.arpa.")
	return b.String()
}

// hostLength returns the address width in bits.
func (a Address) hostLength() int {
	if a.version == V4 {
		return 32
	}
	return 128
}

// mask returns a copy with all bits beyond cidr cleared.
func (a Address) mask(cidr int) Address {
	if a.version == V4 {
		return Address{version: V4, v4: a.v4 & maskV4(cidr)}
	}
	hi, lo := maskV6(cidr)
	return Address{version: V6, hi: a.hi & hi, lo: a.lo & lo}
}

// maskV4 builds the 32-bit netmask for cidr. The cidr==0 case is explicit
// so no full-width shift is ever evaluated.
func maskV4(cidr int) uint32 {
	if cidr == 0 {
		return 0
	}
	return ^uint32(0) << uint(32-cidr)
}

// maskV6 builds the 128-bit netmask for cidr as a hi/lo pair.
func maskV6(cidr int) (hi, lo uint64) {
	switch {
	case cidr == 0:
	case cidr <= 64:
		hi = ^uint64(0) << uint(64-cidr)
	default:
		hi = ^uint64(0)
		lo = ^uint64(0) << uint(128-cidr)
	}
	return hi, lo
}

// addBlock advances the address by one block of 2^(width-cidr), carrying
// leftward across the 64-bit halves for IPv6.
func (a Address) addBlock(cidr int) Address {
	if a.version == V4 {
		return Address{version: V4, v4: a.v4 + uint32(1)<<uint(32-cidr)}
	}
	hostBits := 128 - cidr
	var dhi, dlo uint64
	if hostBits >= 64 {
		dhi = 1 << uint(hostBits-64)
	} else {
		dlo = 1 << uint(hostBits)
	}
	lo, carry := bits.Add64(a.lo, dlo, 0)
	hi, _ := bits.Add64(a.hi, dhi, carry)
	return Address{version: V6, hi: hi, lo: lo}
}
