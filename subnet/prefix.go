package subnet

import (
	"fmt"
	"strings"
)

// Prefix is a network: the lowest address of the block paired with the
// prefix length. The constructor clears host bits unconditionally, so a
// Prefix never carries caller-supplied host bits.
type Prefix struct {
	addr Address
	cidr int
}

// NewPrefix constructs a canonical Prefix from an address and prefix
// length, masking the address down to its network.
func NewPrefix(addr Address, cidr int) (Prefix, error) {
	if cidr < 0 || cidr > addr.hostLength() {
		return Prefix{}, fmt.Errorf("%w: /%d for %s", ErrInvalidCidr, cidr, addr.version)
	}
	return Prefix{addr: addr.mask(cidr), cidr: cidr}, nil
}

// Base returns the network's base address.
func (p Prefix) Base() Address { return p.addr }

// PrefixLength returns the prefix length.
func (p Prefix) PrefixLength() int { return p.cidr }

// String renders the network in canonical CIDR form.
func (p Prefix) String() string { return fmt.Sprintf("%s/%d", p.addr, p.cidr) }

// SubnetInfo is the derived, read-only view over a Prefix consumed by the
// presentation layer. IPv4-only fields are empty for IPv6 and vice versa.
// The IPv6 first/last host fields equal the network address: this system
// deliberately does not model an IPv6 host range.
type SubnetInfo struct {
	Version   Version `json:"version" yaml:"version"`
	Network   string  `json:"network" yaml:"network"`
	Broadcast string  `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`
	FirstHost string  `json:"first_host" yaml:"first_host"`
	LastHost  string  `json:"last_host" yaml:"last_host"`
	Netmask   string  `json:"netmask,omitempty" yaml:"netmask,omitempty"`
	Wildcard  string  `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
	Cidr      int     `json:"prefix_length" yaml:"prefix_length"`
	Total     Count   `json:"total_addresses" yaml:"total_addresses"`
	Usable    Count   `json:"usable_hosts" yaml:"usable_hosts"`
	Class     string  `json:"class,omitempty" yaml:"class,omitempty"`
	Private   bool    `json:"private" yaml:"private"`
	Notation  string  `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	prefix Prefix
}

// Prefix returns the network the view was derived from, for follow-up
// containment and enumeration calls.
func (si SubnetInfo) Prefix() Prefix { return si.prefix }

// String renders the multi-line human-readable form.
func (si SubnetInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network:   %s/%d\n", si.Network, si.Cidr)
	if si.Version == V4 {
		fmt.Fprintf(&b, "Netmask:   %s\n", si.Netmask)
		fmt.Fprintf(&b, "Wildcard:  %s\n", si.Wildcard)
		fmt.Fprintf(&b, "Broadcast: %s\n", si.Broadcast)
	} else {
		fmt.Fprintf(&b, "Prefix:    %s\n", si.Notation)
	}
	fmt.Fprintf(&b, "HostMin:   %s\n", si.FirstHost)
	fmt.Fprintf(&b, "HostMax:   %s\n", si.LastHost)
	fmt.Fprintf(&b, "Hosts:     %s usable of %s\n", si.Usable, si.Total)
	if si.Version == V4 {
		fmt.Fprintf(&b, "Class:     %s\n", si.Class)
	}
	fmt.Fprintf(&b, "Private:   %t", si.Private)
	return b.String()
}

// DeriveIPv4 computes the subnet view for an IPv4 address and prefix
// length in [0,32].
func DeriveIPv4(addr Address, cidr int) (SubnetInfo, error) {
	if addr.version != V4 {
		return SubnetInfo{}, fmt.Errorf("%w: %s address for IPv4 derivation", ErrVersionMismatch, addr.version)
	}
	prefix, err := NewPrefix(addr, cidr)
	if err != nil {
		return SubnetInfo{}, err
	}

	mask := maskV4(cidr)
	network := prefix.addr.v4
	broadcast := network | ^mask
	hostBits := 32 - cidr

	// /31 and /32 have no distinct host range.
	first, last := network, network
	if hostBits > 1 {
		first = network + 1
		last = broadcast - 1
	}

	total := countForBits(hostBits)
	return SubnetInfo{
		Version:   V4,
		Network:   v4String(network),
		Broadcast: v4String(broadcast),
		FirstHost: v4String(first),
		LastHost:  v4String(last),
		Netmask:   v4String(mask),
		Wildcard:  v4String(^mask),
		Cidr:      cidr,
		Total:     total,
		Usable:    total.usable(),
		Class:     networkClass(byte(network >> 24)),
		Private:   isPrivateV4(network),
		prefix:    prefix,
	}, nil
}

// DeriveIPv6 computes the subnet view for an IPv6 address and prefix
// length in [0,128]. Broadcast, netmask and class have no IPv6 meaning
// and stay empty; first/last host both equal the network address.
func DeriveIPv6(addr Address, cidr int) (SubnetInfo, error) {
	if addr.version != V6 {
		return SubnetInfo{}, fmt.Errorf("%w: %s address for IPv6 derivation", ErrVersionMismatch, addr.version)
	}
	prefix, err := NewPrefix(addr, cidr)
	if err != nil {
		return SubnetInfo{}, err
	}

	expanded := prefix.addr.Expanded()
	total := countForBits(128 - cidr)
	return SubnetInfo{
		Version:   V6,
		Network:   expanded,
		FirstHost: expanded,
		LastHost:  expanded,
		Cidr:      cidr,
		Total:     total,
		Usable:    total.usable(),
		Private:   isPrivateV6(prefix.addr),
		Notation:  fmt.Sprintf("%s/%d", collapseZeroRun(strings.Split(expanded, ":")), cidr),
		prefix:    prefix,
	}, nil
}

// Supernet widens a prefix to newCidr, yielding the single covering
// network. Splitting into multiple narrower networks is Enumerate's job.
func Supernet(p Prefix, newCidr int) (Prefix, error) {
	if newCidr < 0 || newCidr > p.cidr {
		return Prefix{}, fmt.Errorf("%w: /%d does not widen /%d", ErrInvalidCidr, newCidr, p.cidr)
	}
	return NewPrefix(p.addr, newCidr)
}

func v4String(v uint32) string {
	return Address{version: V4, v4: v}.String()
}

// networkClass maps the first octet to the classful A-E label.
func networkClass(firstOctet byte) string {
	switch {
	case firstOctet < 128:
		return "A"
	case firstOctet < 192:
		return "B"
	case firstOctet < 224:
		return "C"
	case firstOctet < 240:
		return "D"
	default:
		return "E"
	}
}

// isPrivateV4 reports RFC 1918 membership of the network address.
func isPrivateV4(v uint32) bool {
	switch {
	case v>>24 == 10: // 10.0.0.0/8
		return true
	case v>>20 == 0xac1: // 172.16.0.0/12
		return true
	case v>>16 == 0xc0a8: // 192.168.0.0/16
		return true
	}
	return false
}

// isPrivateV6 covers ULA, link-local and the loopback address. This is a
// deliberately narrow check, not a full IPv6 scope classification.
func isPrivateV6(a Address) bool {
	switch {
	case byte(a.hi>>56) == 0xfc || byte(a.hi>>56) == 0xfd: // fc00::/7
		return true
	case a.hi>>54 == 0x3fa: // fe80::/10
		return true
	case a.hi == 0 && a.lo == 1: // ::1
		return true
	}
	return false
}
