package subnet

import "fmt"

// DefaultMaxResults bounds how many child networks a single enumeration
// request materializes. The true total is reported separately.
const DefaultMaxResults = 256

// Enumerate splits p into child networks of newCidr bits, ordered by
// increasing address. newCidr must be strictly narrower than p. At most
// maxResults children are returned; the Count carries the true total,
// which for IPv6 can far exceed anything worth materializing.
// maxResults <= 0 selects DefaultMaxResults.
func Enumerate(p Prefix, newCidr, maxResults int) ([]Prefix, Count, error) {
	it, total, err := NewIterator(p, newCidr, maxResults)
	if err != nil {
		return nil, Count{}, err
	}
	out := make([]Prefix, 0, it.remaining)
	for {
		child, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, child)
	}
	return out, total, nil
}

// Iterator streams child networks one at a time for callers that render
// incrementally. It is bounded by the same cap as Enumerate and holds no
// state beyond its inputs.
type Iterator struct {
	remaining int
	current   Address
	newCidr   int
}

// NewIterator prepares a child-network iterator and reports the true
// total count.
func NewIterator(p Prefix, newCidr, maxResults int) (*Iterator, Count, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if newCidr <= p.cidr || newCidr > p.addr.hostLength() {
		return nil, Count{}, fmt.Errorf("%w: /%d from /%d", ErrNotEnumerable, newCidr, p.cidr)
	}

	total := countForBits(newCidr - p.cidr)
	display := uint64(maxResults)
	if n, ok := total.Exact(); ok && n < display {
		display = n
	}
	return &Iterator{remaining: int(display), current: p.addr, newCidr: newCidr}, total, nil
}

// Next returns the next child and true, or the zero Prefix and false once
// the cap is reached.
func (it *Iterator) Next() (Prefix, bool) {
	if it.remaining == 0 {
		return Prefix{}, false
	}
	child := Prefix{addr: it.current, cidr: it.newCidr}
	it.current = it.current.addBlock(it.newCidr)
	it.remaining--
	return child, true
}
