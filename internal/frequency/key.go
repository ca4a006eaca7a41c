package frequency

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a variant's span within a queried interval. The service
// keys each record by "<length>@<start>".
type Key struct {
	Length int64
	Start  int64
}

// ParseKey decodes a composite "<length>@<start>" record key.
func ParseKey(s string) (Key, error) {
	lenStr, startStr, ok := strings.Cut(s, "@")
	if !ok {
		return Key{}, fmt.Errorf("composite key %q: missing '@'", s)
	}
	length, err := strconv.ParseInt(lenStr, 10, 64)
	if err != nil {
		return Key{}, fmt.Errorf("composite key %q: bad length: %w", s, err)
	}
	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil {
		return Key{}, fmt.Errorf("composite key %q: bad start: %w", s, err)
	}
	return Key{Length: length, Start: start}, nil
}

// End returns the first position past the span the key covers.
func (k Key) End() int64 { return k.Start + k.Length }

func (k Key) String() string { return fmt.Sprintf("%d@%d", k.Length, k.Start) }

// nextStart computes the continuation point after a partial page: one past
// the highest covered position among all accumulated keys. It deliberately
// scans the whole accumulator rather than the latest page, since pages are
// not guaranteed to arrive in increasing position order.
func nextStart(recs Records) (int64, error) {
	if len(recs) == 0 {
		return 0, fmt.Errorf("cannot advance interval: no records accumulated")
	}
	var maxEnd int64 = -1
	for s := range recs {
		k, err := ParseKey(s)
		if err != nil {
			return 0, err
		}
		if end := k.End(); end > maxEnd {
			maxEnd = end
		}
	}
	return maxEnd + 1, nil
}
