// Package gene resolves gene identifiers to genomic locations using the
// NCBI E-utilities summary service.
package gene

import (
	"bytes"
	"fmt"
	"strconv"
)

// Location is a gene's placement on a reference sequence. Start and Stop are
// zero-based positions with Start <= Stop regardless of strand.
type Location struct {
	Accession string
	Start     int64
	Stop      int64
}

func (l *Location) String() string {
	return fmt.Sprintf("%s:%d-%d", l.Accession, l.Start, l.Stop)
}

// Length returns the number of positions the location spans, inclusive of
// both bounds.
func (l *Location) Length() int64 {
	return l.Stop - l.Start + 1
}

// flexInt decodes a JSON value that may arrive as either a number or a
// quoted string. esummary payloads are inconsistent about chrstart/chrstop.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parsing coordinate %q: %w", data, err)
	}
	*f = flexInt(n)
	return nil
}
