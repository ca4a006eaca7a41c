// Package output provides frequency record output formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/HIM72/dbsnp/internal/frequency"
)

// TabWriter writes accumulated records in tab-delimited format, one line per
// record, sorted by start position.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Key",
			"Start",
			"Length",
			"End",
			"Payload_bytes",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// WriteAll writes every record in ascending start order.
func (tw *TabWriter) WriteAll(recs frequency.Records) error {
	keys := make([]frequency.Key, 0, len(recs))
	for s := range recs {
		k, err := frequency.ParseKey(s)
		if err != nil {
			return err
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Start != keys[j].Start {
			return keys[i].Start < keys[j].Start
		}
		return keys[i].Length < keys[j].Length
	})

	for _, k := range keys {
		payload := recs[k.String()]
		_, err := fmt.Fprintf(tw.w, "%s\t%d\t%d\t%d\t%d\n",
			k.String(), k.Start, k.Length, k.End(), len(payload))
		if err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
