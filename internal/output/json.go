package output

import (
	"encoding/json"
	"io"

	"github.com/HIM72/dbsnp/internal/frequency"
)

// JSONWriter writes the full accumulator as a single indented JSON document,
// preserving record payloads byte for byte.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteAll writes the records as {"results": {<key>: <record>, ...}}.
func (jw *JSONWriter) WriteAll(recs frequency.Records) error {
	doc := struct {
		Results frequency.Records `json:"results"`
	}{Results: recs}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
