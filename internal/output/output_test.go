package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HIM72/dbsnp/internal/frequency"
)

func testRecords() frequency.Records {
	return frequency.Records{
		"5@20":  json.RawMessage(`{"allele":"A"}`),
		"10@0":  json.RawMessage(`{"allele":"C"}`),
		"3@200": json.RawMessage(`{"allele":"T"}`),
	}
}

func TestTabWriter_SortsByStart(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)

	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.WriteAll(testRecords()))
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[0], "#Key\t"))
	assert.True(t, strings.HasPrefix(lines[1], "10@0\t0\t10\t10\t"))
	assert.True(t, strings.HasPrefix(lines[2], "5@20\t20\t5\t25\t"))
	assert.True(t, strings.HasPrefix(lines[3], "3@200\t200\t3\t203\t"))
}

func TestTabWriter_MalformedKey(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTabWriter(&buf)

	err := tw.WriteAll(frequency.Records{"bogus": nil})
	assert.Error(t, err)
}

func TestJSONWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter(&buf).WriteAll(testRecords()))

	var doc struct {
		Results map[string]struct {
			Allele string `json:"allele"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Results, 3)
	assert.Equal(t, "C", doc.Results["10@0"].Allele)
}
