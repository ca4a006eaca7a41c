package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	k, err := ParseKey("5@100")
	require.NoError(t, err)
	assert.Equal(t, int64(5), k.Length)
	assert.Equal(t, int64(100), k.Start)
	assert.Equal(t, int64(105), k.End())
	assert.Equal(t, "5@100", k.String())
}

func TestParseKey_Malformed(t *testing.T) {
	cases := []string{"", "100", "@100", "5@", "x@100", "5@y", "5@100@2"}
	for _, s := range cases {
		_, err := ParseKey(s)
		assert.Error(t, err, "key %q should not parse", s)
	}
}

func TestNextStart(t *testing.T) {
	recs := Records{
		"10@0": nil,
		"5@20": nil,
	}
	next, err := nextStart(recs)
	require.NoError(t, err)
	assert.Equal(t, int64(26), next)
}

func TestNextStart_UsesAllKeysNotLatest(t *testing.T) {
	// A record early in the map can still hold the highest covered position.
	recs := Records{
		"5@100": nil,
		"3@200": nil,
		"1@50":  nil,
	}
	next, err := nextStart(recs)
	require.NoError(t, err)
	assert.Equal(t, int64(204), next)
}

func TestNextStart_Empty(t *testing.T) {
	_, err := nextStart(Records{})
	assert.Error(t, err)
}

func TestNextStart_MalformedKey(t *testing.T) {
	_, err := nextStart(Records{"bogus": nil})
	assert.Error(t, err)
}
