package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfigValue(t *testing.T) {
	assert.Equal(t, true, parseConfigValue("true"))
	assert.Equal(t, false, parseConfigValue("off"))
	assert.Equal(t, int64(250), parseConfigValue("250"))
	assert.Equal(t, 2.5, parseConfigValue("2.5"))
	assert.Equal(t, "http://example.org", parseConfigValue("http://example.org"))
}

func TestRunConfigSet_UnknownKey(t *testing.T) {
	err := runConfigSet("frequencey.base_url", "http://example.org")
	assert.ErrorContains(t, err, "unknown config key")
	assert.ErrorContains(t, err, "ratelimit.min_interval_seconds")
}
