package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 4, ParseInt("4", 0))
	assert.Equal(t, 4, ParseInt(" 4 ", 0))
	assert.Equal(t, 0, ParseInt("", 0))
	assert.Equal(t, 0, ParseInt("abc", 0))
	assert.Equal(t, 0, ParseInt("-2", 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "héé...", Truncate("héééé", 3))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", Clip("short", 50))
	assert.Equal(t, "abc", Clip("abcdef", 3))
	assert.Equal(t, "hé", Clip("héééé", 2))
}
