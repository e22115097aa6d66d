package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   string
	}{
		{100, DropInValue},
		{90, DropInValue},
		{89.9, CloseValue},
		{75, CloseValue},
		{74.9, ConditionalValue},
		{50, ConditionalValue},
		{49.9, PoorValue},
		{0, PoorValue},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetPlainLabel(tt.percentage), "percentage %.1f", tt.percentage)
	}
}

func TestGetColorLabelContainsText(t *testing.T) {
	// Colored output must still carry the plain label for greppable logs.
	assert.Contains(t, GetColorLabel(95), DropInValue)
	assert.Contains(t, GetColorLabel(30), PoorValue)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "abcdefg", TruncateText("abcdefg", 7))
	assert.Equal(t, "abcd...", TruncateText("abcdefgh", 7))
	// maxWidth too small to truncate safely
	assert.Equal(t, "abcdefgh", TruncateText("abcdefgh", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
