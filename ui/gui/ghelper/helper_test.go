package ghelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:59", FormatClock(59.9))
	assert.Equal(t, "02:05", FormatClock(125))
	assert.Equal(t, "00:00", FormatClock(-3), "negative clamps to zero")
}

func TestPointInRect(t *testing.T) {
	assert.True(t, PointInRect(10, 10, 0, 0, 20, 20))
	assert.True(t, PointInRect(0, 0, 0, 0, 20, 20), "top-left inclusive")
	assert.False(t, PointInRect(20, 10, 0, 0, 20, 20), "right edge exclusive")
	assert.False(t, PointInRect(10, 20, 0, 0, 20, 20), "bottom edge exclusive")
}
