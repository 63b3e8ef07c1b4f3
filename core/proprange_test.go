package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamModeStringAndParseRoundTrip(t *testing.T) {
	assert.Equal(t, "Auto", Auto.String())
	assert.Equal(t, "Manual", Manual.String())

	m, ok := ParseCamMode("Manual")
	assert.True(t, ok)
	assert.Equal(t, Manual, m)

	_, ok = ParseCamMode("Bogus")
	assert.False(t, ok)
}

func TestPropRangeIsValid(t *testing.T) {
	r := PropRange{Min: 0, Max: 100, Step: 10}
	assert.True(t, r.IsValid(0))
	assert.True(t, r.IsValid(50))
	assert.True(t, r.IsValid(100))
	assert.False(t, r.IsValid(-1))
	assert.False(t, r.IsValid(101))
	assert.False(t, r.IsValid(55))
}

func TestPropRangeIsValidWithoutStep(t *testing.T) {
	r := PropRange{Min: 0, Max: 100}
	assert.True(t, r.IsValid(37))
}

func TestPropRangeClampOutOfBounds(t *testing.T) {
	r := PropRange{Min: 0, Max: 100, Step: 10}
	assert.Equal(t, int32(0), r.Clamp(-5))
	assert.Equal(t, int32(100), r.Clamp(150))
}

func TestPropRangeClampRoundsToNearestStep(t *testing.T) {
	r := PropRange{Min: 0, Max: 100, Step: 10}
	assert.Equal(t, int32(10), r.Clamp(12))
	assert.Equal(t, int32(20), r.Clamp(16))
	assert.Equal(t, int32(10), r.Clamp(15))
}

func TestPropRangeClampWithoutStepPassesValueThrough(t *testing.T) {
	r := PropRange{Min: 0, Max: 100}
	assert.Equal(t, int32(37), r.Clamp(37))
}

func TestPropRangeClampStaysStepAlignedWhenMaxIsnt(t *testing.T) {
	r := PropRange{Min: 0, Max: 95, Step: 10}
	assert.Equal(t, int32(90), r.Clamp(95))
	assert.Equal(t, int32(90), r.Clamp(94))
	assert.True(t, r.IsValid(r.Clamp(95)))
	assert.True(t, r.IsValid(r.Clamp(94)))
}
