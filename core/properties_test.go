package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamPropStringAndParseRoundTrip(t *testing.T) {
	for _, p := range AllCamProps() {
		name := p.String()
		assert.NotEqual(t, "Unknown", name)
		parsed, ok := ParseCamProp(name)
		assert.True(t, ok)
		assert.Equal(t, p, parsed)
	}
}

func TestVidPropStringAndParseRoundTrip(t *testing.T) {
	for _, p := range AllVidProps() {
		name := p.String()
		assert.NotEqual(t, "Unknown", name)
		parsed, ok := ParseVidProp(name)
		assert.True(t, ok)
		assert.Equal(t, p, parsed)
	}
}

func TestParseCamPropRejectsUnknownName(t *testing.T) {
	_, ok := ParseCamProp("NotAProperty")
	assert.False(t, ok)
}

func TestUnknownCamPropStringsAsUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", CamProp(9999).String())
}

func TestAllCamPropsCoversEveryDeclaredConstant(t *testing.T) {
	assert.Len(t, AllCamProps(), int(camPropCount))
}

func TestAllVidPropsCoversEveryDeclaredConstant(t *testing.T) {
	assert.Len(t, AllVidProps(), int(vidPropCount))
}
