package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeviceCapabilitiesStartsEmpty(t *testing.T) {
	dev := NewDevice("Webcam", "")
	caps := NewDeviceCapabilities(dev)
	assert.Equal(t, dev, caps.Device)
	assert.False(t, caps.Accessible)
	assert.Empty(t, caps.CamProps)
	assert.Empty(t, caps.VidProps)
}

func TestDeviceCapabilitiesSupportedChecks(t *testing.T) {
	caps := NewDeviceCapabilities(NewDevice("Webcam", ""))
	caps.CamProps[Pan] = PropertyCapability{Supported: true}
	caps.CamProps[Tilt] = PropertyCapability{Supported: false}
	caps.VidProps[Brightness] = PropertyCapability{Supported: true}

	assert.True(t, caps.CamSupported(Pan))
	assert.False(t, caps.CamSupported(Tilt))
	assert.False(t, caps.CamSupported(Zoom))
	assert.True(t, caps.VidSupported(Brightness))
	assert.False(t, caps.VidSupported(Contrast))
}

func TestDeviceCapabilitiesClearResetsState(t *testing.T) {
	caps := NewDeviceCapabilities(NewDevice("Webcam", ""))
	caps.Accessible = true
	caps.CamProps[Pan] = PropertyCapability{Supported: true}

	caps.Clear()

	assert.False(t, caps.Accessible)
	assert.Empty(t, caps.CamProps)
	assert.Empty(t, caps.VidProps)
}
