package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceIsValid(t *testing.T) {
	assert.False(t, Device{}.IsValid())
	assert.True(t, NewDevice("Webcam", "").IsValid())
	assert.True(t, NewDevice("", `\\?\usb#vid`).IsValid())
}

func TestDeviceKeyPrefersPath(t *testing.T) {
	d := NewDevice("Webcam", `\\?\usb#vid`)
	assert.Equal(t, `\\?\usb#vid`, d.Key())
	assert.Equal(t, "Webcam", NewDevice("Webcam", "").Key())
}

func TestDeviceEqualComparesByPathWhenBothPresent(t *testing.T) {
	a := NewDevice("Webcam A", `\\?\usb#1`)
	b := NewDevice("Webcam B", `\\?\USB#1`)
	assert.True(t, a.Equal(b))
}

func TestDeviceEqualFallsBackToNameCaseInsensitively(t *testing.T) {
	a := NewDevice("Webcam", "")
	b := NewDevice("WEBCAM", "")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewDevice("Other", "")))
}

func TestDeviceStringPrefersName(t *testing.T) {
	assert.Equal(t, "Webcam", NewDevice("Webcam", `\\?\usb#1`).String())
	assert.Equal(t, `\\?\usb#1`, NewDevice("", `\\?\usb#1`).String())
}
