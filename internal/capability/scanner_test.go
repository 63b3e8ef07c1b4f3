package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanhanan/duvc-ctl/core"
	"github.com/allanhanan/duvc-ctl/internal/platform"
)

type fakeVendorSet struct{}

func (fakeVendorSet) QuerySupport(core.GUID, uint32) core.Result[uint32] {
	return core.Errf[uint32](core.PropertyNotSupported, "no vendor properties")
}
func (fakeVendorSet) GetProperty(core.GUID, uint32) core.Result[[]byte] {
	return core.Errf[[]byte](core.PropertyNotSupported, "no vendor properties")
}
func (fakeVendorSet) SetProperty(core.GUID, uint32, []byte) core.ResultVoid {
	return core.ErrVoid(core.NewError(core.PropertyNotSupported, "no vendor properties"))
}
func (fakeVendorSet) IsValid() bool { return true }
func (fakeVendorSet) Close() error  { return nil }

type fakeConnection struct {
	valid              bool
	camRanges          map[core.CamProp]core.PropRange
	camValues          map[core.CamProp]core.PropSetting
	vidRanges          map[core.VidProp]core.PropRange
	vidValues          map[core.VidProp]core.PropSetting
	failGetCam         core.CamProp
	invalidateOnFailed bool
}

func (f *fakeConnection) Get(prop core.CamProp) core.Result[core.PropSetting] {
	if prop == f.failGetCam {
		if f.invalidateOnFailed {
			f.valid = false
		}
		return core.Errf[core.PropSetting](core.DeviceBusy, "transient")
	}
	v, ok := f.camValues[prop]
	if !ok {
		return core.Errf[core.PropSetting](core.PropertyNotSupported, "unsupported")
	}
	return core.Ok(v)
}

func (f *fakeConnection) Set(core.CamProp, core.PropSetting) core.ResultVoid {
	return core.OkVoid()
}

func (f *fakeConnection) GetRange(prop core.CamProp) core.Result[core.PropRange] {
	r, ok := f.camRanges[prop]
	if !ok {
		return core.Errf[core.PropRange](core.PropertyNotSupported, "unsupported")
	}
	return core.Ok(r)
}

func (f *fakeConnection) GetVid(prop core.VidProp) core.Result[core.PropSetting] {
	v, ok := f.vidValues[prop]
	if !ok {
		return core.Errf[core.PropSetting](core.PropertyNotSupported, "unsupported")
	}
	return core.Ok(v)
}

func (f *fakeConnection) SetVid(core.VidProp, core.PropSetting) core.ResultVoid {
	return core.OkVoid()
}

func (f *fakeConnection) GetRangeVid(prop core.VidProp) core.Result[core.PropRange] {
	r, ok := f.vidRanges[prop]
	if !ok {
		return core.Errf[core.PropRange](core.PropertyNotSupported, "unsupported")
	}
	return core.Ok(r)
}

func (f *fakeConnection) IsValid() bool { return f.valid }
func (f *fakeConnection) VendorSet() platform.VendorPropertySet {
	return fakeVendorSet{}
}
func (f *fakeConnection) Close() error { return nil }

func newFakeConnection() *fakeConnection {
	return &fakeConnection{
		valid:      true,
		failGetCam: core.CamProp(-1), // no property fails unless a test picks one
		camRanges: map[core.CamProp]core.PropRange{
			core.Pan:  {Min: -10, Max: 10, Step: 1, DefaultVal: 3, DefaultMode: core.Auto},
			core.Zoom: {Min: 0, Max: 100, Step: 1},
		},
		camValues: map[core.CamProp]core.PropSetting{
			core.Pan:  {Value: 0, Mode: core.Manual},
			core.Zoom: {Value: 50, Mode: core.Manual},
		},
		vidRanges: map[core.VidProp]core.PropRange{
			core.Brightness: {Min: 0, Max: 255, Step: 1},
		},
		vidValues: map[core.VidProp]core.PropSetting{
			core.Brightness: {Value: 128, Mode: core.Manual},
		},
	}
}

func TestScanPopulatesSupportedProperties(t *testing.T) {
	dev := core.NewDevice("Test Cam", "\\\\?\\usb#test")
	conn := newFakeConnection()

	snap := Scan(dev, conn)

	require.True(t, snap.Accessible)
	assert.True(t, snap.CamSupported(core.Pan))
	assert.True(t, snap.CamSupported(core.Zoom))
	assert.False(t, snap.CamSupported(core.Focus))
	assert.True(t, snap.VidSupported(core.Brightness))
	assert.False(t, snap.VidSupported(core.Contrast))

	assert.Equal(t, int32(0), snap.CamProps[core.Pan].Current.Value)
	assert.Equal(t, int32(128), snap.VidProps[core.Brightness].Current.Value)
}

func TestScanInaccessibleDeviceReturnsEmptySnapshot(t *testing.T) {
	dev := core.NewDevice("Test Cam", "")
	conn := &fakeConnection{valid: false}

	snap := Scan(dev, conn)

	assert.False(t, snap.Accessible)
	assert.Empty(t, snap.CamProps)
	assert.Empty(t, snap.VidProps)
}

func TestScanSupportedButGetFailsStillRecordsSupport(t *testing.T) {
	dev := core.NewDevice("Test Cam", "")
	conn := newFakeConnection()
	conn.failGetCam = core.Pan

	snap := Scan(dev, conn)

	assert.True(t, snap.CamSupported(core.Pan))
	assert.Equal(t, int32(3), snap.CamProps[core.Pan].Current.Value)
	assert.Equal(t, core.Auto, snap.CamProps[core.Pan].Current.Mode)
}

func TestScanAbortsOnTransientErrorMidScan(t *testing.T) {
	dev := core.NewDevice("Test Cam", "")
	conn := newFakeConnection()
	conn.failGetCam = core.Pan
	conn.invalidateOnFailed = true

	snap := Scan(dev, conn)

	assert.False(t, snap.Accessible)
}

func TestRefreshClearsOnDisconnect(t *testing.T) {
	dev := core.NewDevice("Test Cam", "")
	conn := newFakeConnection()
	snap := Scan(dev, conn)
	require.True(t, snap.CamSupported(core.Pan))

	conn.valid = false
	err := Refresh(snap, conn)

	require.NotNil(t, err)
	assert.Equal(t, core.DeviceNotFound, err.Code)
	assert.False(t, snap.Accessible)
	assert.Empty(t, snap.CamProps)
}

func TestRefreshRescans(t *testing.T) {
	dev := core.NewDevice("Test Cam", "")
	conn := newFakeConnection()
	snap := Scan(dev, conn)

	conn.camValues[core.Pan] = core.PropSetting{Value: 5, Mode: core.Manual}
	err := Refresh(snap, conn)

	require.Nil(t, err)
	assert.Equal(t, int32(5), snap.CamProps[core.Pan].Current.Value)
}
