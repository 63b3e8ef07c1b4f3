package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanhanan/duvc-ctl/core"
	"github.com/allanhanan/duvc-ctl/internal/platform"
	"github.com/allanhanan/duvc-ctl/internal/pool"
)

type fakeVendorSet struct{}

func (fakeVendorSet) QuerySupport(core.GUID, uint32) core.Result[uint32] {
	return core.Errf[uint32](core.PropertyNotSupported, "unsupported")
}
func (fakeVendorSet) GetProperty(core.GUID, uint32) core.Result[[]byte] {
	return core.Errf[[]byte](core.PropertyNotSupported, "unsupported")
}
func (fakeVendorSet) SetProperty(core.GUID, uint32, []byte) core.ResultVoid {
	return core.OkVoid()
}
func (fakeVendorSet) IsValid() bool { return true }
func (fakeVendorSet) Close() error  { return nil }

type fakeConn struct {
	valid  bool
	closed bool
	value  int32
}

func (c *fakeConn) Get(core.CamProp) core.Result[core.PropSetting] {
	return core.Ok(core.PropSetting{Value: c.value, Mode: core.Manual})
}
func (c *fakeConn) Set(_ core.CamProp, val core.PropSetting) core.ResultVoid {
	c.value = val.Value
	return core.OkVoid()
}
func (c *fakeConn) GetRange(core.CamProp) core.Result[core.PropRange] {
	return core.Ok(core.PropRange{Min: 0, Max: 100, Step: 1})
}
func (c *fakeConn) GetVid(core.VidProp) core.Result[core.PropSetting] {
	return core.Ok(core.PropSetting{Value: c.value, Mode: core.Manual})
}
func (c *fakeConn) SetVid(_ core.VidProp, val core.PropSetting) core.ResultVoid {
	c.value = val.Value
	return core.OkVoid()
}
func (c *fakeConn) GetRangeVid(core.VidProp) core.Result[core.PropRange] {
	return core.Ok(core.PropRange{Min: 0, Max: 255, Step: 1})
}
func (c *fakeConn) IsValid() bool                      { return c.valid }
func (c *fakeConn) VendorSet() platform.VendorPropertySet { return fakeVendorSet{} }
func (c *fakeConn) Close() error {
	c.closed = true
	c.valid = false
	return nil
}

type fakeBridge struct {
	devices []core.Device
	conns   map[string]*fakeConn
}

func newFakeBridge(devices ...core.Device) *fakeBridge {
	return &fakeBridge{devices: devices, conns: make(map[string]*fakeConn)}
}

func (b *fakeBridge) ListDevices() core.Result[[]core.Device] {
	return core.Ok(b.devices)
}

func (b *fakeBridge) IsDeviceConnected(dev core.Device) core.Result[bool] {
	for _, d := range b.devices {
		if d.Equal(dev) {
			return core.Ok(true)
		}
	}
	return core.Ok(false)
}

func (b *fakeBridge) FindDeviceByPath(path string) core.Result[core.Device] {
	for _, d := range b.devices {
		if d.Path == path {
			return core.Ok(d)
		}
	}
	return core.Errf[core.Device](core.DeviceNotFound, "no such device")
}

func (b *fakeBridge) CreateConnection(dev core.Device) (platform.Connection, *core.Error) {
	conn := &fakeConn{valid: true}
	b.conns[dev.Key()] = conn
	return conn, nil
}

func withFakeBridge(t *testing.T, bridge *fakeBridge) {
	t.Helper()
	prevBridge, prevPool := defaultBridge, defaultPool
	defaultBridge = bridge
	defaultPool = pool.New(bridge)
	t.Cleanup(func() {
		defaultBridge, defaultPool = prevBridge, prevPool
	})
}

func TestOpenRejectsInvalidDevice(t *testing.T) {
	_, err := Open(core.Device{})
	require.NotNil(t, err)
	assert.Equal(t, core.InvalidArgument, err.Code)
}

func TestOpenAtReturnsCameraForIndex(t *testing.T) {
	dev := core.NewDevice("Test Cam", "\\\\?\\usb#1")
	withFakeBridge(t, newFakeBridge(dev))

	cam, err := OpenAt(0)
	require.Nil(t, err)
	assert.Equal(t, dev, cam.Device())
}

func TestOpenAtOutOfRangeReturnsDeviceNotFound(t *testing.T) {
	withFakeBridge(t, newFakeBridge())

	_, err := OpenAt(0)
	require.NotNil(t, err)
	assert.Equal(t, core.DeviceNotFound, err.Code)
}

func TestOpenByPathFindsMatchingDevice(t *testing.T) {
	dev := core.NewDevice("Test Cam", "\\\\?\\usb#1")
	withFakeBridge(t, newFakeBridge(dev))

	cam, err := OpenByPath("\\\\?\\usb#1")
	require.Nil(t, err)
	assert.Equal(t, dev, cam.Device())
}

func TestCameraGetSetRoundTripsThroughConnection(t *testing.T) {
	dev := core.NewDevice("Test Cam", "\\\\?\\usb#1")
	withFakeBridge(t, newFakeBridge(dev))

	cam, err := Open(dev)
	require.Nil(t, err)

	setResult := cam.Set(core.Pan, core.PropSetting{Value: 7, Mode: core.Manual})
	require.True(t, setResult.IsOk())

	getResult := cam.Get(core.Pan)
	require.True(t, getResult.IsOk())
	assert.Equal(t, int32(7), getResult.Value().Value)
}

func TestCameraCapabilitiesScansProperties(t *testing.T) {
	dev := core.NewDevice("Test Cam", "\\\\?\\usb#1")
	withFakeBridge(t, newFakeBridge(dev))

	cam, err := Open(dev)
	require.Nil(t, err)

	caps := cam.Capabilities()
	require.True(t, caps.IsOk())
	assert.True(t, caps.Value().CamSupported(core.Pan))
}

func TestCameraCloseReleasesConnection(t *testing.T) {
	dev := core.NewDevice("Test Cam", "\\\\?\\usb#1")
	bridge := newFakeBridge(dev)
	withFakeBridge(t, bridge)

	cam, err := Open(dev)
	require.Nil(t, err)

	require.True(t, cam.Get(core.Pan).IsOk())
	require.NoError(t, cam.Close())

	conn := bridge.conns[dev.Key()]
	require.NotNil(t, conn)
	assert.True(t, conn.closed)
}

func TestCameraOperationsFailAfterClose(t *testing.T) {
	dev := core.NewDevice("Test Cam", "\\\\?\\usb#1")
	withFakeBridge(t, newFakeBridge(dev))

	cam, err := Open(dev)
	require.Nil(t, err)
	require.NoError(t, cam.Close())

	result := cam.Get(core.Pan)
	require.True(t, result.IsError())
	assert.Equal(t, core.DeviceNotFound, result.Error().Code)
}
