package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanhanan/duvc-ctl/core"
	"github.com/allanhanan/duvc-ctl/internal/platform"
)

type fakeVendorSet struct{}

func (fakeVendorSet) QuerySupport(core.GUID, uint32) core.Result[uint32] {
	return core.Errf[uint32](core.NotImplemented, "")
}
func (fakeVendorSet) GetProperty(core.GUID, uint32) core.Result[[]byte] {
	return core.Errf[[]byte](core.NotImplemented, "")
}
func (fakeVendorSet) SetProperty(core.GUID, uint32, []byte) core.ResultVoid {
	return core.ErrVoid(core.NewError(core.NotImplemented, ""))
}
func (fakeVendorSet) IsValid() bool { return false }
func (fakeVendorSet) Close() error  { return nil }

type fakeConnection struct {
	valid  bool
	closed bool
}

func (c *fakeConnection) Get(core.CamProp) core.Result[core.PropSetting] {
	return core.Errf[core.PropSetting](core.NotImplemented, "")
}
func (c *fakeConnection) Set(core.CamProp, core.PropSetting) core.ResultVoid {
	return core.ErrVoid(core.NewError(core.NotImplemented, ""))
}
func (c *fakeConnection) GetRange(core.CamProp) core.Result[core.PropRange] {
	return core.Errf[core.PropRange](core.NotImplemented, "")
}
func (c *fakeConnection) GetVid(core.VidProp) core.Result[core.PropSetting] {
	return core.Errf[core.PropSetting](core.NotImplemented, "")
}
func (c *fakeConnection) SetVid(core.VidProp, core.PropSetting) core.ResultVoid {
	return core.ErrVoid(core.NewError(core.NotImplemented, ""))
}
func (c *fakeConnection) GetRangeVid(core.VidProp) core.Result[core.PropRange] {
	return core.Errf[core.PropRange](core.NotImplemented, "")
}
func (c *fakeConnection) IsValid() bool                        { return c.valid }
func (c *fakeConnection) VendorSet() platform.VendorPropertySet { return fakeVendorSet{} }
func (c *fakeConnection) Close() error {
	c.closed = true
	return nil
}

type fakeBridge struct {
	opens int
	conns map[string]*fakeConnection
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{conns: make(map[string]*fakeConnection)}
}

func (b *fakeBridge) ListDevices() core.Result[[]core.Device] { return core.Ok[[]core.Device](nil) }
func (b *fakeBridge) IsDeviceConnected(core.Device) core.Result[bool] {
	return core.Ok(true)
}
func (b *fakeBridge) FindDeviceByPath(path string) core.Result[core.Device] {
	return core.Errf[core.Device](core.DeviceNotFound, path)
}
func (b *fakeBridge) CreateConnection(dev core.Device) (platform.Connection, *core.Error) {
	b.opens++
	conn := &fakeConnection{valid: true}
	b.conns[dev.Key()] = conn
	return conn, nil
}

func TestPoolAcquireCachesConnection(t *testing.T) {
	fb := newFakeBridge()
	p := New(fb)

	dev := core.NewDevice("cam", `\\?\usb#vid_1234`)

	c1, err := p.Acquire(dev)
	require.Nil(t, err)
	require.NotNil(t, c1)
	assert.Equal(t, 1, fb.opens)

	c2, err := p.Acquire(dev)
	require.Nil(t, err)
	assert.Same(t, c1, c2)
	assert.Equal(t, 1, fb.opens, "second acquire should reuse the cached connection")
}

func TestPoolAcquireReopensInvalidConnection(t *testing.T) {
	fb := newFakeBridge()
	p := New(fb)
	dev := core.NewDevice("cam", `\\?\usb#vid_1234`)

	c1, err := p.Acquire(dev)
	require.Nil(t, err)

	fb.conns[dev.Key()].valid = false

	c2, err := p.Acquire(dev)
	require.Nil(t, err)
	assert.NotSame(t, c1, c2)
	assert.Equal(t, 2, fb.opens)
}

func TestPoolReleaseClosesAndDrops(t *testing.T) {
	fb := newFakeBridge()
	p := New(fb)
	dev := core.NewDevice("cam", `\\?\usb#vid_1234`)

	_, err := p.Acquire(dev)
	require.Nil(t, err)
	assert.Equal(t, 1, p.Len())

	p.Release(dev)
	assert.Equal(t, 0, p.Len())
	assert.True(t, fb.conns[dev.Key()].closed)
}

func TestPoolMaxEntries(t *testing.T) {
	fb := newFakeBridge()
	p := New(fb, WithMaxEntries(1))

	devA := core.NewDevice("a", `\\?\usb#a`)
	devB := core.NewDevice("b", `\\?\usb#b`)

	_, err := p.Acquire(devA)
	require.Nil(t, err)
	_, err = p.Acquire(devB)
	require.Nil(t, err)

	assert.Equal(t, 1, p.Len(), "second device should not be cached past the limit")
}

func TestPoolClear(t *testing.T) {
	fb := newFakeBridge()
	p := New(fb)
	dev := core.NewDevice("cam", `\\?\usb#vid_1234`)

	_, err := p.Acquire(dev)
	require.Nil(t, err)

	p.Clear()
	assert.Equal(t, 0, p.Len())
	assert.True(t, fb.conns[dev.Key()].closed)
}
