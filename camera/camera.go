// Package camera provides Camera, the high-level handle applications use
// to talk to one video-input device: property get/set, vendor extensions,
// and an on-demand capability snapshot, all behind a pooled connection.
package camera

import (
	"sync"

	"github.com/allanhanan/duvc-ctl/core"
	"github.com/allanhanan/duvc-ctl/internal/capability"
	"github.com/allanhanan/duvc-ctl/internal/logging"
	"github.com/allanhanan/duvc-ctl/internal/platform"
	"github.com/allanhanan/duvc-ctl/internal/pool"
)

var log = logging.For("camera")

var (
	defaultBridge platform.Bridge = platform.NewBridge()
	defaultPool                   = pool.New(defaultBridge)
)

// ListDevices enumerates every currently-present video-input device.
func ListDevices() core.Result[[]core.Device] {
	return defaultBridge.ListDevices()
}

// IsDeviceConnected reports whether dev currently resolves to a live
// device, without opening a connection to it.
func IsDeviceConnected(dev core.Device) core.Result[bool] {
	return defaultBridge.IsDeviceConnected(dev)
}

// Camera is the move-only public handle composing a Device with its lazily
// opened connection. The zero Camera is not usable; construct one with
// Open, OpenAt, or OpenByPath.
type Camera struct {
	mu     sync.Mutex
	device core.Device
	conn   platform.Connection
	closed bool
}

// Open returns a Camera bound to dev. The device is not required to be
// present yet; until it is, IsValid reports false and every property call
// fails.
func Open(dev core.Device) (*Camera, *core.Error) {
	if !dev.IsValid() {
		return nil, core.NewError(core.InvalidArgument, "device has neither name nor path")
	}
	return &Camera{device: dev}, nil
}

// OpenAt returns a Camera bound to the device at index in the current
// enumeration from ListDevices.
func OpenAt(index int) (*Camera, *core.Error) {
	devices := ListDevices()
	if devices.IsError() {
		return nil, devices.Error()
	}
	list := devices.Value()
	if index < 0 || index >= len(list) {
		return nil, core.NewError(core.DeviceNotFound, "device index out of range")
	}
	return Open(list[index])
}

// OpenByPath returns a Camera bound to the device with the given host
// device path.
func OpenByPath(path string) (*Camera, *core.Error) {
	found := defaultBridge.FindDeviceByPath(path)
	if found.IsError() {
		return nil, found.Error()
	}
	return Open(found.Value())
}

// Device returns the device this Camera is bound to.
func (c *Camera) Device() core.Device {
	return c.device
}

// IsValid reports whether the bound device appears in the current
// enumeration; it does not open a connection.
func (c *Camera) IsValid() bool {
	if !c.device.IsValid() {
		return false
	}
	connected := defaultBridge.IsDeviceConnected(c.device)
	return connected.IsOk() && connected.Value()
}

// connection lazily acquires and returns the pooled connection for this
// Camera's device, or the closed-handle error if Close has already run.
func (c *Camera) connection() (platform.Connection, *core.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, core.NewError(core.DeviceNotFound, "camera is closed")
	}
	if c.conn != nil && c.conn.IsValid() {
		return c.conn, nil
	}

	conn, err := defaultPool.Acquire(c.device)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return conn, nil
}

// Get returns the current value and mode of a camera-control property.
func (c *Camera) Get(prop core.CamProp) core.Result[core.PropSetting] {
	conn, err := c.connection()
	if err != nil {
		return core.Err[core.PropSetting](err)
	}
	return conn.Get(prop)
}

// Set applies val to a camera-control property.
func (c *Camera) Set(prop core.CamProp, val core.PropSetting) core.ResultVoid {
	conn, err := c.connection()
	if err != nil {
		return core.ErrVoid(err)
	}
	return conn.Set(prop, val)
}

// GetRange returns the admissible domain of a camera-control property.
func (c *Camera) GetRange(prop core.CamProp) core.Result[core.PropRange] {
	conn, err := c.connection()
	if err != nil {
		return core.Err[core.PropRange](err)
	}
	return conn.GetRange(prop)
}

// GetVid returns the current value and mode of an image-processing
// property.
func (c *Camera) GetVid(prop core.VidProp) core.Result[core.PropSetting] {
	conn, err := c.connection()
	if err != nil {
		return core.Err[core.PropSetting](err)
	}
	return conn.GetVid(prop)
}

// SetVid applies val to an image-processing property.
func (c *Camera) SetVid(prop core.VidProp, val core.PropSetting) core.ResultVoid {
	conn, err := c.connection()
	if err != nil {
		return core.ErrVoid(err)
	}
	return conn.SetVid(prop, val)
}

// GetRangeVid returns the admissible domain of an image-processing
// property.
func (c *Camera) GetRangeVid(prop core.VidProp) core.Result[core.PropRange] {
	conn, err := c.connection()
	if err != nil {
		return core.Err[core.PropRange](err)
	}
	return conn.GetRangeVid(prop)
}

// VendorSet returns the vendor property bridge for this Camera's device.
func (c *Camera) VendorSet() (platform.VendorPropertySet, *core.Error) {
	conn, err := c.connection()
	if err != nil {
		return nil, err
	}
	return conn.VendorSet(), nil
}

// Capabilities scans every known property through this Camera's connection
// and returns a point-in-time snapshot.
func (c *Camera) Capabilities() core.Result[*core.DeviceCapabilities] {
	conn, err := c.connection()
	if err != nil {
		return core.Err[*core.DeviceCapabilities](err)
	}
	return core.Ok(capability.Scan(c.device, conn))
}

// Close releases this Camera's connection and always returns nil; calling
// it again is a no-op. Once closed, every property call returns
// DeviceNotFound.
func (c *Camera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.conn != nil {
		log.Debugf("closing camera %s", c.device)
		defaultPool.Release(c.device)
		c.conn = nil
	}
	return nil
}
