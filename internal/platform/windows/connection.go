//go:build windows

package windows

import (
	"sync"

	"github.com/allanhanan/duvc-ctl/core"
)

type connState int

const (
	stateUninitialized connState = iota
	stateOpen
	stateInvalid
)

// DeviceConnection is the Windows implementation of the per-device
// connection contract. It owns a dedicated COM thread, the bound
// IBaseFilter, and whichever of IAMCameraControl/IAMVideoProcAmp the
// filter exposes. All three are released in reverse construction order on
// Close, and the object follows an Uninitialized -> Open -> {Open,
// Invalid} state machine: once invalidated it stays invalid.
type DeviceConnection struct {
	dev core.Device

	thread *comThread

	mu      sync.Mutex
	state   connState
	filter  *comObject
	camCtrl *amCameraControl
	vidProc *amVideoProcAmp
	ksprop  *KsPropertySet
}

// NewDeviceConnection opens dev: binds its filter and queries both control
// interfaces. A device that exposes neither control interface still opens
// successfully — individual property calls then fail PropertyNotSupported
// rather than the whole connection failing ConnectionFailed, since a
// vendor property set might still be usable through it.
func NewDeviceConnection(dev core.Device) (*DeviceConnection, *core.Error) {
	c := &DeviceConnection{dev: dev, thread: newComThread()}

	var openErr *core.Error
	c.thread.run(func() {
		devices, err := enumerateDevices()
		if err != nil {
			openErr = core.NewError(core.SystemError, err.Error())
			return
		}

		var match *enumeratedDevice
		for i := range devices {
			if deviceMatches(dev, devices[i].name, devices[i].path) {
				match = &devices[i]
				continue
			}
			devices[i].mon.release()
		}

		if match == nil {
			openErr = core.NewError(core.DeviceNotFound, "device not present: "+dev.String())
			return
		}

		filterPtr, err := bindFilter(match.mon)
		match.mon.release()
		if err != nil {
			if he, ok := err.(*hresultError); ok && (hrIsAccessDenied(he.hr) || hrIsBusy(he.hr)) {
				openErr = core.NewError(core.DeviceBusy, err.Error())
			} else {
				openErr = core.NewError(core.SystemError, err.Error())
			}
			return
		}

		c.filter = filterPtr

		if ptr, err := c.filter.queryInterface(&iidIAMCameraControl); err == nil {
			c.camCtrl = (*amCameraControl)(ptr)
		}
		if ptr, err := c.filter.queryInterface(&iidIAMVideoProcAmp); err == nil {
			c.vidProc = (*amVideoProcAmp)(ptr)
		}
	})

	if openErr != nil {
		c.thread.stop()
		return nil, openErr
	}

	c.state = stateOpen
	return c, nil
}

func deviceMatches(want core.Device, name, path string) bool {
	candidate := core.NewDevice(name, path)
	return want.Equal(candidate)
}

func (c *DeviceConnection) invalidate() {
	c.mu.Lock()
	c.state = stateInvalid
	c.mu.Unlock()
}

// IsValid reports whether the connection is in the Open state.
func (c *DeviceConnection) IsValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == stateOpen
}

// classifyComErr maps a raw COM failure to the core error taxonomy: a
// well-known "not supported" indication becomes PropertyNotSupported, a
// permission denial becomes PermissionDenied, device-not-found-style
// HRESULTs invalidate the connection, and everything else is SystemError.
func (c *DeviceConnection) classifyComErr(err error) *core.Error {
	he, ok := err.(*hresultError)
	if !ok {
		return core.NewError(core.SystemError, err.Error())
	}
	switch {
	case hrIsAccessDenied(he.hr):
		return core.NewError(core.PermissionDenied, err.Error())
	case he.hr == 0x80070057: // E_INVALIDARG: host rejects the selector outright
		return core.NewError(core.PropertyNotSupported, err.Error())
	case hrIsNotFound(he.hr):
		c.invalidate()
		return core.NewError(core.DeviceNotFound, err.Error())
	default:
		return core.NewError(core.SystemError, err.Error())
	}
}

// Get implements platform.Connection.
func (c *DeviceConnection) Get(prop core.CamProp) core.Result[core.PropSetting] {
	if !c.IsValid() {
		return core.Errf[core.PropSetting](core.DeviceNotFound, "connection is invalid")
	}
	selector, ok := camSelector(prop)
	if !ok {
		return core.Errf[core.PropSetting](core.PropertyNotSupported, "unknown CamProp")
	}

	var result core.Result[core.PropSetting]
	c.thread.run(func() {
		if c.camCtrl == nil {
			result = core.Errf[core.PropSetting](core.PropertyNotSupported, "IAMCameraControl unavailable")
			return
		}
		value, flags, err := c.camCtrl.get(selector)
		if err != nil {
			result = core.Err[core.PropSetting](c.classifyComErr(err))
			return
		}
		result = core.Ok(core.PropSetting{Value: narrow32(value), Mode: flagToMode(flags)})
	})
	return result
}

// Set implements platform.Connection.
func (c *DeviceConnection) Set(prop core.CamProp, val core.PropSetting) core.ResultVoid {
	if !c.IsValid() {
		return core.ErrVoid(core.NewError(core.DeviceNotFound, "connection is invalid"))
	}
	selector, ok := camSelector(prop)
	if !ok {
		return core.ErrVoid(core.NewError(core.PropertyNotSupported, "unknown CamProp"))
	}

	var result core.ResultVoid
	c.thread.run(func() {
		if c.camCtrl == nil {
			result = core.ErrVoid(core.NewError(core.PropertyNotSupported, "IAMCameraControl unavailable"))
			return
		}
		if err := c.camCtrl.set(selector, val.Value, modeToFlag(val.Mode)); err != nil {
			result = core.ErrVoid(c.classifyComErr(err))
			return
		}
		result = core.OkVoid()
	})
	return result
}

// GetRange implements platform.Connection.
func (c *DeviceConnection) GetRange(prop core.CamProp) core.Result[core.PropRange] {
	if !c.IsValid() {
		return core.Errf[core.PropRange](core.DeviceNotFound, "connection is invalid")
	}
	selector, ok := camSelector(prop)
	if !ok {
		return core.Errf[core.PropRange](core.PropertyNotSupported, "unknown CamProp")
	}

	var result core.Result[core.PropRange]
	c.thread.run(func() {
		if c.camCtrl == nil {
			result = core.Errf[core.PropRange](core.PropertyNotSupported, "IAMCameraControl unavailable")
			return
		}
		min, max, step, def, flags, err := c.camCtrl.getRange(selector)
		if err != nil {
			result = core.Err[core.PropRange](c.classifyComErr(err))
			return
		}
		result = core.Ok(core.PropRange{
			Min: narrow32(min), Max: narrow32(max), Step: narrow32(step),
			DefaultVal: narrow32(def), DefaultMode: flagToMode(flags),
		})
	})
	return result
}

// GetVid implements platform.Connection.
func (c *DeviceConnection) GetVid(prop core.VidProp) core.Result[core.PropSetting] {
	if !c.IsValid() {
		return core.Errf[core.PropSetting](core.DeviceNotFound, "connection is invalid")
	}
	selector, ok := vidSelector(prop)
	if !ok {
		return core.Errf[core.PropSetting](core.PropertyNotSupported, "unknown VidProp")
	}

	var result core.Result[core.PropSetting]
	c.thread.run(func() {
		if c.vidProc == nil {
			result = core.Errf[core.PropSetting](core.PropertyNotSupported, "IAMVideoProcAmp unavailable")
			return
		}
		value, flags, err := c.vidProc.get(selector)
		if err != nil {
			result = core.Err[core.PropSetting](c.classifyComErr(err))
			return
		}
		result = core.Ok(core.PropSetting{Value: narrow32(value), Mode: flagToMode(flags)})
	})
	return result
}

// SetVid implements platform.Connection.
func (c *DeviceConnection) SetVid(prop core.VidProp, val core.PropSetting) core.ResultVoid {
	if !c.IsValid() {
		return core.ErrVoid(core.NewError(core.DeviceNotFound, "connection is invalid"))
	}
	selector, ok := vidSelector(prop)
	if !ok {
		return core.ErrVoid(core.NewError(core.PropertyNotSupported, "unknown VidProp"))
	}

	var result core.ResultVoid
	c.thread.run(func() {
		if c.vidProc == nil {
			result = core.ErrVoid(core.NewError(core.PropertyNotSupported, "IAMVideoProcAmp unavailable"))
			return
		}
		if err := c.vidProc.set(selector, val.Value, modeToFlag(val.Mode)); err != nil {
			result = core.ErrVoid(c.classifyComErr(err))
			return
		}
		result = core.OkVoid()
	})
	return result
}

// GetRangeVid implements platform.Connection.
func (c *DeviceConnection) GetRangeVid(prop core.VidProp) core.Result[core.PropRange] {
	if !c.IsValid() {
		return core.Errf[core.PropRange](core.DeviceNotFound, "connection is invalid")
	}
	selector, ok := vidSelector(prop)
	if !ok {
		return core.Errf[core.PropRange](core.PropertyNotSupported, "unknown VidProp")
	}

	var result core.Result[core.PropRange]
	c.thread.run(func() {
		if c.vidProc == nil {
			result = core.Errf[core.PropRange](core.PropertyNotSupported, "IAMVideoProcAmp unavailable")
			return
		}
		min, max, step, def, flags, err := c.vidProc.getRange(selector)
		if err != nil {
			result = core.Err[core.PropRange](c.classifyComErr(err))
			return
		}
		result = core.Ok(core.PropRange{
			Min: narrow32(min), Max: narrow32(max), Step: narrow32(step),
			DefaultVal: narrow32(def), DefaultMode: flagToMode(flags),
		})
	})
	return result
}

// VendorSet returns the lazily-created KsPropertySet for this connection's
// filter, sharing its COM thread. Always non-nil; when the filter has no
// IKsPropertySet support (or no filter was bound), the returned set's
// IsValid reports false and every call fails PropertyNotSupported.
func (c *DeviceConnection) VendorSet() *KsPropertySet {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ksprop == nil {
		c.ksprop = newKsPropertySet(c.filter, c.thread)
	}
	return c.ksprop
}

// Close releases the camera-control, video-proc-amp, vendor-property, and
// filter references in reverse construction order, then stops the
// dedicated COM thread. Idempotent.
func (c *DeviceConnection) Close() error {
	c.mu.Lock()
	if c.state == stateUninitialized {
		c.mu.Unlock()
		return nil
	}
	c.state = stateUninitialized
	ksprop := c.ksprop
	c.ksprop = nil
	c.mu.Unlock()

	c.thread.run(func() {
		if ksprop != nil {
			ksprop.closeLocked()
		}
		if c.vidProc != nil {
			c.vidProc.release()
			c.vidProc = nil
		}
		if c.camCtrl != nil {
			c.camCtrl.release()
			c.camCtrl = nil
		}
		if c.filter != nil {
			c.filter.release()
			c.filter = nil
		}
	})
	c.thread.stop()
	return nil
}

// narrow32 documents the read-side narrowing at each call site above: the
// host's wide signed integer narrows to int32. On this platform the host
// value is already a 32-bit `long`, so the narrowing is exact and this is
// a type-level no-op.
func narrow32(v int32) int32 {
	return v
}

