//go:build windows

package windows

import (
	"strings"

	"github.com/allanhanan/duvc-ctl/core"
)

// Bridge is the Windows implementation of the device-enumeration and
// connection-opening contract, backed by DirectShow's system device
// enumerator and filter graph moniker binding.
type Bridge struct{}

// ListDevices enumerates currently-present video-input devices. Order
// follows the host enumerator; an empty sequence is success, not an error.
func (Bridge) ListDevices() core.Result[[]core.Device] {
	devices, err := enumerateDevices()
	if err != nil {
		return core.Errf[[]core.Device](core.SystemError, err.Error())
	}
	out := make([]core.Device, 0, len(devices))
	for _, d := range devices {
		out = append(out, core.NewDevice(d.name, d.path))
		d.mon.release()
	}
	return core.Ok(out)
}

// IsDeviceConnected scans the live enumeration for dev, matching by path
// when available, else by case-insensitive name. This is appearance in the
// enumeration only; a device that is present but held exclusively by
// another process still answers true here, with DeviceBusy surfacing
// instead from an actual connection attempt.
func (Bridge) IsDeviceConnected(dev core.Device) core.Result[bool] {
	devices, err := enumerateDevices()
	if err != nil {
		return core.Errf[bool](core.SystemError, err.Error())
	}
	defer func() {
		for _, d := range devices {
			d.mon.release()
		}
	}()

	for _, d := range devices {
		if deviceMatches(dev, d.name, d.path) {
			return core.Ok(true)
		}
	}
	return core.Ok(false)
}

// FindDeviceByPath returns the full device record for path, or
// DeviceNotFound.
func (Bridge) FindDeviceByPath(path string) core.Result[core.Device] {
	devices, err := enumerateDevices()
	if err != nil {
		return core.Errf[core.Device](core.SystemError, err.Error())
	}
	defer func() {
		for _, d := range devices {
			d.mon.release()
		}
	}()

	for _, d := range devices {
		if strings.EqualFold(d.path, path) {
			return core.Ok(core.NewDevice(d.name, d.path))
		}
	}
	return core.Errf[core.Device](core.DeviceNotFound, "no device with path "+path)
}

// CreateConnection opens dev and returns a ready-to-use DeviceConnection.
func (Bridge) CreateConnection(dev core.Device) (*DeviceConnection, *core.Error) {
	if !dev.IsValid() {
		return nil, core.NewError(core.InvalidArgument, "device has neither name nor path")
	}
	conn, err := NewDeviceConnection(dev)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
