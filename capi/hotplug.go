package capi

import (
	"sync"

	"github.com/allanhanan/duvc-ctl/internal/hotplug"
)

// DeviceChangeCallback mirrors the C surface's cb(added, path, user_data)
// shape minus user_data, which cmd/libduvc closes over on the cgo side.
type DeviceChangeCallback func(added bool, path string)

var (
	hotplugMu       sync.Mutex
	hotplugCallback DeviceChangeCallback
	hotplugID       int
	hotplugActive   bool
)

// RegisterDeviceChangeCallback installs cb as the sole hot-plug observer.
// A second registration replaces the first rather than stacking, matching
// the C surface's single-callback contract. Initialize must have run
// first so the monitor exists.
func RegisterDeviceChangeCallback(cb DeviceChangeCallback) ResultCode {
	lifecycleMu.Lock()
	m := monitor
	lifecycleMu.Unlock()
	if m == nil {
		return ErrorNotImplemented
	}

	hotplugMu.Lock()
	defer hotplugMu.Unlock()
	if hotplugActive {
		m.Unregister(hotplugID)
	}
	hotplugCallback = cb
	hotplugID = m.Register(func(ev hotplug.Event) {
		hotplugMu.Lock()
		fn := hotplugCallback
		hotplugMu.Unlock()
		if fn != nil {
			fn(ev.Added, ev.Path)
		}
	})
	hotplugActive = true
	return Success
}

// UnregisterDeviceChangeCallback removes the installed hot-plug observer,
// if any.
func UnregisterDeviceChangeCallback() ResultCode {
	lifecycleMu.Lock()
	m := monitor
	lifecycleMu.Unlock()
	if m == nil {
		return ErrorNotImplemented
	}

	hotplugMu.Lock()
	defer hotplugMu.Unlock()
	if hotplugActive {
		m.Unregister(hotplugID)
		hotplugActive = false
		hotplugCallback = nil
	}
	return Success
}
