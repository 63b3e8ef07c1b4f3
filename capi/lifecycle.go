package capi

import (
	"sync"

	"github.com/allanhanan/duvc-ctl/camera"
	"github.com/allanhanan/duvc-ctl/core"
	"github.com/allanhanan/duvc-ctl/internal/hotplug"
)

var (
	lifecycleMu sync.Mutex
	initialized bool

	devices      = newHandleRegistry[core.Device]()
	connections  = newHandleRegistry[*camera.Camera]()
	capabilities = newHandleRegistry[*core.DeviceCapabilities]()
	monitor      *hotplug.Monitor
)

// Initialize brings up the subsystems the C surface depends on: the
// hot-plug monitor's background dispatcher. Calling it twice is a no-op.
func Initialize() ResultCode {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()
	if initialized {
		return Success
	}

	monitor = hotplug.New()
	if err := monitor.Start(); err != nil {
		monitor = nil
		return ErrorSystemError
	}
	initialized = true
	return Success
}

// Shutdown tears everything down in the fixed order: stop hot-plug, clear
// the connection and capability registries, drop the device registry,
// drop the log callback. Calling it before Initialize, or twice, is a
// no-op.
func Shutdown() ResultCode {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()
	if !initialized {
		return Success
	}

	if monitor != nil {
		monitor.Stop()
		monitor = nil
	}

	closeAllConnections()
	capabilities = newHandleRegistry[*core.DeviceCapabilities]()
	devices = newHandleRegistry[core.Device]()
	ResetLogCallback()

	initialized = false
	return Success
}

func closeAllConnections() {
	old := connections
	connections = newHandleRegistry[*camera.Camera]()
	old.mu.Lock()
	conns := make([]*camera.Camera, 0, len(old.objects))
	for _, c := range old.objects {
		conns = append(conns, c)
	}
	old.mu.Unlock()
	for _, c := range conns {
		c.Close()
	}
}

// IsInitialized reports whether Initialize has run without a matching
// Shutdown.
func IsInitialized() bool {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()
	return initialized
}
