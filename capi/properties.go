package capi

import (
	"github.com/allanhanan/duvc-ctl/camera"
	"github.com/allanhanan/duvc-ctl/core"
)

// GetCamProperty reads prop through an already-open connection handle.
func GetCamProperty(connHandle uintptr, prop int32) (PropSetting, ResultCode) {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return PropSetting{}, code
	}
	result := cam.Get(core.CamProp(prop))
	RecordLastError(result.Error())
	if result.IsError() {
		return PropSetting{}, FromError(result.Error())
	}
	return ToPropSetting(result.Value()), Success
}

// SetCamProperty writes val to prop through an already-open connection.
func SetCamProperty(connHandle uintptr, prop int32, val PropSetting) ResultCode {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return code
	}
	result := cam.Set(core.CamProp(prop), FromPropSetting(val))
	RecordLastError(result.Error())
	return FromError(result.Error())
}

// GetCamPropertyRange reads prop's admissible range.
func GetCamPropertyRange(connHandle uintptr, prop int32) (PropRange, ResultCode) {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return PropRange{}, code
	}
	result := cam.GetRange(core.CamProp(prop))
	RecordLastError(result.Error())
	if result.IsError() {
		return PropRange{}, FromError(result.Error())
	}
	return ToPropRange(result.Value()), Success
}

// GetVidProperty reads prop through an already-open connection handle.
func GetVidProperty(connHandle uintptr, prop int32) (PropSetting, ResultCode) {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return PropSetting{}, code
	}
	result := cam.GetVid(core.VidProp(prop))
	RecordLastError(result.Error())
	if result.IsError() {
		return PropSetting{}, FromError(result.Error())
	}
	return ToPropSetting(result.Value()), Success
}

// SetVidProperty writes val to prop through an already-open connection.
func SetVidProperty(connHandle uintptr, prop int32, val PropSetting) ResultCode {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return code
	}
	result := cam.SetVid(core.VidProp(prop), FromPropSetting(val))
	RecordLastError(result.Error())
	return FromError(result.Error())
}

// GetVidPropertyRange reads prop's admissible range.
func GetVidPropertyRange(connHandle uintptr, prop int32) (PropRange, ResultCode) {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return PropRange{}, code
	}
	result := cam.GetRangeVid(core.VidProp(prop))
	RecordLastError(result.Error())
	if result.IsError() {
		return PropRange{}, FromError(result.Error())
	}
	return ToPropRange(result.Value()), Success
}

// QuickGetCamProperty opens a transient connection to deviceHandle's
// device, reads prop, and closes it — the "per-device, no handle
// management" convenience variant for one-off callers.
func QuickGetCamProperty(deviceHandle uintptr, prop int32) (PropSetting, ResultCode) {
	dev, ok := devices.Get(deviceHandle)
	if !ok {
		return PropSetting{}, ErrorInvalidArgument
	}
	cam, err := camera.Open(dev)
	if err != nil {
		RecordLastError(err)
		return PropSetting{}, FromError(err)
	}
	defer cam.Close()

	result := cam.Get(core.CamProp(prop))
	RecordLastError(result.Error())
	if result.IsError() {
		return PropSetting{}, FromError(result.Error())
	}
	return ToPropSetting(result.Value()), Success
}

// QuickSetCamProperty is QuickGetCamProperty's write counterpart.
func QuickSetCamProperty(deviceHandle uintptr, prop int32, val PropSetting) ResultCode {
	dev, ok := devices.Get(deviceHandle)
	if !ok {
		return ErrorInvalidArgument
	}
	cam, err := camera.Open(dev)
	if err != nil {
		RecordLastError(err)
		return FromError(err)
	}
	defer cam.Close()

	result := cam.Set(core.CamProp(prop), FromPropSetting(val))
	RecordLastError(result.Error())
	return FromError(result.Error())
}

// BatchGetCamProperties reads every prop in props through connHandle in
// order, stopping at the first failure; results holds every value read
// before the failure, if any.
func BatchGetCamProperties(connHandle uintptr, props []int32) ([]PropSetting, ResultCode) {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return nil, code
	}

	out := make([]PropSetting, 0, len(props))
	for _, prop := range props {
		result := cam.Get(core.CamProp(prop))
		RecordLastError(result.Error())
		if result.IsError() {
			return out, FromError(result.Error())
		}
		out = append(out, ToPropSetting(result.Value()))
	}
	return out, Success
}

// BatchSetCamProperties writes every (prop, value) pair through connHandle
// in order, stopping at the first failure.
func BatchSetCamProperties(connHandle uintptr, props []int32, vals []PropSetting) ResultCode {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return code
	}
	if len(props) != len(vals) {
		return ErrorInvalidArgument
	}

	for i, prop := range props {
		result := cam.Set(core.CamProp(prop), FromPropSetting(vals[i]))
		RecordLastError(result.Error())
		if result.IsError() {
			return FromError(result.Error())
		}
	}
	return Success
}

// ScanCapabilities scans connHandle's device and registers the resulting
// snapshot under a new capabilities handle.
func ScanCapabilities(connHandle uintptr) (uintptr, ResultCode) {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return 0, code
	}
	result := cam.Capabilities()
	if result.IsError() {
		RecordLastError(result.Error())
		return 0, FromError(result.Error())
	}
	return capabilities.Put(result.Value()), Success
}

// CapabilitiesSupportsCam reports whether a capabilities snapshot marks
// prop as supported.
func CapabilitiesSupportsCam(capsHandle uintptr, prop int32) (bool, ResultCode) {
	caps, code := lookupCapabilities(capsHandle)
	if code != Success {
		return false, code
	}
	return caps.CamSupported(core.CamProp(prop)), Success
}

// CapabilitiesSupportsVid reports whether a capabilities snapshot marks
// prop as supported.
func CapabilitiesSupportsVid(capsHandle uintptr, prop int32) (bool, ResultCode) {
	caps, code := lookupCapabilities(capsHandle)
	if code != Success {
		return false, code
	}
	return caps.VidSupported(core.VidProp(prop)), Success
}

// RefreshCapabilities rescans a capabilities snapshot in place through a
// short-lived Camera on its device, which takes its connection from the
// pool and releases it when done.
func RefreshCapabilities(capsHandle uintptr) ResultCode {
	caps, code := lookupCapabilities(capsHandle)
	if code != Success {
		return code
	}
	cam, err := camera.Open(caps.Device)
	if err != nil {
		RecordLastError(err)
		return FromError(err)
	}
	defer cam.Close()

	connResult := cam.Capabilities()
	if connResult.IsError() {
		RecordLastError(connResult.Error())
		return FromError(connResult.Error())
	}
	fresh := connResult.Value()
	caps.Accessible = fresh.Accessible
	caps.CamProps = fresh.CamProps
	caps.VidProps = fresh.VidProps
	return Success
}

// FreeCapabilities releases a capabilities handle.
func FreeCapabilities(handle uintptr) {
	capabilities.Release(handle)
}
