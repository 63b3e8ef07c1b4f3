// Command libduvc builds the c-shared library other languages link
// against: every exported function is a thin cgo-typed wrapper around
// capi, which holds the actual ABI-stable types and logic so this file
// stays limited to type conversion at the boundary.
package main

/*
#include <stdlib.h>
#include <string.h>

typedef void (*duvc_device_change_cb)(int added, const char* path, void* user_data);
typedef void (*duvc_log_cb)(int level, const char* component, const char* message, void* user_data);

static void duvc_call_device_change_cb(duvc_device_change_cb cb, int added, const char* path, void* user_data) {
	cb(added, path, user_data);
}

static void duvc_call_log_cb(duvc_log_cb cb, int level, const char* component, const char* message, void* user_data) {
	cb(level, component, message, user_data);
}
*/
import "C"

import (
	"unsafe"

	"github.com/allanhanan/duvc-ctl/capi"
)

func main() {}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func cBuf(buf *C.char, size C.int) []byte {
	if buf == nil || size <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(size))
}

//export duvc_initialize
func duvc_initialize() C.int {
	return C.int(capi.Initialize())
}

//export duvc_shutdown
func duvc_shutdown() C.int {
	return C.int(capi.Shutdown())
}

//export duvc_is_initialized
func duvc_is_initialized() C.int {
	if capi.IsInitialized() {
		return 1
	}
	return 0
}

//export duvc_get_version
func duvc_get_version() C.uint32_t {
	return C.uint32_t(capi.Version())
}

//export duvc_get_version_string
func duvc_get_version_string() *C.char {
	return C.CString(capi.VersionText())
}

//export duvc_check_abi_compatibility
func duvc_check_abi_compatibility(compiledVersion C.uint32_t) C.int {
	if capi.CheckABICompatibility(uint32(compiledVersion)) {
		return 1
	}
	return 0
}

//export duvc_list_devices
func duvc_list_devices(outHandles **C.uintptr_t, outCount *C.int) C.int {
	handles, code := capi.ListDevices()
	if code != capi.Success {
		*outCount = 0
		return C.int(code)
	}

	*outCount = C.int(len(handles))
	if len(handles) == 0 {
		*outHandles = nil
		return C.int(capi.Success)
	}

	arr := C.malloc(C.size_t(len(handles)) * C.size_t(unsafe.Sizeof(C.uintptr_t(0))))
	dst := unsafe.Slice((*C.uintptr_t)(arr), len(handles))
	for i, h := range handles {
		dst[i] = C.uintptr_t(h)
	}
	*outHandles = (*C.uintptr_t)(arr)
	return C.int(capi.Success)
}

//export duvc_free_device_list
func duvc_free_device_list(handles *C.uintptr_t, count C.int) {
	if handles == nil || count <= 0 {
		return
	}
	src := unsafe.Slice(handles, int(count))
	list := make([]uintptr, count)
	for i, h := range src {
		list[i] = uintptr(h)
	}
	capi.FreeDeviceList(list)
	C.free(unsafe.Pointer(handles))
}

//export duvc_device_get_name
func duvc_device_get_name(handle C.uintptr_t, buf *C.char, bufSize C.int, requiredSize *C.int) C.int {
	n, required, code := capi.DeviceName(uintptr(handle), cBuf(buf, bufSize))
	*requiredSize = C.int(required)
	_ = n
	return C.int(code)
}

//export duvc_device_get_path
func duvc_device_get_path(handle C.uintptr_t, buf *C.char, bufSize C.int, requiredSize *C.int) C.int {
	_, required, code := capi.DevicePath(uintptr(handle), cBuf(buf, bufSize))
	*requiredSize = C.int(required)
	return C.int(code)
}

//export duvc_is_device_connected
func duvc_is_device_connected(handle C.uintptr_t, outConnected *C.int) C.int {
	connected, code := capi.IsDeviceConnected(uintptr(handle))
	if connected {
		*outConnected = 1
	} else {
		*outConnected = 0
	}
	return C.int(code)
}

//export duvc_open_connection
func duvc_open_connection(deviceHandle C.uintptr_t, outConn *C.uintptr_t) C.int {
	handle, code := capi.OpenConnection(uintptr(deviceHandle))
	*outConn = C.uintptr_t(handle)
	return C.int(code)
}

//export duvc_close_connection
func duvc_close_connection(connHandle C.uintptr_t) C.int {
	return C.int(capi.CloseConnection(uintptr(connHandle)))
}

//export duvc_get_cam_property
func duvc_get_cam_property(connHandle C.uintptr_t, prop C.int32_t, outValue *C.int32_t, outMode *C.int32_t) C.int {
	setting, code := capi.GetCamProperty(uintptr(connHandle), int32(prop))
	*outValue = C.int32_t(setting.Value)
	*outMode = C.int32_t(setting.Mode)
	return C.int(code)
}

//export duvc_set_cam_property
func duvc_set_cam_property(connHandle C.uintptr_t, prop C.int32_t, value C.int32_t, mode C.int32_t) C.int {
	code := capi.SetCamProperty(uintptr(connHandle), int32(prop), capi.PropSetting{Value: int32(value), Mode: int32(mode)})
	return C.int(code)
}

//export duvc_get_cam_property_range
func duvc_get_cam_property_range(connHandle C.uintptr_t, prop C.int32_t, outMin, outMax, outStep, outDefault, outDefaultMode *C.int32_t) C.int {
	r, code := capi.GetCamPropertyRange(uintptr(connHandle), int32(prop))
	*outMin = C.int32_t(r.Min)
	*outMax = C.int32_t(r.Max)
	*outStep = C.int32_t(r.Step)
	*outDefault = C.int32_t(r.DefaultVal)
	*outDefaultMode = C.int32_t(r.DefaultMode)
	return C.int(code)
}

//export duvc_get_vid_property
func duvc_get_vid_property(connHandle C.uintptr_t, prop C.int32_t, outValue *C.int32_t, outMode *C.int32_t) C.int {
	setting, code := capi.GetVidProperty(uintptr(connHandle), int32(prop))
	*outValue = C.int32_t(setting.Value)
	*outMode = C.int32_t(setting.Mode)
	return C.int(code)
}

//export duvc_set_vid_property
func duvc_set_vid_property(connHandle C.uintptr_t, prop C.int32_t, value C.int32_t, mode C.int32_t) C.int {
	return C.int(capi.SetVidProperty(uintptr(connHandle), int32(prop), capi.PropSetting{Value: int32(value), Mode: int32(mode)}))
}

//export duvc_get_vid_property_range
func duvc_get_vid_property_range(connHandle C.uintptr_t, prop C.int32_t, outMin, outMax, outStep, outDefault, outDefaultMode *C.int32_t) C.int {
	r, code := capi.GetVidPropertyRange(uintptr(connHandle), int32(prop))
	*outMin = C.int32_t(r.Min)
	*outMax = C.int32_t(r.Max)
	*outStep = C.int32_t(r.Step)
	*outDefault = C.int32_t(r.DefaultVal)
	*outDefaultMode = C.int32_t(r.DefaultMode)
	return C.int(code)
}

//export duvc_quick_get_cam_property
func duvc_quick_get_cam_property(deviceHandle C.uintptr_t, prop C.int32_t, outValue *C.int32_t, outMode *C.int32_t) C.int {
	setting, code := capi.QuickGetCamProperty(uintptr(deviceHandle), int32(prop))
	*outValue = C.int32_t(setting.Value)
	*outMode = C.int32_t(setting.Mode)
	return C.int(code)
}

//export duvc_quick_set_cam_property
func duvc_quick_set_cam_property(deviceHandle C.uintptr_t, prop C.int32_t, value C.int32_t, mode C.int32_t) C.int {
	return C.int(capi.QuickSetCamProperty(uintptr(deviceHandle), int32(prop), capi.PropSetting{Value: int32(value), Mode: int32(mode)}))
}

//export duvc_get_vendor_property
func duvc_get_vendor_property(connHandle C.uintptr_t, guidText *C.char, propID C.uint32_t, buf *C.char, bufSize C.int, requiredSize *C.int) C.int {
	_, required, code := capi.GetVendorProperty(uintptr(connHandle), goString(guidText), uint32(propID), cBuf(buf, bufSize))
	*requiredSize = C.int(required)
	return C.int(code)
}

//export duvc_set_vendor_property
func duvc_set_vendor_property(connHandle C.uintptr_t, guidText *C.char, propID C.uint32_t, data *C.char, dataSize C.int) C.int {
	return C.int(capi.SetVendorProperty(uintptr(connHandle), goString(guidText), uint32(propID), cBuf(data, dataSize)))
}

//export duvc_query_vendor_property_support
func duvc_query_vendor_property_support(connHandle C.uintptr_t, guidText *C.char, propID C.uint32_t, outFlags *C.uint32_t) C.int {
	flags, code := capi.QueryVendorPropertySupport(uintptr(connHandle), goString(guidText), uint32(propID))
	*outFlags = C.uint32_t(flags)
	return C.int(code)
}

//export duvc_scan_capabilities
func duvc_scan_capabilities(connHandle C.uintptr_t, outCaps *C.uintptr_t) C.int {
	handle, code := capi.ScanCapabilities(uintptr(connHandle))
	*outCaps = C.uintptr_t(handle)
	return C.int(code)
}

//export duvc_capabilities_supports_cam
func duvc_capabilities_supports_cam(capsHandle C.uintptr_t, prop C.int32_t, outSupported *C.int) C.int {
	supported, code := capi.CapabilitiesSupportsCam(uintptr(capsHandle), int32(prop))
	if supported {
		*outSupported = 1
	} else {
		*outSupported = 0
	}
	return C.int(code)
}

//export duvc_capabilities_supports_vid
func duvc_capabilities_supports_vid(capsHandle C.uintptr_t, prop C.int32_t, outSupported *C.int) C.int {
	supported, code := capi.CapabilitiesSupportsVid(uintptr(capsHandle), int32(prop))
	if supported {
		*outSupported = 1
	} else {
		*outSupported = 0
	}
	return C.int(code)
}

//export duvc_refresh_capabilities
func duvc_refresh_capabilities(capsHandle C.uintptr_t) C.int {
	return C.int(capi.RefreshCapabilities(uintptr(capsHandle)))
}

//export duvc_free_capabilities
func duvc_free_capabilities(capsHandle C.uintptr_t) {
	capi.FreeCapabilities(uintptr(capsHandle))
}

var (
	deviceChangeCallback C.duvc_device_change_cb
	deviceChangeUserData unsafe.Pointer
)

//export duvc_register_device_change_callback
func duvc_register_device_change_callback(cb C.duvc_device_change_cb, userData unsafe.Pointer) C.int {
	deviceChangeCallback = cb
	deviceChangeUserData = userData
	code := capi.RegisterDeviceChangeCallback(func(added bool, path string) {
		if deviceChangeCallback == nil {
			return
		}
		cPath := C.CString(path)
		defer C.free(unsafe.Pointer(cPath))
		addedInt := C.int(0)
		if added {
			addedInt = 1
		}
		C.duvc_call_device_change_cb(deviceChangeCallback, addedInt, cPath, deviceChangeUserData)
	})
	return C.int(code)
}

//export duvc_unregister_device_change_callback
func duvc_unregister_device_change_callback() C.int {
	deviceChangeCallback = nil
	deviceChangeUserData = nil
	return C.int(capi.UnregisterDeviceChangeCallback())
}

var (
	logCallback  C.duvc_log_cb
	logUserData  unsafe.Pointer
)

//export duvc_set_log_callback
func duvc_set_log_callback(cb C.duvc_log_cb, level C.int, userData unsafe.Pointer) {
	logCallback = cb
	logUserData = userData
	if cb == nil {
		capi.SetLogCallback(nil, capi.LogLevel(level))
		return
	}
	capi.SetLogCallback(func(lvl capi.LogLevel, component, message string) {
		if logCallback == nil {
			return
		}
		cComponent := C.CString(component)
		cMessage := C.CString(message)
		defer C.free(unsafe.Pointer(cComponent))
		defer C.free(unsafe.Pointer(cMessage))
		C.duvc_call_log_cb(logCallback, C.int(lvl), cComponent, cMessage, logUserData)
	}, capi.LogLevel(level))
}

//export duvc_set_log_level
func duvc_set_log_level(level C.int) {
	capi.SetLogLevel(capi.LogLevel(level))
}

//export duvc_log_message
func duvc_log_message(level C.int, component, message *C.char) {
	capi.LogMessage(capi.LogLevel(level), goString(component), goString(message))
}

//export duvc_log_debug
func duvc_log_debug(component, message *C.char) {
	capi.LogMessage(capi.LogDebug, goString(component), goString(message))
}

//export duvc_log_info
func duvc_log_info(component, message *C.char) {
	capi.LogMessage(capi.LogInfo, goString(component), goString(message))
}

//export duvc_log_warning
func duvc_log_warning(component, message *C.char) {
	capi.LogMessage(capi.LogWarning, goString(component), goString(message))
}

//export duvc_log_error
func duvc_log_error(component, message *C.char) {
	capi.LogMessage(capi.LogError, goString(component), goString(message))
}

//export duvc_log_critical
func duvc_log_critical(component, message *C.char) {
	capi.LogMessage(capi.LogCritical, goString(component), goString(message))
}

//export duvc_get_last_error_details
func duvc_get_last_error_details(buf *C.char, bufSize C.int, requiredSize *C.int) C.int {
	_, required, code := capi.GetLastErrorDetails(cBuf(buf, bufSize))
	*requiredSize = C.int(required)
	return C.int(code)
}

//export duvc_clear_last_error
func duvc_clear_last_error() {
	capi.ClearLastError()
}

//export duvc_get_error_statistics
func duvc_get_error_statistics(buf *C.char, bufSize C.int, requiredSize *C.int) C.int {
	_, required, code := capi.GetErrorStatistics(cBuf(buf, bufSize))
	*requiredSize = C.int(required)
	return C.int(code)
}

//export duvc_reset_error_statistics
func duvc_reset_error_statistics() {
	capi.ResetErrorStatistics()
}

//export duvc_suggest_error_resolution
func duvc_suggest_error_resolution(code C.int, buf *C.char, bufSize C.int, requiredSize *C.int) C.int {
	_, required, resultCode := capi.SuggestErrorResolution(capi.ResultCode(code), cBuf(buf, bufSize))
	*requiredSize = C.int(required)
	return C.int(resultCode)
}

//export duvc_is_device_error
func duvc_is_device_error(code C.int) C.int {
	if capi.IsDeviceError(capi.ResultCode(code)) {
		return 1
	}
	return 0
}

//export duvc_is_permission_error
func duvc_is_permission_error(code C.int) C.int {
	if capi.IsPermissionError(capi.ResultCode(code)) {
		return 1
	}
	return 0
}

//export duvc_is_temporary_error
func duvc_is_temporary_error(code C.int) C.int {
	if capi.IsTemporaryError(capi.ResultCode(code)) {
		return 1
	}
	return 0
}

//export duvc_should_retry_operation
func duvc_should_retry_operation(code C.int) C.int {
	if capi.ShouldRetryOperation(capi.ResultCode(code)) {
		return 1
	}
	return 0
}

//export duvc_get_diagnostic_info
func duvc_get_diagnostic_info() *C.char {
	return C.CString(capi.DiagnosticInfo())
}
