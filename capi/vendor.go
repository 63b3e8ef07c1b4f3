package capi

import "github.com/allanhanan/duvc-ctl/core"

// GetVendorProperty reads the vendor property (guidText, propID) through
// connHandle into buf using the buffer-sizing idiom. The legacy C ABI this
// library supersedes left the generic vendor path "not yet implemented"
// while wiring only the Logitech-specific one; here the generic path is
// always available, Logitech convenience wrappers included.
func GetVendorProperty(connHandle uintptr, guidText string, propID uint32, buf []byte) (int, int, ResultCode) {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return 0, 0, code
	}
	guid, err := core.ParseGUID(guidText)
	if err != nil {
		return 0, 0, FromError(err)
	}

	vendorSet, err := cam.VendorSet()
	if err != nil {
		return 0, 0, FromError(err)
	}

	result := vendorSet.GetProperty(guid, propID)
	if result.IsError() {
		return 0, 0, FromError(result.Error())
	}

	data := result.Value()
	requiredSize := len(data)
	if len(buf) < requiredSize {
		return 0, requiredSize, ErrorBufferTooSmall
	}
	copy(buf, data)
	return requiredSize, requiredSize, Success
}

// SetVendorProperty writes data to the vendor property (guidText, propID)
// through connHandle.
func SetVendorProperty(connHandle uintptr, guidText string, propID uint32, data []byte) ResultCode {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return code
	}
	guid, err := core.ParseGUID(guidText)
	if err != nil {
		return FromError(err)
	}

	vendorSet, err := cam.VendorSet()
	if err != nil {
		return FromError(err)
	}

	result := vendorSet.SetProperty(guid, propID, data)
	return FromError(result.Error())
}

// QueryVendorPropertySupport reports the CAN_GET/CAN_SET flags for the
// vendor property (guidText, propID) through connHandle.
func QueryVendorPropertySupport(connHandle uintptr, guidText string, propID uint32) (uint32, ResultCode) {
	cam, code := lookupConnection(connHandle)
	if code != Success {
		return 0, code
	}
	guid, err := core.ParseGUID(guidText)
	if err != nil {
		return 0, FromError(err)
	}

	vendorSet, err := cam.VendorSet()
	if err != nil {
		return 0, FromError(err)
	}

	result := vendorSet.QuerySupport(guid, propID)
	if result.IsError() {
		return 0, FromError(result.Error())
	}
	return result.Value(), Success
}
