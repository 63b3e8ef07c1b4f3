package logging

import "github.com/allanhanan/duvc-ctl/core"

var resolutionHints = map[core.ErrorCode][]string{
	core.DeviceNotFound: {
		"Check that the camera is physically connected",
		"Verify the camera appears in Device Manager",
		"Try reconnecting the USB cable",
		"Restart the camera or computer",
	},
	core.DeviceBusy: {
		"Close other applications using the camera",
		"Check for background processes holding the device",
		"Wait a moment and try again",
	},
	core.PermissionDenied: {
		"Run the application as Administrator",
		"Check Windows camera privacy settings",
		"Verify antivirus isn't blocking camera access",
	},
	core.PropertyNotSupported: {
		"Check device capabilities before setting this property",
		"Verify the property is supported by this camera model",
		"Try an alternative property with similar functionality",
	},
	core.InvalidValue: {
		"Check the valid range for this property with GetRange",
		"Ensure the value is within min/max bounds",
		"Check step-size alignment",
	},
	core.ConnectionFailed: {
		"Check the USB connection and cable quality",
		"Try a different USB port",
		"Update camera drivers",
	},
	core.SystemError: {
		"Check system logs for detailed error information",
		"Verify DirectShow components are installed correctly",
		"Try reinstalling camera drivers",
	},
}

var defaultHints = []string{
	"Check the detailed error message",
	"Enable debug logging for more information",
	"Check error statistics for a pattern across operations",
}

// SuggestResolution returns a short list of remediation steps for code,
// falling back to generic advice for codes with no specific entry.
func SuggestResolution(code core.ErrorCode) []string {
	if hints, ok := resolutionHints[code]; ok {
		return hints
	}
	return defaultHints
}

// ShouldRetry reports whether retrying the operation that produced code is
// plausibly worth doing. Distinct from core.ErrorCode.IsTemporary: this is
// advice for an automatic retry loop, IsTemporary classifies the failure.
func ShouldRetry(code core.ErrorCode) bool {
	switch code {
	case core.DeviceBusy, core.Timeout, core.ConnectionFailed:
		return true
	default:
		return false
	}
}
