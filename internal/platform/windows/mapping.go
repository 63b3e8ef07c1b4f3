//go:build windows

package windows

import "github.com/allanhanan/duvc-ctl/core"

// DirectShow IAMCameraControl property selectors (strmif.h).
const (
	dshowCameraPan                   = 0
	dshowCameraTilt                  = 1
	dshowCameraRoll                  = 2
	dshowCameraZoom                  = 3
	dshowCameraExposure              = 4
	dshowCameraIris                  = 5
	dshowCameraFocus                 = 6
	dshowCameraScanMode              = 7
	dshowCameraPrivacy               = 8
	dshowCameraPanRelative           = 9
	dshowCameraTiltRelative          = 10
	dshowCameraRollRelative          = 11
	dshowCameraZoomRelative          = 12
	dshowCameraExposureRelative      = 13
	dshowCameraIrisRelative          = 14
	dshowCameraFocusRelative         = 15
	dshowCameraPanTilt               = 16
	dshowCameraPanTiltRelative       = 17
	dshowCameraFocusSimple           = 18
	dshowCameraDigitalZoom           = 19
	dshowCameraDigitalZoomRelative   = 20
	dshowCameraBacklightCompensation = 21
	dshowCameraLamp                  = 22
)

// DirectShow IAMVideoProcAmp property selectors (strmif.h).
const (
	dshowVidBrightness             = 0
	dshowVidContrast               = 1
	dshowVidHue                    = 2
	dshowVidSaturation             = 3
	dshowVidSharpness              = 4
	dshowVidGamma                  = 5
	dshowVidColorEnable            = 6
	dshowVidWhiteBalance           = 7
	dshowVidBacklightCompensation  = 8
	dshowVidGain                   = 9
)

// Shared flag values for both IAMCameraControl and IAMVideoProcAmp.
const (
	dshowFlagsAuto   = 0x1
	dshowFlagsManual = 0x2
)

// camPropSelectors and vidPropSelectors are the single source of truth for
// the CamProp/VidProp -> host selector mapping. Keeping one table here
// instead of scattered switch statements avoids the kind of mapping drift
// a second, independently-maintained table invites.
var camPropSelectors = map[core.CamProp]int32{
	core.Pan:                      dshowCameraPan,
	core.Tilt:                     dshowCameraTilt,
	core.Roll:                     dshowCameraRoll,
	core.Zoom:                     dshowCameraZoom,
	core.Exposure:                 dshowCameraExposure,
	core.Iris:                     dshowCameraIris,
	core.Focus:                    dshowCameraFocus,
	core.ScanMode:                 dshowCameraScanMode,
	core.Privacy:                  dshowCameraPrivacy,
	core.PanRelative:              dshowCameraPanRelative,
	core.TiltRelative:             dshowCameraTiltRelative,
	core.RollRelative:             dshowCameraRollRelative,
	core.ZoomRelative:             dshowCameraZoomRelative,
	core.ExposureRelative:         dshowCameraExposureRelative,
	core.IrisRelative:             dshowCameraIrisRelative,
	core.FocusRelative:            dshowCameraFocusRelative,
	core.PanTilt:                  dshowCameraPanTilt,
	core.PanTiltRelative:          dshowCameraPanTiltRelative,
	core.FocusSimple:              dshowCameraFocusSimple,
	core.DigitalZoom:              dshowCameraDigitalZoom,
	core.DigitalZoomRelative:      dshowCameraDigitalZoomRelative,
	core.CamBacklightCompensation: dshowCameraBacklightCompensation,
	core.Lamp:                     dshowCameraLamp,
}

var vidPropSelectors = map[core.VidProp]int32{
	core.Brightness:               dshowVidBrightness,
	core.Contrast:                 dshowVidContrast,
	core.Hue:                      dshowVidHue,
	core.Saturation:               dshowVidSaturation,
	core.Sharpness:                dshowVidSharpness,
	core.Gamma:                    dshowVidGamma,
	core.ColorEnable:               dshowVidColorEnable,
	core.WhiteBalance:             dshowVidWhiteBalance,
	core.VidBacklightCompensation: dshowVidBacklightCompensation,
	core.Gain:                     dshowVidGain,
}

// camSelector maps a CamProp to its DirectShow selector. ok is false for
// any value outside the closed enumeration; callers turn that into
// PropertyNotSupported.
func camSelector(p core.CamProp) (int32, bool) {
	sel, ok := camPropSelectors[p]
	return sel, ok
}

func vidSelector(p core.VidProp) (int32, bool) {
	sel, ok := vidPropSelectors[p]
	return sel, ok
}

// modeToFlag maps Auto -> 0x1, Manual -> 0x2, identical for both property
// domains.
func modeToFlag(m core.CamMode) int32 {
	if m == core.Auto {
		return dshowFlagsAuto
	}
	return dshowFlagsManual
}

// flagToMode is the read-side inverse: mode = (flags & 0x1) ? Auto : Manual.
func flagToMode(flags int32) core.CamMode {
	if flags&dshowFlagsAuto != 0 {
		return core.Auto
	}
	return core.Manual
}
