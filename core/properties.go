package core

// CamProp names one physical camera control (DirectShow's IAMCameraControl
// domain): pan/tilt/zoom/focus/exposure and their relative counterparts.
type CamProp int

const (
	Pan CamProp = iota
	Tilt
	Roll
	Zoom
	Exposure
	Iris
	Focus
	ScanMode
	Privacy
	PanRelative
	TiltRelative
	RollRelative
	ZoomRelative
	ExposureRelative
	IrisRelative
	FocusRelative
	PanTilt
	PanTiltRelative
	FocusSimple
	DigitalZoom
	DigitalZoomRelative
	CamBacklightCompensation
	Lamp

	camPropCount
)

// VidProp names one image-processing control (DirectShow's IAMVideoProcAmp
// domain): brightness/contrast/white-balance and friends.
type VidProp int

const (
	Brightness VidProp = iota
	Contrast
	Hue
	Saturation
	Sharpness
	Gamma
	ColorEnable
	WhiteBalance
	VidBacklightCompensation
	Gain

	vidPropCount
)

var camPropNames = map[CamProp]string{
	Pan:                      "Pan",
	Tilt:                     "Tilt",
	Roll:                     "Roll",
	Zoom:                     "Zoom",
	Exposure:                 "Exposure",
	Iris:                     "Iris",
	Focus:                    "Focus",
	ScanMode:                 "ScanMode",
	Privacy:                  "Privacy",
	PanRelative:              "PanRelative",
	TiltRelative:             "TiltRelative",
	RollRelative:             "RollRelative",
	ZoomRelative:             "ZoomRelative",
	ExposureRelative:         "ExposureRelative",
	IrisRelative:             "IrisRelative",
	FocusRelative:            "FocusRelative",
	PanTilt:                  "PanTilt",
	PanTiltRelative:          "PanTiltRelative",
	FocusSimple:              "FocusSimple",
	DigitalZoom:              "DigitalZoom",
	DigitalZoomRelative:      "DigitalZoomRelative",
	CamBacklightCompensation: "BacklightCompensation",
	Lamp:                     "Lamp",
}

var camPropByName map[string]CamProp

var vidPropNames = map[VidProp]string{
	Brightness:               "Brightness",
	Contrast:                 "Contrast",
	Hue:                      "Hue",
	Saturation:               "Saturation",
	Sharpness:                "Sharpness",
	Gamma:                    "Gamma",
	ColorEnable:              "ColorEnable",
	WhiteBalance:             "WhiteBalance",
	VidBacklightCompensation: "BacklightCompensation",
	Gain:                     "Gain",
}

var vidPropByName map[string]VidProp

func init() {
	camPropByName = make(map[string]CamProp, len(camPropNames))
	for k, v := range camPropNames {
		camPropByName[v] = k
	}
	vidPropByName = make(map[string]VidProp, len(vidPropNames))
	for k, v := range vidPropNames {
		vidPropByName[v] = k
	}
}

func (p CamProp) String() string {
	if s, ok := camPropNames[p]; ok {
		return s
	}
	return "Unknown"
}

func (p VidProp) String() string {
	if s, ok := vidPropNames[p]; ok {
		return s
	}
	return "Unknown"
}

// ParseCamProp is the inverse of CamProp.String.
func ParseCamProp(s string) (CamProp, bool) {
	p, ok := camPropByName[s]
	return p, ok
}

// ParseVidProp is the inverse of VidProp.String.
func ParseVidProp(s string) (VidProp, bool) {
	p, ok := vidPropByName[s]
	return p, ok
}

// AllCamProps returns every CamProp in declaration order, for capability
// scanning and enumeration round-trip tests.
func AllCamProps() []CamProp {
	out := make([]CamProp, 0, int(camPropCount))
	for p := CamProp(0); p < camPropCount; p++ {
		out = append(out, p)
	}
	return out
}

// AllVidProps returns every VidProp in declaration order.
func AllVidProps() []VidProp {
	out := make([]VidProp, 0, int(vidPropCount))
	for p := VidProp(0); p < vidPropCount; p++ {
		out = append(out, p)
	}
	return out
}
