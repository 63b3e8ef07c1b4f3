package core

// PropertyCapability is a per-property record produced by the capability
// scanner: whether the device supports the property, its admissible range,
// and its value at scan time. It only ever exists inside a
// DeviceCapabilities snapshot.
type PropertyCapability struct {
	Supported bool
	Range     PropRange
	Current   PropSetting
}

// DeviceCapabilities is a point-in-time snapshot of every known CamProp and
// VidProp for one Device. An entry is present in CamProps/VidProps iff the
// device returned a valid range for that property at scan time.
type DeviceCapabilities struct {
	Device     Device
	Accessible bool
	CamProps   map[CamProp]PropertyCapability
	VidProps   map[VidProp]PropertyCapability
}

// NewDeviceCapabilities returns an empty snapshot bound to dev.
func NewDeviceCapabilities(dev Device) *DeviceCapabilities {
	return &DeviceCapabilities{
		Device:   dev,
		CamProps: make(map[CamProp]PropertyCapability),
		VidProps: make(map[VidProp]PropertyCapability),
	}
}

// Clear replaces both property maps with empty ones and marks the snapshot
// inaccessible; Refresh uses it when the connection is no longer valid.
func (c *DeviceCapabilities) Clear() {
	c.Accessible = false
	c.CamProps = make(map[CamProp]PropertyCapability)
	c.VidProps = make(map[VidProp]PropertyCapability)
}

// CamSupported reports whether p is present and supported in this snapshot.
func (c *DeviceCapabilities) CamSupported(p CamProp) bool {
	pc, ok := c.CamProps[p]
	return ok && pc.Supported
}

// VidSupported reports whether p is present and supported in this snapshot.
func (c *DeviceCapabilities) VidSupported(p VidProp) bool {
	pc, ok := c.VidProps[p]
	return ok && pc.Supported
}
