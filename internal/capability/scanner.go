// Package capability builds a point-in-time DeviceCapabilities snapshot by
// probing every known CamProp and VidProp through a platform.Connection.
package capability

import (
	"github.com/allanhanan/duvc-ctl/core"
	"github.com/allanhanan/duvc-ctl/internal/logging"
	"github.com/allanhanan/duvc-ctl/internal/platform"
)

var log = logging.For("capability")

// Scan probes every CamProp and VidProp on conn and returns a populated
// snapshot for dev. A property is included only when GetRange succeeds;
// a failed Get on an otherwise-supported property falls back to the
// range's default value and mode rather than dropping the property. If
// conn goes invalid partway through the scan, the remaining probes are
// abandoned and the snapshot is marked inaccessible.
func Scan(dev core.Device, conn platform.Connection) *core.DeviceCapabilities {
	snap := core.NewDeviceCapabilities(dev)
	snap.Accessible = conn.IsValid()
	if !snap.Accessible {
		return snap
	}

	for _, prop := range core.AllCamProps() {
		rangeResult := conn.GetRange(prop)
		if rangeResult.IsError() {
			continue
		}
		propRange := rangeResult.Value()
		pc := core.PropertyCapability{Supported: true, Range: propRange}
		if cur := conn.Get(prop); cur.IsOk() {
			pc.Current = cur.Value()
		} else {
			log.Debugf("capability scan: Get(%s) failed after GetRange succeeded: %v", prop, cur.Error())
			pc.Current = core.PropSetting{Value: propRange.DefaultVal, Mode: propRange.DefaultMode}
			if !conn.IsValid() {
				snap.Accessible = false
				return snap
			}
		}
		snap.CamProps[prop] = pc
	}

	for _, prop := range core.AllVidProps() {
		rangeResult := conn.GetRangeVid(prop)
		if rangeResult.IsError() {
			continue
		}
		propRange := rangeResult.Value()
		pc := core.PropertyCapability{Supported: true, Range: propRange}
		if cur := conn.GetVid(prop); cur.IsOk() {
			pc.Current = cur.Value()
		} else {
			log.Debugf("capability scan: GetVid(%s) failed after GetRangeVid succeeded: %v", prop, cur.Error())
			pc.Current = core.PropSetting{Value: propRange.DefaultVal, Mode: propRange.DefaultMode}
			if !conn.IsValid() {
				snap.Accessible = false
				return snap
			}
		}
		snap.VidProps[prop] = pc
	}

	return snap
}

// Refresh rescans dev's properties into snap in place, clearing stale
// entries first so a property the device stopped supporting doesn't
// linger from a previous scan.
func Refresh(snap *core.DeviceCapabilities, conn platform.Connection) *core.Error {
	if !conn.IsValid() {
		snap.Clear()
		return core.NewError(core.DeviceNotFound, "device not connected")
	}

	fresh := Scan(snap.Device, conn)
	snap.Accessible = fresh.Accessible
	snap.CamProps = fresh.CamProps
	snap.VidProps = fresh.VidProps
	return nil
}
