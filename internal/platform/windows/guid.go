//go:build windows

package windows

import (
	winapi "golang.org/x/sys/windows"

	"github.com/allanhanan/duvc-ctl/core"
)

// Well-known DirectShow GUIDs. Values are the public Windows SDK constants;
// none of this is vendor-confidential, it is the wire format of the OS.
var (
	clsidSystemDeviceEnum        = winapi.GUID{Data1: 0x62be5d10, Data2: 0x60eb, Data3: 0x11d0, Data4: [8]byte{0xbd, 0x3b, 0x00, 0xa0, 0xc9, 0x11, 0xce, 0x86}}
	clsidVideoInputDeviceCategory = winapi.GUID{Data1: 0x860bb310, Data2: 0x5d01, Data3: 0x11d0, Data4: [8]byte{0xbd, 0x3b, 0x00, 0xa0, 0xc9, 0x11, 0xce, 0x86}}

	iidICreateDevEnum  = winapi.GUID{Data1: 0x29840822, Data2: 0x5b84, Data3: 0x11d0, Data4: [8]byte{0xbd, 0x3b, 0x00, 0xa0, 0xc9, 0x11, 0xce, 0x86}}
	iidIBaseFilter     = winapi.GUID{Data1: 0x56a86895, Data2: 0x0ad4, Data3: 0x11ce, Data4: [8]byte{0xb0, 0x3a, 0x00, 0x20, 0xaf, 0x0b, 0xa7, 0x70}}
	iidIMoniker        = winapi.GUID{Data1: 0x0000000f, Data2: 0x0000, Data3: 0x0000, Data4: [8]byte{0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	iidIPropertyBag    = winapi.GUID{Data1: 0x55272a00, Data2: 0x42cb, Data3: 0x11ce, Data4: [8]byte{0x81, 0x35, 0x00, 0xaa, 0x00, 0x4b, 0xb8, 0x51}}
	iidIUnknown        = winapi.GUID{Data1: 0x00000000, Data2: 0x0000, Data3: 0x0000, Data4: [8]byte{0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	iidIAMCameraControl = winapi.GUID{Data1: 0xc6e13370, Data2: 0x30ac, Data3: 0x11d0, Data4: [8]byte{0xa1, 0x8c, 0x00, 0xa0, 0xc9, 0x11, 0x89, 0x56}}
	iidIAMVideoProcAmp  = winapi.GUID{Data1: 0xc6e13360, Data2: 0x30ac, Data3: 0x11d0, Data4: [8]byte{0xa1, 0x8c, 0x00, 0xa0, 0xc9, 0x11, 0x89, 0x56}}
	iidIKsPropertySet   = winapi.GUID{Data1: 0x31efac30, Data2: 0x515c, Data3: 0x11d0, Data4: [8]byte{0xa9, 0xaa, 0x00, 0xaa, 0x00, 0x61, 0xbe, 0x93}}
)

// toWinGUID converts a core.GUID (platform-neutral) to the x/sys/windows
// representation the syscalls expect. The two struct layouts are
// deliberately identical field-for-field.
func toWinGUID(g core.GUID) winapi.GUID {
	return winapi.GUID{Data1: g.Data1, Data2: g.Data2, Data3: g.Data3, Data4: g.Data4}
}

// fromWinGUID is the inverse of toWinGUID.
func fromWinGUID(g winapi.GUID) core.GUID {
	return core.GUID{Data1: g.Data1, Data2: g.Data2, Data3: g.Data3, Data4: g.Data4}
}
