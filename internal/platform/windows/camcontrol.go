//go:build windows

package windows

import (
	"syscall"
	"unsafe"
)

// IAMCameraControl and IAMVideoProcAmp share an identical vtable shape
// (GetRange/Set/Get past the IUnknown prefix); strmif.h defines them as
// separate interfaces with separate IIDs but the same method signatures.
// We mirror the Get/Set pair for both rather than sharing code since
// QueryInterface on the filter returns genuinely distinct vtable pointers
// even though the shapes match.

type amCameraControlVtbl struct {
	unknownVtbl
	GetRange uintptr
	Set      uintptr
	Get      uintptr
}

type amCameraControl struct {
	vtbl *amCameraControlVtbl
}

func (c *amCameraControl) release() {
	(&comObject{vtbl: &c.vtbl.unknownVtbl}).release()
}

func (c *amCameraControl) getRange(selector int32) (min, max, step, def, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(c.vtbl.GetRange,
		uintptr(unsafe.Pointer(c)),
		uintptr(selector),
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&max)),
		uintptr(unsafe.Pointer(&step)),
		uintptr(unsafe.Pointer(&def)),
		uintptr(unsafe.Pointer(&flags)))
	if hr != 0 {
		return 0, 0, 0, 0, 0, newHResultError("IAMCameraControl.GetRange", hr)
	}
	return
}

func (c *amCameraControl) get(selector int32) (value, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(c.vtbl.Get,
		uintptr(unsafe.Pointer(c)),
		uintptr(selector),
		uintptr(unsafe.Pointer(&value)),
		uintptr(unsafe.Pointer(&flags)))
	if hr != 0 {
		return 0, 0, newHResultError("IAMCameraControl.Get", hr)
	}
	return
}

func (c *amCameraControl) set(selector, value, flags int32) error {
	hr, _, _ := syscall.SyscallN(c.vtbl.Set,
		uintptr(unsafe.Pointer(c)),
		uintptr(selector),
		uintptr(value),
		uintptr(flags))
	if hr != 0 {
		return newHResultError("IAMCameraControl.Set", hr)
	}
	return nil
}

type amVideoProcAmpVtbl struct {
	unknownVtbl
	GetRange uintptr
	Set      uintptr
	Get      uintptr
}

type amVideoProcAmp struct {
	vtbl *amVideoProcAmpVtbl
}

func (v *amVideoProcAmp) release() {
	(&comObject{vtbl: &v.vtbl.unknownVtbl}).release()
}

func (v *amVideoProcAmp) getRange(selector int32) (min, max, step, def, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(v.vtbl.GetRange,
		uintptr(unsafe.Pointer(v)),
		uintptr(selector),
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&max)),
		uintptr(unsafe.Pointer(&step)),
		uintptr(unsafe.Pointer(&def)),
		uintptr(unsafe.Pointer(&flags)))
	if hr != 0 {
		return 0, 0, 0, 0, 0, newHResultError("IAMVideoProcAmp.GetRange", hr)
	}
	return
}

func (v *amVideoProcAmp) get(selector int32) (value, flags int32, err error) {
	hr, _, _ := syscall.SyscallN(v.vtbl.Get,
		uintptr(unsafe.Pointer(v)),
		uintptr(selector),
		uintptr(unsafe.Pointer(&value)),
		uintptr(unsafe.Pointer(&flags)))
	if hr != 0 {
		return 0, 0, newHResultError("IAMVideoProcAmp.Get", hr)
	}
	return
}

func (v *amVideoProcAmp) set(selector, value, flags int32) error {
	hr, _, _ := syscall.SyscallN(v.vtbl.Set,
		uintptr(unsafe.Pointer(v)),
		uintptr(selector),
		uintptr(value),
		uintptr(flags))
	if hr != 0 {
		return newHResultError("IAMVideoProcAmp.Set", hr)
	}
	return nil
}
