//go:build windows

package windows

import (
	"fmt"
	"syscall"
	"unsafe"

	winapi "golang.org/x/sys/windows"
)

// unknownVtbl is the common IUnknown vtable prefix every COM interface
// starts with; every typed vtable below embeds it so calls to
// QueryInterface/AddRef/Release are uniform regardless of interface.
type unknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// comObject is any COM object whose first field is a pointer to a vtable
// beginning with unknownVtbl. The struct layout mirrors the pattern used
// throughout golang.org/x/sys/windows COM callers (e.g.
// other_examples/kevmo314-go-uvc's mf_windows.go): a typed *XVtbl field,
// invoked through syscall.SyscallN with the receiver as the implicit
// "this" argument.
type comObject struct {
	vtbl *unknownVtbl
}

func (o *comObject) queryInterface(iid *winapi.GUID) (unsafe.Pointer, error) {
	var out unsafe.Pointer
	hr, _, _ := syscall.SyscallN(o.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(o)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	if hr != 0 {
		return nil, fmt.Errorf("QueryInterface failed: 0x%x", uint32(hr))
	}
	return out, nil
}

func (o *comObject) addRef() {
	if o == nil || o.vtbl == nil {
		return
	}
	syscall.SyscallN(o.vtbl.AddRef, uintptr(unsafe.Pointer(o)))
}

func (o *comObject) release() {
	if o == nil || o.vtbl == nil {
		return
	}
	syscall.SyscallN(o.vtbl.Release, uintptr(unsafe.Pointer(o)))
}

// hresultError wraps a failing HRESULT with the operation name that
// produced it.
type hresultError struct {
	op string
	hr uint32
}

func (e *hresultError) Error() string {
	return fmt.Sprintf("%s failed: hr=0x%08x", e.op, e.hr)
}

func (e *hresultError) HRESULT() uint32 {
	return e.hr
}

func newHResultError(op string, hr uintptr) error {
	if hr == 0 {
		return nil
	}
	return &hresultError{op: op, hr: uint32(hr)}
}

// HRESULT facility/error constants this package classifies against.
const (
	hrEAccessDenied  uint32 = 0x80070005 // E_ACCESSDENIED
	hrErrorBusy      uint32 = 0x800700AA // HRESULT_FROM_WIN32(ERROR_BUSY)
	hrErrorFileNotFnd uint32 = 0x80070002 // HRESULT_FROM_WIN32(ERROR_FILE_NOT_FOUND)
)

// hrIsAccessDenied reports whether hr is the HRESULT DirectShow returns
// when a filter graph refuses to bind an in-use device.
func hrIsAccessDenied(hr uint32) bool {
	return hr == hrEAccessDenied
}

// hrIsBusy reports whether hr is the HRESULT some drivers report for an
// exclusive-use conflict instead of E_ACCESSDENIED.
func hrIsBusy(hr uint32) bool {
	return hr == hrErrorBusy
}

// hrIsNotFound reports whether hr indicates the moniker/filter no longer
// resolves to a live device.
func hrIsNotFound(hr uint32) bool {
	return hr == hrErrorFileNotFnd
}
