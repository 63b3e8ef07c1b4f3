//go:build windows

package windows

import (
	"syscall"
	"unsafe"
)

const clsctxInprocServer = 0x1

var (
	modOleAut32          = syscall.NewLazyDLL("oleaut32.dll")
	procSysFreeString     = modOleAut32.NewProc("SysFreeString")
	procSysStringLen      = modOleAut32.NewProc("SysStringLen")
	procCoCreateInstance  = modOle32.NewProc("CoCreateInstance")
)

// bstrToString converts a BSTR (length-prefixed UTF-16, no terminator
// guaranteed) to a Go string, reading at most SysStringLen code units
// rather than relying on a NUL terminator. The text is cut at the first
// embedded NUL, if any.
func bstrToString(bstr uintptr) string {
	if bstr == 0 {
		return ""
	}
	lenRet, _, _ := procSysStringLen.Call(bstr)
	length := int(lenRet)
	if length == 0 {
		return ""
	}
	u16 := unsafe.Slice((*uint16)(unsafe.Pointer(bstr)), length)
	return syscall.UTF16ToString(u16)
}

func freeBSTR(bstr uintptr) {
	if bstr == 0 {
		return
	}
	procSysFreeString.Call(bstr)
}
