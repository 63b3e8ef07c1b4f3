//go:build windows

package hotplug

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	winapi "golang.org/x/sys/windows"
)

const (
	wmDeviceChange           = 0x0219
	dbtDeviceArrival         = 0x8000
	dbtDeviceRemoveComplete  = 0x8004
	dbtDevTypDeviceInterface = 0x00000005
	deviceNotifyWindowHandle = 0x00000000
	hwndMessage              = ^uintptr(2) // (HWND)-3, message-only window parent
	wmClose                  = 0x0010
	wmDestroy                = 0x0002
)

// classVideoInputDeviceCategory is CLSID_VideoInputDeviceCategory, used as
// the notification filter so this window only hears about video capture
// devices, not every USB interface on the system.
var classVideoInputDeviceCategory = winapi.GUID{
	Data1: 0x860BB310, Data2: 0x5D01, Data3: 0x11D0,
	Data4: [8]byte{0xBD, 0x3B, 0x00, 0xA0, 0xC9, 0x11, 0xCE, 0x86},
}

var (
	modUser32                         = syscall.NewLazyDLL("user32.dll")
	procRegisterClassExW              = modUser32.NewProc("RegisterClassExW")
	procCreateWindowExW               = modUser32.NewProc("CreateWindowExW")
	procDefWindowProcW                = modUser32.NewProc("DefWindowProcW")
	procDestroyWindow                 = modUser32.NewProc("DestroyWindow")
	procGetMessageW                   = modUser32.NewProc("GetMessageW")
	procTranslateMessage              = modUser32.NewProc("TranslateMessage")
	procDispatchMessageW              = modUser32.NewProc("DispatchMessageW")
	procPostQuitMessage               = modUser32.NewProc("PostQuitMessage")
	procPostMessageW                  = modUser32.NewProc("PostMessageW")
	procRegisterDeviceNotificationW   = modUser32.NewProc("RegisterDeviceNotificationW")
	procUnregisterDeviceNotification = modUser32.NewProc("UnregisterDeviceNotification")
)

type wndClassExW struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     winapi.Handle
	hIcon         winapi.Handle
	hCursor       winapi.Handle
	hbrBackground winapi.Handle
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       winapi.Handle
}

type msgW struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// devBroadcastHdr mirrors the leading DEV_BROADCAST_HDR fields of
// DEV_BROADCAST_DEVICEINTERFACE_W; dbcc_name is a variable-length trailing
// wide string, read out with unsafe pointer arithmetic past the header and
// the class GUID.
type devBroadcastHdr struct {
	dbchSize      uint32
	dbchDeviceType uint32
	dbchReserved  uint32
}

// windowSource runs a hidden message-only window on its own locked OS
// thread and turns WM_DEVICECHANGE into Events.
type windowSource struct {
	mu      sync.Mutex
	hwnd    uintptr
	notify  uintptr
	readyCh chan error
	publish func(Event)
}

func newPlatformSource() source {
	return &windowSource{}
}

// classNamePtr and wndProcPtr are package-level because Win32 callbacks
// can't close over Go state directly; the live windowSource instance is
// tracked separately and looked up by window handle.
var (
	registry   sync.Map // hwnd uintptr -> *windowSource
	wndProcPtr = syscall.NewCallback(wndProc)
)

func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	switch msg {
	case wmDeviceChange:
		if v, ok := registry.Load(hwnd); ok {
			v.(*windowSource).handleDeviceChange(wParam, lParam)
		}
	case wmClose:
		procDestroyWindow.Call(hwnd)
		return 0
	case wmDestroy:
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, msg, wParam, lParam)
	return ret
}

func (ws *windowSource) handleDeviceChange(wParam, lParam uintptr) {
	if wParam != dbtDeviceArrival && wParam != dbtDeviceRemoveComplete {
		return
	}
	hdr := (*devBroadcastHdr)(unsafe.Pointer(lParam))
	if hdr == nil || hdr.dbchDeviceType != dbtDevTypDeviceInterface {
		return
	}
	// dbcc_name starts right after the three leading uint32 fields and the
	// dbcc_classguid that follows them.
	namePtr := (*uint16)(unsafe.Pointer(lParam + unsafe.Sizeof(devBroadcastHdr{}) + unsafe.Sizeof(winapi.GUID{})))
	path := winapi.UTF16PtrToString(namePtr)

	ws.publish(Event{Added: wParam == dbtDeviceArrival, Path: path})
}

func (ws *windowSource) start(publish func(Event)) error {
	ws.publish = publish
	ws.readyCh = make(chan error, 1)

	go ws.loop()

	return <-ws.readyCh
}

func (ws *windowSource) loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	className, _ := winapi.UTF16PtrFromString("DuvcHotplugWindow")

	var wc wndClassExW
	wc.cbSize = uint32(unsafe.Sizeof(wc))
	wc.lpfnWndProc = wndProcPtr
	wc.lpszClassName = className

	_, _, _ = procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	// ERROR_CLASS_ALREADY_EXISTS is fine; any other failure still lets
	// CreateWindowExW itself fail below with a clearer error.

	title, _ := winapi.UTF16PtrFromString("duvc-ctl hotplug monitor")
	hwnd, _, _ := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		0, 0, 0, 0, 0,
		hwndMessage,
		0, 0, 0)
	if hwnd == 0 {
		ws.readyCh <- fmt.Errorf("CreateWindowExW failed")
		return
	}
	ws.hwnd = hwnd
	registry.Store(hwnd, ws)

	filter := struct {
		size       uint32
		devType    uint32
		reserved   uint32
		classGUID  winapi.GUID
	}{
		devType: dbtDevTypDeviceInterface,
		classGUID: classVideoInputDeviceCategory,
	}
	filter.size = uint32(unsafe.Sizeof(filter))

	notify, _, _ := procRegisterDeviceNotificationW.Call(
		hwnd, uintptr(unsafe.Pointer(&filter)), uintptr(deviceNotifyWindowHandle))
	if notify == 0 {
		procDestroyWindow.Call(hwnd)
		registry.Delete(hwnd)
		ws.readyCh <- fmt.Errorf("RegisterDeviceNotificationW failed")
		return
	}
	ws.notify = notify
	ws.readyCh <- nil

	for {
		var m msgW
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if ret == 0 {
			// WM_QUIT, posted once our WM_DESTROY handler runs.
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (ws *windowSource) stop() {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.notify != 0 {
		procUnregisterDeviceNotification.Call(ws.notify)
		ws.notify = 0
	}
	if ws.hwnd != 0 {
		procPostMessageW.Call(ws.hwnd, wmClose, 0, 0)
		registry.Delete(ws.hwnd)
		ws.hwnd = 0
	}
}
