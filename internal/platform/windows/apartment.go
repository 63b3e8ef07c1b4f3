//go:build windows

package windows

import (
	"runtime"
	"syscall"
)

const (
	coinitApartmentThreaded = 0x2
	sOK                     = 0x0
	sFalse                  = 0x1
	rpcEChangedMode         = 0x80010106
)

var (
	modOle32           = syscall.NewLazyDLL("ole32.dll")
	procCoInitializeEx = modOle32.NewProc("CoInitializeEx")
	procCoUninitialize = modOle32.NewProc("CoUninitialize")
)

// apartmentToken represents one thread's claim on a COM apartment. It is
// not safe to pass between goroutines: withApartment locks the calling
// goroutine to its OS thread for the token's lifetime, and the token must
// never be shared across threads.
type apartmentToken struct {
	owned bool
}

// enterApartment initializes COM on the calling thread with
// COINIT_APARTMENTTHREADED. Idempotent per thread (COM's own reference
// count handles repeat calls on the same thread); a thread that discovers
// the apartment already exists in a different concurrency mode does not
// reinitialize and must not uninitialize on exit.
func enterApartment() (*apartmentToken, error) {
	hr, _, _ := procCoInitializeEx.Call(0, uintptr(coinitApartmentThreaded))
	switch uint32(hr) {
	case sOK, sFalse:
		return &apartmentToken{owned: true}, nil
	case rpcEChangedMode:
		return &apartmentToken{owned: false}, nil
	default:
		return nil, newHResultError("CoInitializeEx", hr)
	}
}

// leave releases the apartment claim if this call is the one that
// acquired it. Teardown must run on the same OS thread that entered, which
// is why callers drive this through withApartment rather than holding a
// token across a goroutine boundary.
func (t *apartmentToken) leave() {
	if t == nil || !t.owned {
		return
	}
	procCoUninitialize.Call()
}

// withApartment locks the calling goroutine to its current OS thread,
// enters the apartment, runs fn, and tears down in reverse order on return.
func withApartment(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	token, err := enterApartment()
	if err != nil {
		return err
	}
	defer token.leave()

	return fn()
}
