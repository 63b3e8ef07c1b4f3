//go:build windows

package windows

import (
	"sync"
	"syscall"
	"unsafe"

	winapi "golang.org/x/sys/windows"

	"github.com/allanhanan/duvc-ctl/core"
)

type ksPropertySetVtbl struct {
	unknownVtbl
	QuerySupported uintptr
	Set            uintptr
	Get            uintptr
}

type ksPropertySetCOM struct {
	vtbl *ksPropertySetVtbl
}

func (k *ksPropertySetCOM) release() {
	(&comObject{vtbl: &k.vtbl.unknownVtbl}).release()
}

func (k *ksPropertySetCOM) querySupported(set *winapi.GUID, id uint32) (uint32, error) {
	var support uint32
	hr, _, _ := syscall.SyscallN(k.vtbl.QuerySupported,
		uintptr(unsafe.Pointer(k)),
		uintptr(unsafe.Pointer(set)),
		uintptr(id),
		uintptr(unsafe.Pointer(&support)))
	if hr != 0 {
		return 0, newHResultError("IKsPropertySet.QuerySupported", hr)
	}
	return support, nil
}

func (k *ksPropertySetCOM) get(set *winapi.GUID, id uint32, data []byte) (uint32, error) {
	var returned uint32
	var dataPtr unsafe.Pointer
	if len(data) > 0 {
		dataPtr = unsafe.Pointer(&data[0])
	}
	hr, _, _ := syscall.SyscallN(k.vtbl.Get,
		uintptr(unsafe.Pointer(k)),
		uintptr(unsafe.Pointer(set)),
		uintptr(id),
		0, 0,
		uintptr(dataPtr),
		uintptr(len(data)),
		uintptr(unsafe.Pointer(&returned)))
	if hr != 0 {
		return 0, newHResultError("IKsPropertySet.Get", hr)
	}
	return returned, nil
}

func (k *ksPropertySetCOM) set(setGUID *winapi.GUID, id uint32, data []byte) error {
	var dataPtr unsafe.Pointer
	if len(data) > 0 {
		dataPtr = unsafe.Pointer(&data[0])
	}
	hr, _, _ := syscall.SyscallN(k.vtbl.Set,
		uintptr(unsafe.Pointer(k)),
		uintptr(unsafe.Pointer(setGUID)),
		uintptr(id),
		0, 0,
		uintptr(dataPtr),
		uintptr(len(data)))
	if hr != 0 {
		return newHResultError("IKsPropertySet.Set", hr)
	}
	return nil
}

// ksproxyModule is the system module that backs IKsPropertySet on
// DirectShow filters. Pinning it (LoadLibrary, never unloaded until the
// owning KsPropertySet is destroyed) keeps the vtable a QueryInterface call
// returns alive for as long as a caller might still hold a reference into
// this module's mapped image.
const ksproxyModule = "ksproxy.ax"

// KsPropertySet is the Windows implementation of the vendor-property-set
// contract. It holds only a filter reference and a pin on ksproxy.ax
// between calls, obtaining a fresh IKsPropertySet pointer for each
// get/set/query and dropping it before returning. Close releases the
// filter reference strictly before unpinning the module — reversing that
// order can destroy a vtable still reachable through the filter reference.
type KsPropertySet struct {
	thread *comThread

	mu        sync.Mutex
	filterRef *comObject // owned: AddRef'd from the connection's filter
	modulePin winapi.Handle
	valid     bool
}

// newKsPropertySet pins ksproxy.ax, then verifies filter exposes
// IKsPropertySet, and keeps only the filter reference and the pin — the
// property-set reference obtained for verification is released
// immediately rather than held.
func newKsPropertySet(filter *comObject, thread *comThread) *KsPropertySet {
	k := &KsPropertySet{thread: thread}

	if filter == nil {
		return k
	}

	thread.run(func() {
		pin, err := winapi.LoadLibrary(ksproxyModule)
		if err != nil {
			return
		}

		ptr, err := filter.queryInterface(&iidIKsPropertySet)
		if err != nil || ptr == nil {
			winapi.FreeLibrary(pin)
			return
		}
		(*ksPropertySetCOM)(ptr).release()

		filter.addRef()
		k.filterRef = filter
		k.modulePin = pin
		k.valid = true
	})

	return k
}

// IsValid reports whether the device filter supports IKsPropertySet.
func (k *KsPropertySet) IsValid() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.valid
}

// withFreshPropertySet obtains a property-set reference scoped to fn,
// dropping it before returning regardless of fn's outcome.
func (k *KsPropertySet) withFreshPropertySet(fn func(*ksPropertySetCOM) error) error {
	k.mu.Lock()
	filterRef, valid := k.filterRef, k.valid
	k.mu.Unlock()
	if !valid {
		return errNotAvailable
	}

	var opErr error
	k.thread.run(func() {
		ptr, err := filterRef.queryInterface(&iidIKsPropertySet)
		if err != nil || ptr == nil {
			opErr = errNotAvailable
			return
		}
		ks := (*ksPropertySetCOM)(ptr)
		defer ks.release()
		opErr = fn(ks)
	})
	return opErr
}

var errNotAvailable = newHResultError("IKsPropertySet unavailable", 0x80004002) // E_NOINTERFACE

// QuerySupport implements platform.VendorPropertySet.
func (k *KsPropertySet) QuerySupport(set core.GUID, id uint32) core.Result[uint32] {
	winGUID := toWinGUID(set)
	var support uint32
	err := k.withFreshPropertySet(func(ks *ksPropertySetCOM) error {
		s, err := ks.querySupported(&winGUID, id)
		support = s
		return err
	})
	if err != nil {
		return core.Errf[uint32](core.PropertyNotSupported, err.Error())
	}
	return core.Ok(support)
}

// GetProperty implements platform.VendorPropertySet: a two-step exchange,
// first sizing the buffer then retrieving bytes.
func (k *KsPropertySet) GetProperty(set core.GUID, id uint32) core.Result[[]byte] {
	winGUID := toWinGUID(set)

	var size uint32
	err := k.withFreshPropertySet(func(ks *ksPropertySetCOM) error {
		n, _ := ks.get(&winGUID, id, nil)
		size = n
		return nil
	})
	if err != nil {
		return core.Errf[[]byte](core.PropertyNotSupported, err.Error())
	}
	if size == 0 {
		return core.Errf[[]byte](core.PropertyNotSupported, "property returned zero-length data")
	}

	buf := make([]byte, size)
	var returned uint32
	err = k.withFreshPropertySet(func(ks *ksPropertySetCOM) error {
		n, err := ks.get(&winGUID, id, buf)
		returned = n
		return err
	})
	if err != nil {
		return core.Errf[[]byte](core.SystemError, err.Error())
	}
	return core.Ok(buf[:returned])
}

// SetProperty implements platform.VendorPropertySet.
func (k *KsPropertySet) SetProperty(set core.GUID, id uint32, data []byte) core.ResultVoid {
	winGUID := toWinGUID(set)
	err := k.withFreshPropertySet(func(ks *ksPropertySetCOM) error {
		return ks.set(&winGUID, id, data)
	})
	if err == errNotAvailable {
		return core.ErrVoid(core.NewError(core.PropertyNotSupported, err.Error()))
	}
	if err != nil {
		return core.ErrVoid(core.NewError(core.SystemError, err.Error()))
	}
	return core.OkVoid()
}

// Close releases the filter reference, then unpins the module, in that
// order. Safe to call from outside the connection's COM thread; the actual
// work always runs on it via run/closeLocked.
func (k *KsPropertySet) Close() error {
	k.thread.run(k.closeLocked)
	return nil
}

// closeLocked performs the ordered drop and must run on the dedicated COM
// thread; it is also what DeviceConnection.Close calls directly since it
// is already executing inside a thread.run callback at that point.
func (k *KsPropertySet) closeLocked() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.valid {
		return
	}
	k.valid = false

	if k.filterRef != nil {
		k.filterRef.release()
		k.filterRef = nil
	}
	if k.modulePin != 0 {
		winapi.FreeLibrary(k.modulePin)
		k.modulePin = 0
	}
}
