//go:build windows

package windows

import (
	"fmt"
	"syscall"
	"unsafe"

	winapi "golang.org/x/sys/windows"
)

// --- ICreateDevEnum ---------------------------------------------------

type createDevEnumVtbl struct {
	unknownVtbl
	CreateClassEnumerator uintptr
}

type createDevEnum struct {
	vtbl *createDevEnumVtbl
}

func (c *createDevEnum) createClassEnumerator(clsid *winapi.GUID) (*enumMoniker, error) {
	var out *enumMoniker
	hr, _, _ := syscall.SyscallN(c.vtbl.CreateClassEnumerator,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(clsid)),
		uintptr(unsafe.Pointer(&out)),
		0)
	if hr != 0 {
		return nil, newHResultError("ICreateDevEnum.CreateClassEnumerator", hr)
	}
	if out == nil {
		return nil, fmt.Errorf("no video input devices category registered")
	}
	return out, nil
}

// --- IEnumMoniker -------------------------------------------------------

type enumMonikerVtbl struct {
	unknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

type enumMoniker struct {
	vtbl *enumMonikerVtbl
}

func (e *enumMoniker) release() {
	(&comObject{vtbl: &e.vtbl.unknownVtbl}).release()
}

// next fetches the next moniker, returning (nil, nil) at end of sequence.
func (e *enumMoniker) next() (*moniker, error) {
	var out *moniker
	var fetched uint32
	hr, _, _ := syscall.SyscallN(e.vtbl.Next,
		uintptr(unsafe.Pointer(e)),
		1,
		uintptr(unsafe.Pointer(&out)),
		uintptr(unsafe.Pointer(&fetched)))
	if hr != 0 || fetched == 0 {
		return nil, nil
	}
	return out, nil
}

// --- IMoniker ------------------------------------------------------------
//
// The vtable layout follows IMoniker's real COM inheritance chain
// (IUnknown -> IPersist -> IPersistStream -> IMoniker) so the offsets of
// the methods we actually call — BindToObject and BindToStorage — line up
// with the real interface; the unused slots exist only to keep the layout
// correct.
type monikerVtbl struct {
	unknownVtbl
	GetClassID            uintptr // IPersist
	IsDirty               uintptr // IPersistStream
	Load                  uintptr
	Save                  uintptr
	GetSizeMax            uintptr
	BindToObject          uintptr // IMoniker
	BindToStorage         uintptr
	Reduce                uintptr
	ComposeWith           uintptr
	Enum                  uintptr
	IsEqual               uintptr
	Hash                  uintptr
	IsRunning             uintptr
	GetTimeOfLastChange   uintptr
	Inverse               uintptr
	CommonPrefixWith      uintptr
	RelativePathTo        uintptr
	GetDisplayName        uintptr
	ParseDisplayName      uintptr
	IsSystemMoniker       uintptr
}

type moniker struct {
	vtbl *monikerVtbl
}

func (m *moniker) release() {
	(&comObject{vtbl: &m.vtbl.unknownVtbl}).release()
}

func (m *moniker) bindToObject(iid *winapi.GUID) (unsafe.Pointer, error) {
	var out unsafe.Pointer
	hr, _, _ := syscall.SyscallN(m.vtbl.BindToObject,
		uintptr(unsafe.Pointer(m)),
		0, 0,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	if hr != 0 {
		return nil, newHResultError("IMoniker.BindToObject", hr)
	}
	return out, nil
}

func (m *moniker) bindToStorage(iid *winapi.GUID) (unsafe.Pointer, error) {
	var out unsafe.Pointer
	hr, _, _ := syscall.SyscallN(m.vtbl.BindToStorage,
		uintptr(unsafe.Pointer(m)),
		0, 0,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	if hr != 0 {
		return nil, newHResultError("IMoniker.BindToStorage", hr)
	}
	return out, nil
}

// --- IPropertyBag --------------------------------------------------------
//
// Used only to read the "FriendlyName" and "DevicePath" properties off a
// device moniker.

type propertyBagVtbl struct {
	unknownVtbl
	Read  uintptr
	Write uintptr
}

type propertyBag struct {
	vtbl *propertyBagVtbl
}

func (p *propertyBag) release() {
	(&comObject{vtbl: &p.vtbl.unknownVtbl}).release()
}

// variant is a minimal VARIANT large enough for VT_BSTR, which is all
// IPropertyBag.Read ever returns for these two properties.
type variant struct {
	vt        uint16
	reserved1 uint16
	reserved2 uint16
	reserved3 uint16
	bstrVal   uintptr
	pad       uint64
}

const vtBSTR = 8

func (p *propertyBag) readString(name string) (string, error) {
	namePtr, err := winapi.UTF16PtrFromString(name)
	if err != nil {
		return "", err
	}

	var v variant
	v.vt = vtBSTR

	hr, _, _ := syscall.SyscallN(p.vtbl.Read,
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(namePtr)),
		uintptr(unsafe.Pointer(&v)),
		0)
	if hr != 0 {
		return "", newHResultError("IPropertyBag.Read("+name+")", hr)
	}
	if v.bstrVal == 0 {
		return "", nil
	}
	defer freeBSTR(v.bstrVal)
	return bstrToString(v.bstrVal), nil
}

// --- enumeration + binding entry points ----------------------------------

// createSystemDeviceEnum instantiates CLSID_SystemDeviceEnum via CoCreateInstance.
func createSystemDeviceEnum() (*createDevEnum, error) {
	var out unsafe.Pointer
	hr, _, _ := procCoCreateInstance.Call(
		uintptr(unsafe.Pointer(&clsidSystemDeviceEnum)),
		0,
		clsctxInprocServer,
		uintptr(unsafe.Pointer(&iidICreateDevEnum)),
		uintptr(unsafe.Pointer(&out)))
	if hr != 0 {
		return nil, newHResultError("CoCreateInstance(CLSID_SystemDeviceEnum)", hr)
	}
	return (*createDevEnum)(out), nil
}

// enumVideoInputDevices returns the IEnumMoniker over all currently present
// video-input-category devices, or an error if the category has no members
// or the enumerator cannot be created.
func enumVideoInputDevices(dev *createDevEnum) (*enumMoniker, error) {
	em, err := dev.createClassEnumerator(&clsidVideoInputDeviceCategory)
	if err != nil {
		return nil, err
	}
	return em, nil
}

type enumeratedDevice struct {
	name string
	path string
	mon  *moniker
}

// enumerateDevices walks the live IEnumMoniker sequence and reads the
// friendly name and device path off each moniker via IPropertyBag,
// releasing the property bag promptly and handing moniker ownership back
// to the caller (who must release each returned moniker once done, e.g.
// after a bindFilter call).
func enumerateDevices() ([]enumeratedDevice, error) {
	var result []enumeratedDevice

	err := withApartment(func() error {
		de, err := createSystemDeviceEnum()
		if err != nil {
			return err
		}
		defer (&comObject{vtbl: &de.vtbl.unknownVtbl}).release()

		em, err := enumVideoInputDevices(de)
		if err != nil {
			// No video-input category registered at all: empty, not an error.
			return nil
		}
		defer em.release()

		for {
			mon, err := em.next()
			if err != nil {
				return err
			}
			if mon == nil {
				break
			}

			name, path := readMonikerIdentity(mon)
			if name == "" && path == "" {
				mon.release()
				continue
			}
			result = append(result, enumeratedDevice{name: name, path: path, mon: mon})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// readMonikerIdentity binds to the moniker's IPropertyBag just long enough
// to read FriendlyName and DevicePath, then releases it immediately.
func readMonikerIdentity(mon *moniker) (name, path string) {
	ptr, err := mon.bindToStorage(&iidIPropertyBag)
	if err != nil || ptr == nil {
		return "", ""
	}
	bag := (*propertyBag)(ptr)
	defer bag.release()

	name, _ = bag.readString("FriendlyName")
	path, _ = bag.readString("DevicePath")
	return name, path
}

// bindFilter resolves mon to an IBaseFilter. Access-denied and busy
// HRESULTs are returned as-is for the caller to classify; callers
// distinguish them from a generic bind failure via hrIsAccessDenied/hrIsBusy.
func bindFilter(mon *moniker) (*comObject, error) {
	var result *comObject
	err := withApartment(func() error {
		ptr, err := mon.bindToObject(&iidIBaseFilter)
		if err != nil {
			if he, ok := err.(*hresultError); ok {
				if hrIsAccessDenied(he.hr) || hrIsBusy(he.hr) {
					return err
				}
			}
			return err
		}
		result = (*comObject)(ptr)
		return nil
	})
	return result, err
}
