//go:build windows

package windows

import "runtime"

// comThread pins one dedicated OS thread for the lifetime of a COM object
// graph (a DeviceConnection or a KsPropertySet) and serializes every call
// through it. COM's single-threaded-apartment objects are only safely
// called from the thread that created them; Go's goroutines otherwise
// migrate across OS threads, so without this a connection's second
// property call could land on a different thread than the one that bound
// the filter. The hot-plug monitor's notification dispatcher uses the same
// single-serial-worker shape for an unrelated reason: ordered delivery.
type comThread struct {
	work chan func()
	done chan struct{}
}

func newComThread() *comThread {
	t := &comThread{
		work: make(chan func()),
		done: make(chan struct{}),
	}
	go t.loop()
	return t
}

func (t *comThread) loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	token, err := enterApartment()
	if err == nil {
		defer token.leave()
	}

	for fn := range t.work {
		fn()
	}
	close(t.done)
}

// run executes fn on the dedicated thread and blocks until it returns.
func (t *comThread) run(fn func()) {
	result := make(chan struct{})
	t.work <- func() {
		fn()
		close(result)
	}
	<-result
}

// stop shuts the dedicated thread down. Safe to call once; callers must
// not invoke run after stop.
func (t *comThread) stop() {
	close(t.work)
	<-t.done
}
