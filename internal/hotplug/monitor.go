// Package hotplug delivers camera arrival/removal notifications to a
// single registered observer through a serial dispatcher, so events are
// always delivered in arrival order and a panicking callback cannot wedge
// the dispatcher.
package hotplug

import (
	"sync"

	"github.com/allanhanan/duvc-ctl/internal/logging"
)

var log = logging.For("hotplug")

// Event describes one device arrival or removal.
type Event struct {
	Added bool
	Path  string
}

// Callback receives hot-plug events in arrival order, one at a time.
type Callback func(Event)

// source is whatever platform-specific code feeds raw events in; on
// Windows that's the message-only window in windows.go, elsewhere it
// never fires.
type source interface {
	start(publish func(Event)) error
	stop()
}

// Monitor owns the platform source and the serial callback dispatcher. It
// holds at most one registered observer: registering a new callback
// replaces whatever was registered before it, it never stacks.
type Monitor struct {
	mu         sync.Mutex
	cb         Callback
	generation int

	events chan Event
	done   chan struct{}

	src     source
	started bool
}

// New constructs a Monitor. Call Start to begin receiving events.
func New() *Monitor {
	return &Monitor{
		events: make(chan Event, 32),
		done:   make(chan struct{}),
		src:    newPlatformSource(),
	}
}

// Start begins listening for device changes and starts the dispatcher
// goroutine. Calling Start twice is a no-op.
func (m *Monitor) Start() error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = true
	m.mu.Unlock()

	go m.dispatch()
	return m.src.start(m.publish)
}

// Stop tears down the platform source and the dispatcher.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return
	}
	m.started = false
	m.mu.Unlock()

	m.src.stop()
	close(m.events)
	<-m.done
}

// Register installs cb as the monitor's sole observer, replacing any
// callback registered before it. It returns an id for Unregister.
func (m *Monitor) Register(cb Callback) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.cb = cb
	return m.generation
}

// Unregister clears the registered callback if id matches the current
// registration; a stale or unknown id is a no-op.
func (m *Monitor) Unregister(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id == m.generation {
		m.cb = nil
	}
}

func (m *Monitor) publish(ev Event) {
	select {
	case m.events <- ev:
	default:
		log.Warningf("dropping hotplug event, dispatch queue full: %+v", ev)
	}
}

func (m *Monitor) dispatch() {
	defer close(m.done)
	for ev := range m.events {
		m.mu.Lock()
		cb := m.cb
		m.mu.Unlock()

		if cb != nil {
			invoke(cb, ev)
		}
	}
}

func invoke(cb Callback, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("hotplug callback panicked: %v", r)
		}
	}()
	cb(ev)
}
