// Package pool caches open device connections keyed by device identity, so
// repeated property access on the same camera does not reopen its filter
// graph every call.
package pool

import (
	"sync"

	"github.com/allanhanan/duvc-ctl/core"
	"github.com/allanhanan/duvc-ctl/internal/platform"
)

// Option configures a Pool at construction.
type Option func(*Pool)

// WithMaxEntries bounds the number of connections the pool holds at once;
// 0 (the default) means unbounded. Eviction is not LRU — Acquire simply
// refuses to cache a new connection past the limit, and the caller still
// gets a usable connection, just an uncached one.
func WithMaxEntries(n int) Option {
	return func(p *Pool) { p.maxEntries = n }
}

// Pool caches platform.Connection values by core.Device.Key(). Entries are
// revalidated on every Acquire; a cached connection that has gone invalid
// is dropped and replaced rather than returned stale.
type Pool struct {
	bridge     platform.Bridge
	maxEntries int

	mu      sync.Mutex
	entries map[string]platform.Connection
}

// New constructs a Pool backed by bridge.
func New(bridge platform.Bridge, opts ...Option) *Pool {
	p := &Pool{
		bridge:  bridge,
		entries: make(map[string]platform.Connection),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire returns a cached connection for dev if one exists and is still
// valid, otherwise opens a new one. A newly-opened connection is cached
// unless the pool is at its entry limit, in which case it is still
// returned uncached.
func (p *Pool) Acquire(dev core.Device) (platform.Connection, *core.Error) {
	key := dev.Key()

	p.mu.Lock()
	if conn, ok := p.entries[key]; ok {
		if conn.IsValid() {
			p.mu.Unlock()
			return conn, nil
		}
		conn.Close()
		delete(p.entries, key)
	}
	p.mu.Unlock()

	conn, err := p.bridge.CreateConnection(dev)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	if p.maxEntries == 0 || len(p.entries) < p.maxEntries {
		p.entries[key] = conn
	}
	p.mu.Unlock()

	return conn, nil
}

// Release drops and closes any cached connection for dev. Acquiring dev
// again afterward opens a fresh connection.
func (p *Pool) Release(dev core.Device) {
	key := dev.Key()

	p.mu.Lock()
	conn, ok := p.entries[key]
	delete(p.entries, key)
	p.mu.Unlock()

	if ok {
		conn.Close()
	}
}

// Clear drops and closes every cached connection.
func (p *Pool) Clear() {
	p.mu.Lock()
	entries := p.entries
	p.entries = make(map[string]platform.Connection)
	p.mu.Unlock()

	for _, conn := range entries {
		conn.Close()
	}
}

// Len reports the number of currently cached connections.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
