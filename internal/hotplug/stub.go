//go:build !windows

package hotplug

// nullSource never fires; there is no non-Windows hot-plug backend.
type nullSource struct{}

func newPlatformSource() source { return nullSource{} }

func (nullSource) start(func(Event)) error { return nil }
func (nullSource) stop()                   {}
