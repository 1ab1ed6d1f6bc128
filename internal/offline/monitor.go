package offline

import (
	"log"
	"os"
	"sync"
)

// Monitor tracks connectivity transitions. It is purely event-driven:
// some outer event source (the HTTP hooks, a platform integration)
// reports state via Set, and registered callbacks fire on transitions.
// There is no polling.
type Monitor struct {
	mu        sync.Mutex
	online    bool
	onOnline  []func()
	onOffline []func()
	logger    *log.Logger
}

// NewMonitor creates a monitor with the given initial state.
func NewMonitor(initiallyOnline bool, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = log.New(os.Stderr, "[connectivity] ", log.LstdFlags)
	}
	return &Monitor{online: initiallyOnline, logger: logger}
}

// Online reports the last known connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// OnOnline registers a callback fired on each offline-to-online
// transition.
func (m *Monitor) OnOnline(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onOnline = append(m.onOnline, fn)
}

// OnOffline registers a callback fired on each online-to-offline
// transition.
func (m *Monitor) OnOffline(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onOffline = append(m.onOffline, fn)
}

// Set records a connectivity observation. Callbacks fire only on an
// actual transition; reporting the current state again is a no-op.
// Going offline takes no store action, it is informational only.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	var callbacks []func()
	if online {
		m.logger.Printf("Back online - synchronizing")
		callbacks = append(callbacks, m.onOnline...)
	} else {
		m.logger.Printf("Went offline - serving from local store")
		callbacks = append(callbacks, m.onOffline...)
	}
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
