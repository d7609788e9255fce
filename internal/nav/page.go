package nav

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/flowchat/internal/bus"
)

// Page is a top-level screen of the app.
type Page string

const (
	Booting  Page = "BOOTING"
	Auth     Page = "AUTH"
	Chats    Page = "CHATS"
	Settings Page = "SETTINGS"
)

// validTransitions defines allowed page changes.
var validTransitions = map[Page][]Page{
	Booting:  {Auth, Chats},
	Auth:     {Chats},
	Chats:    {Settings, Auth},
	Settings: {Chats, Auth},
}

// Machine tracks the current page and enforces navigation rules.
type Machine struct {
	mu      sync.RWMutex
	current Page
	bus     *bus.Bus
}

// NewMachine creates a new machine starting on the Booting page.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Booting,
		bus:     b,
	}
}

// Current returns the current page.
func (m *Machine) Current() Page {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Go moves to page to. Staying on the current page is a no-op.
func (m *Machine) Go(to Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == to {
		return nil
	}
	if !slices.Contains(validTransitions[m.current], to) {
		return fmt.Errorf("invalid navigation from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.bus.Emit(bus.KindPageChanged, Change{From: from, To: to})
	return nil
}

// Change is the payload for page change events.
type Change struct {
	From Page
	To   Page
}
