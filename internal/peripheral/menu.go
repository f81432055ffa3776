package peripheral

import "sync"

// MenuToggle tracks whether the navigation menu is expanded. Pages without a
// menu get a toggle that never opens.
type MenuToggle struct {
	mu      sync.Mutex
	present bool
	open    bool
}

// NewMenuToggle returns a closed toggle.
func NewMenuToggle(hasMenu bool) *MenuToggle {
	return &MenuToggle{present: hasMenu}
}

// Toggle flips the menu and returns the new state.
func (m *MenuToggle) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.present {
		m.open = !m.open
	}
	return m.open
}

// Open reports whether the menu is expanded.
func (m *MenuToggle) Open() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}
