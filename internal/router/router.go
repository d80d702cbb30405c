package router

import (
	"github.com/abhisek/grafiz/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// SelectTabMsg requests the router to switch to the tab at Index.
type SelectTabMsg struct {
	Index int
}

// Tab pairs a screen with its tab bar label.
type Tab struct {
	Name   string
	Screen screen.Screen
}

// Router manages a fixed set of tabs with one active screen.
type Router struct {
	tabs   []Tab
	active int
}

// New creates a Router over the given tabs. The first tab is active.
func New(tabs []Tab) *Router {
	return &Router{tabs: tabs}
}

// Select switches to the tab at index i and re-runs its Init so the
// screen refreshes its data. Out-of-range indexes are ignored.
func (r *Router) Select(i int) tea.Cmd {
	if i < 0 || i >= len(r.tabs) || i == r.active {
		return nil
	}
	r.active = i
	return r.tabs[i].Screen.Init()
}

// Next cycles to the following tab, wrapping around.
func (r *Router) Next() tea.Cmd {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.Select((r.active + 1) % len(r.tabs))
}

// Prev cycles to the previous tab, wrapping around.
func (r *Router) Prev() tea.Cmd {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.Select((r.active + len(r.tabs) - 1) % len(r.tabs))
}

// Active returns the currently selected screen.
func (r *Router) Active() screen.Screen {
	if len(r.tabs) == 0 {
		return nil
	}
	return r.tabs[r.active].Screen
}

// ActiveIndex returns the index of the selected tab.
func (r *Router) ActiveIndex() int {
	return r.active
}

// Names returns the tab labels in order.
func (r *Router) Names() []string {
	names := make([]string, len(r.tabs))
	for i, t := range r.tabs {
		names[i] = t.Name
	}
	return names
}

// Update forwards a message to the active screen and handles tab
// switch messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(SelectTabMsg); ok {
		return r.Select(m.Index)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.tabs[r.active].Screen = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
