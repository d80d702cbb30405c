package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grafiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is an optional interface for screens that consume raw
// typed text. While capturing, the app suppresses global shortcuts such
// as the number keys for tab switching.
type InputCapturer interface {
	CapturingInput() bool
}

// StatsInvalidatedMsg signals that new attempts were recorded and any
// cached header stats or reports should be reloaded.
type StatsInvalidatedMsg struct{}
