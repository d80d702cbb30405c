package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grafiz/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title string
	inits int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newTestRouter() (*Router, *stubScreen, *stubScreen, *stubScreen) {
	a := &stubScreen{title: "Overview"}
	b := &stubScreen{title: "Practice"}
	c := &stubScreen{title: "Progress"}
	r := New([]Tab{
		{Name: "Overview", Screen: a},
		{Name: "Practice", Screen: b},
		{Name: "Progress", Screen: c},
	})
	return r, a, b, c
}

func TestSelect(t *testing.T) {
	r, _, b, _ := newTestRouter()

	r.Select(1)

	if r.ActiveIndex() != 1 {
		t.Errorf("expected active index 1, got %d", r.ActiveIndex())
	}
	if r.Active().Title() != "Practice" {
		t.Errorf("expected active 'Practice', got %q", r.Active().Title())
	}
	if b.inits != 1 {
		t.Error("expected Init() to run on selected screen")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	r, _, _, _ := newTestRouter()

	r.Select(7)
	r.Select(-1)

	if r.ActiveIndex() != 0 {
		t.Errorf("expected active index 0, got %d", r.ActiveIndex())
	}
}

func TestSelectSameTabSkipsInit(t *testing.T) {
	r, a, _, _ := newTestRouter()

	r.Select(0)

	if a.inits != 0 {
		t.Error("re-selecting the active tab must not re-run Init()")
	}
}

func TestNextPrevWrap(t *testing.T) {
	r, _, _, _ := newTestRouter()

	r.Next()
	r.Next()
	r.Next()
	if r.ActiveIndex() != 0 {
		t.Errorf("expected wrap to 0, got %d", r.ActiveIndex())
	}

	r.Prev()
	if r.ActiveIndex() != 2 {
		t.Errorf("expected wrap back to 2, got %d", r.ActiveIndex())
	}
}

func TestSelectTabMsg(t *testing.T) {
	r, _, _, c := newTestRouter()

	r.Update(SelectTabMsg{Index: 2})

	if r.Active().Title() != "Progress" {
		t.Errorf("expected active 'Progress', got %q", r.Active().Title())
	}
	if c.inits != 1 {
		t.Error("expected Init() to run via SelectTabMsg")
	}
}

func TestNames(t *testing.T) {
	r, _, _, _ := newTestRouter()

	names := r.Names()
	if len(names) != 3 || names[0] != "Overview" || names[2] != "Progress" {
		t.Errorf("unexpected names: %v", names)
	}
}
