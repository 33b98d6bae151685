package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/router"
	"github.com/mathcoach-dev/mathcoach/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct {
	p *profile.Profile
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome(t *testing.T) (*WelcomeScreen, *profile.Store) {
	t.Helper()
	store, err := profile.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	factory := func(p *profile.Profile) screen.Screen {
		return &stubScreen{p: p}
	}
	return New(store, factory), store
}

func TestEmptyStoreStartsInCreateMode(t *testing.T) {
	w, _ := newTestWelcome(t)
	if w.mode != modeCreate {
		t.Errorf("mode = %v, want create", w.mode)
	}
	view := w.View(80, 24)
	if !strings.Contains(view, "What is your name?") {
		t.Error("expected name prompt in view")
	}
}

func TestExistingProfilesStartInPickMode(t *testing.T) {
	store, err := profile.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Create("Ada"); err != nil {
		t.Fatalf("create: %v", err)
	}
	w := New(store, func(p *profile.Profile) screen.Screen {
		return &stubScreen{p: p}
	})

	if w.mode != modePick {
		t.Errorf("mode = %v, want pick", w.mode)
	}
	view := w.View(80, 24)
	if !strings.Contains(view, "Ada") {
		t.Error("expected profile name in picker view")
	}
	if !strings.Contains(view, "New student") {
		t.Error("expected new-student entry in picker view")
	}
}

func TestCreateTransitionsToNextScreen(t *testing.T) {
	w, store := newTestWelcome(t)

	cmd := w.create("Ada")
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	stub, ok := msg.Screen.(*stubScreen)
	if !ok {
		t.Fatalf("expected stubScreen, got %T", msg.Screen)
	}
	if stub.p.Name != "Ada" {
		t.Errorf("profile name = %q", stub.p.Name)
	}

	// Profile was persisted.
	summaries, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 {
		t.Errorf("profile count = %d", len(summaries))
	}
}

func TestOpenLoadsExistingProfile(t *testing.T) {
	w, store := newTestWelcome(t)
	p, err := store.Create("Grace")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cmd := w.open(p.StudentID)
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	stub := msg.Screen.(*stubScreen)
	if stub.p.StudentID != p.StudentID {
		t.Errorf("student id = %q, want %q", stub.p.StudentID, p.StudentID)
	}
}

func TestOpenMissingProfileShowsError(t *testing.T) {
	w, _ := newTestWelcome(t)
	if cmd := w.open("nope"); cmd != nil {
		t.Fatal("expected no transition for a missing profile")
	}
	if w.errMsg == "" {
		t.Error("expected an error message")
	}
}
