package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mathcoach-dev/mathcoach/internal/screen"
)

type fakeScreen struct {
	name     string
	initRuns int
	lastMsg  tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRuns++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

// wantActive fails the test unless the router's top screen matches name
// at the given depth.
func wantActive(t *testing.T, r *Router, depth int, name string) {
	t.Helper()
	if r.Depth() != depth {
		t.Fatalf("depth = %d, want %d", r.Depth(), depth)
	}
	if got := r.Active().Title(); got != name {
		t.Fatalf("active = %q, want %q", got, name)
	}
}

func TestPushAndPop(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	session := &fakeScreen{name: "session"}

	r.Push(session)
	wantActive(t, r, 2, "session")
	if session.initRuns != 1 {
		t.Errorf("Init ran %d times on push, want 1", session.initRuns)
	}

	r.Pop()
	wantActive(t, r, 1, "home")
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	// Popping the last screen must not empty the stack.
	r.Pop()
	r.Pop()
	wantActive(t, r, 1, "home")
}

func TestReplace(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "session"})

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)

	// Replace swaps in place: same depth, no back navigation to "session".
	wantActive(t, r, 2, "summary")
	if summary.initRuns != 1 {
		t.Errorf("Init ran %d times on replace, want 1", summary.initRuns)
	}
}

func TestUpdateHandlesNavigationMsgs(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	progress := &fakeScreen{name: "progress"}
	r.Update(PushScreenMsg{Screen: progress})
	wantActive(t, r, 2, "progress")
	if progress.initRuns != 1 {
		t.Errorf("Init ran %d times via PushScreenMsg, want 1", progress.initRuns)
	}

	summary := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})
	wantActive(t, r, 2, "summary")

	r.Update(PopScreenMsg{})
	wantActive(t, r, 1, "home")
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	session := &fakeScreen{name: "session"}
	r.Push(session)

	type pingMsg struct{}
	r.Update(pingMsg{})

	if _, ok := session.lastMsg.(pingMsg); !ok {
		t.Errorf("active screen got %T, want pingMsg", session.lastMsg)
	}
	if home.lastMsg != nil {
		t.Errorf("covered screen received %T, want no message", home.lastMsg)
	}
}
