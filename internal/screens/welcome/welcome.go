package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/router"
	"github.com/mathcoach-dev/mathcoach/internal/screen"
	"github.com/mathcoach-dev/mathcoach/internal/ui/components"
	"github.com/mathcoach-dev/mathcoach/internal/ui/layout"
	"github.com/mathcoach-dev/mathcoach/internal/ui/theme"
)

// mode tracks whether the student is picking an existing profile or
// typing a name for a new one.
type mode int

const (
	modePick mode = iota
	modeCreate
)

// WelcomeScreen lets the student pick an existing profile or create a new
// one, then transitions to the screen produced by nextFactory.
type WelcomeScreen struct {
	profiles    *profile.Store
	nextFactory func(p *profile.Profile) screen.Screen

	mode      mode
	summaries []profile.Summary
	menu      components.Menu
	nameInput components.TextInput
	errMsg    string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen over the given profile store.
func New(profiles *profile.Store, nextFactory func(p *profile.Profile) screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		profiles:    profiles,
		nextFactory: nextFactory,
		nameInput:   components.NewTextInput("Your name...", 40),
	}

	summaries, err := profiles.List()
	if err != nil {
		w.errMsg = err.Error()
	}
	w.summaries = summaries

	if len(summaries) == 0 {
		w.mode = modeCreate
	} else {
		w.menu = components.NewMenu(w.menuItems())
	}
	return w
}

func (w *WelcomeScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(w.summaries)+1)
	for _, s := range w.summaries {
		sum := s
		label := fmt.Sprintf("%s  (level %d)", sum.Name, sum.Level)
		if sum.Name == "" {
			label = fmt.Sprintf("Student %s  (level %d)", sum.StudentID, sum.Level)
		}
		items = append(items, components.MenuItem{
			Label:  label,
			Action: func() tea.Cmd { return w.open(sum.StudentID) },
		})
	}
	items = append(items, components.MenuItem{
		Label: "New student",
		Action: func() tea.Cmd {
			w.mode = modeCreate
			return w.nameInput.Init()
		},
	})
	return items
}

func (w *WelcomeScreen) open(id string) tea.Cmd {
	p, err := w.profiles.Load(id)
	if err != nil {
		w.errMsg = err.Error()
		return nil
	}
	next := w.nextFactory(p)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) create(name string) tea.Cmd {
	p, err := w.profiles.Create(name)
	if err != nil {
		w.errMsg = err.Error()
		return nil
	}
	next := w.nextFactory(p)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	if w.mode == modeCreate {
		return w.nameInput.Init()
	}
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.mode == modeCreate {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch w.mode {
	case modeCreate:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter":
				name := w.nameInput.Value()
				if name == "" {
					return w, nil
				}
				return w, w.create(name)
			case "esc":
				// Back to the picker when there is one to go back to.
				if len(w.summaries) > 0 {
					w.mode = modePick
					return w, nil
				}
			}
		}
		var cmd tea.Cmd
		w.nameInput, cmd = w.nameInput.Update(msg)
		return w, cmd

	default:
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	if w.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
		sections = append(sections, "")
	}

	switch w.mode {
	case modeCreate:
		prompt := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("What is your name?")
		sections = append(sections, prompt, "", w.nameInput.View())

	default:
		prompt := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Who is practicing today?")
		sections = append(sections, prompt, "", w.menu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
