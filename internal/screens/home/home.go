package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/router"
	"github.com/mathcoach-dev/mathcoach/internal/screen"
	"github.com/mathcoach-dev/mathcoach/internal/screens/history"
	"github.com/mathcoach-dev/mathcoach/internal/screens/progress"
	sessionscreen "github.com/mathcoach-dev/mathcoach/internal/screens/session"
	sess "github.com/mathcoach-dev/mathcoach/internal/session"
	"github.com/mathcoach-dev/mathcoach/internal/ui/components"
	"github.com/mathcoach-dev/mathcoach/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps    sess.Deps
	profile *profile.Profile
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen for the given student.
func New(deps sess.Deps, p *profile.Profile) *HomeScreen {
	h := &HomeScreen{
		deps:    deps,
		profile: p,
	}

	items := []components.MenuItem{
		{Label: "START PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(deps, p),
				}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: progress.New(deps.Engine.Catalog(), p),
				}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(p)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Profile exposes the active student for the application header.
func (h *HomeScreen) Profile() *profile.Profile {
	return h.profile
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	greeting := "Ready to practice?"
	if h.profile.Name != "" {
		greeting = fmt.Sprintf("Hello, %s! Ready to practice?", h.profile.Name)
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(greeting))
	sections = append(sections, "")

	// Current standing.
	if obj, level, err := h.deps.Engine.Resolve(h.profile); err == nil {
		standing := fmt.Sprintf("%s — level %d: %s", obj.Description, h.profile.Level, level.Name)
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(standing))
	}
	if n := len(h.profile.LearningHistory); n > 0 {
		stats := fmt.Sprintf("%d attempts, %.0f%% correct", n, h.profile.Accuracy()*100)
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(stats))
	}
	sections = append(sections, "", h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
