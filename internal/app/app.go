package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/router"
	"github.com/mathcoach-dev/mathcoach/internal/screen"
	"github.com/mathcoach-dev/mathcoach/internal/screens/home"
	"github.com/mathcoach-dev/mathcoach/internal/screens/welcome"
	sess "github.com/mathcoach-dev/mathcoach/internal/session"
	"github.com/mathcoach-dev/mathcoach/internal/ui/layout"
)

// Options carry the wired collaborators into the TUI.
type Options struct {
	Deps sess.Deps
}

// activeProfile is shared between model copies so the header can show the
// student picked on the welcome screen.
type activeProfile struct {
	p *profile.Profile
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	active *activeProfile
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	active := &activeProfile{}
	welcomeScreen := welcome.New(opts.Deps.Profiles, func(p *profile.Profile) screen.Screen {
		active.p = p
		return home.New(opts.Deps, p)
	})
	return AppModel{
		router: router.New(welcomeScreen),
		opts:   opts,
		active: active,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that run their own quit confirmation consume Esc.
			if _, handles := m.router.Active().(escConsumer); !handles && m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escConsumer marks screens that handle the Esc key themselves instead of
// the default back navigation.
type escConsumer interface {
	ConsumesEsc()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	studentName := ""
	level := 0
	if m.active.p != nil {
		studentName = m.active.p.Name
		level = m.active.p.Level
	}
	header := layout.RenderHeader(title, studentName, level, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
