package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/router"
	"github.com/mathcoach-dev/mathcoach/internal/screen"
	sess "github.com/mathcoach-dev/mathcoach/internal/session"
	"github.com/mathcoach-dev/mathcoach/internal/ui/layout"
	"github.com/mathcoach-dev/mathcoach/internal/ui/theme"
)

// SummaryScreen displays the recap of a finished session.
type SummaryScreen struct {
	state   *sess.State
	profile *profile.Profile
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. state may be nil when the session never
// got going.
func New(state *sess.State, p *profile.Profile) *SummaryScreen {
	return &SummaryScreen{state: state, profile: p}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	if s.state == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No exercises this time."))
		return b.String()
	}

	dur := time.Since(s.state.StartTime)
	mins := int(dur.Minutes())
	secs := int(dur.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	accuracy := 0.0
	if s.state.AttemptsMade > 0 {
		accuracy = float64(s.state.CorrectAnswers) / float64(s.state.AttemptsMade)
	}
	stats := fmt.Sprintf("Attempts: %d        Correct: %d        Accuracy: %.0f%%",
		s.state.AttemptsMade, s.state.CorrectAnswers, accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats))
	b.WriteString("\n\n")

	if s.state.LevelsGained > 0 || s.state.ObjectivesCompleted > 0 {
		gains := fmt.Sprintf("Levels gained: %d        Objectives completed: %d",
			s.state.LevelsGained, s.state.ObjectivesCompleted)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(gains))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}
