package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/screen"
	"github.com/mathcoach-dev/mathcoach/internal/ui/layout"
	"github.com/mathcoach-dev/mathcoach/internal/ui/theme"
)

// maxRows caps how many attempts are shown, newest first.
const maxRows = 20

// HistoryScreen lists the student's recent attempts.
type HistoryScreen struct {
	records []profile.AttemptRecord
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen from the profile's learning history.
func New(p *profile.Profile) *HistoryScreen {
	return &HistoryScreen{records: p.LearningHistory}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.records) == 0 {
		content := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No attempts yet — start a practice session!")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var b strings.Builder
	maxLen := min(width-24, 60)

	start := len(s.records) - maxRows
	if start < 0 {
		start = 0
	}
	// Newest first.
	for i := len(s.records) - 1; i >= start; i-- {
		rec := s.records[i]

		marker := theme.Incorrect.Render("✗")
		if rec.Correct {
			marker = theme.Correct.Render("✓")
		}

		text := rec.Exercise
		if len(text) > maxLen {
			text = text[:maxLen-3] + "..."
		}

		when := rec.Timestamp.Format("Jan 2 15:04")
		line := fmt.Sprintf(" %s  %s  %s",
			marker,
			lipgloss.NewStyle().Foreground(theme.Text).Render(text),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(when))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if start > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf(" ...and %d earlier", start)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
