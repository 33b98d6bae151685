package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathcoach-dev/mathcoach/internal/catalog"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/screen"
	sess "github.com/mathcoach-dev/mathcoach/internal/session"
	"github.com/mathcoach-dev/mathcoach/internal/ui/components"
	"github.com/mathcoach-dev/mathcoach/internal/ui/layout"
	"github.com/mathcoach-dev/mathcoach/internal/ui/theme"
)

// ProgressScreen renders the student's standing across the catalog.
type ProgressScreen struct {
	report *sess.Report
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New builds the progress report for the given profile.
func New(cat *catalog.Catalog, p *profile.Profile) *ProgressScreen {
	return &ProgressScreen{report: sess.BuildReport(cat, p)}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	r := s.report
	var b strings.Builder

	barWidth := min(width-20, 44)

	for _, obj := range r.Objectives {
		var marker, label string
		switch {
		case obj.Completed:
			marker = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
			label = lipgloss.NewStyle().Foreground(theme.Text).Render(obj.Description)
		case obj.Current:
			marker = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸")
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(obj.Description)
		default:
			marker = lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
			label = lipgloss.NewStyle().Foreground(theme.TextDim).Render(obj.Description)
		}

		b.WriteString(fmt.Sprintf(" %s %s\n", marker, label))

		percent := 0.0
		switch {
		case obj.Completed:
			percent = 1.0
		case obj.Current && obj.LevelCount > 0:
			percent = float64(obj.CurrentLevel-1) / float64(obj.LevelCount)
		}
		bar := components.NewProgressBar("", percent, false, barWidth)
		detail := ""
		if obj.Current {
			detail = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("  level %d/%d", obj.CurrentLevel, obj.LevelCount))
		}
		b.WriteString("   " + bar.View() + detail + "\n\n")
	}

	stats := fmt.Sprintf("Attempts: %d    Correct: %d    Accuracy: %.0f%%",
		r.Attempts, r.Correct, r.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + stats))
	b.WriteString("\n")

	if r.AtFinalLevel {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(" Final level — mastery is one exercise away!"))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
