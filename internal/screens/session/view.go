package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathcoach-dev/mathcoach/internal/progression"
	sess "github.com/mathcoach-dev/mathcoach/internal/session"
	"github.com/mathcoach-dev/mathcoach/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return s.renderWaiting(width, height, "Starting session...")
	}
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	switch s.state.Phase {
	case sess.PhaseObjective:
		return s.renderObjective(width, height)
	case sess.PhaseGenerating:
		return s.renderWaiting(width, height, "Generating an exercise...")
	case sess.PhaseAnswering:
		return s.renderAnswering(width, height)
	case sess.PhaseEvaluating:
		return s.renderWaiting(width, height, "Checking your answer...")
	case sess.PhaseFeedback:
		return s.renderFeedback(width, height)
	case sess.PhaseMastery:
		return s.renderMastery(width, height)
	}
	return ""
}

func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("End this session?") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your progress is already saved.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(content))
}

func (s *SessionScreen) renderWaiting(width, height int, label string) string {
	frame := spinnerFrames[s.spinnerTick%len(spinnerFrames)]
	content := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame) +
		"  " +
		lipgloss.NewStyle().Foreground(theme.Text).Render(label)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderObjective shows the objective/level card before the first exercise.
func (s *SessionScreen) renderObjective(width, height int) string {
	input, err := s.state.ExerciseInput()
	if err != nil {
		return renderError(width, height, err.Error())
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(input.ObjectiveDescription))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level %d — %s", input.Level, input.LevelName)))
	b.WriteString("\n\n")
	for _, obj := range input.LevelObjectives {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("• " + obj))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("press Enter for your first exercise"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}

func (s *SessionScreen) renderAnswering(width, height int) string {
	ex := s.state.CurrentExercise
	if ex == nil {
		return s.renderWaiting(width, height, "Generating an exercise...")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(ex.Statement))
	b.WriteString("\n\n")

	attempt := s.state.Loop.Attempts() + 1
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Attempt %d of %d", attempt, progression.MaxAttempts)))
	b.WriteString("\n")

	if s.lastHint != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Hint: " + s.lastHint))
		b.WriteString("\n")
	}
	if s.hintsDone {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("no more hints for this exercise"))
		b.WriteString("\n")
	}
	if s.extractFail {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Could not read an answer from that file — try again."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.input.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}

func (s *SessionScreen) renderFeedback(width, height int) string {
	eval := s.state.LastEvaluation
	if eval == nil {
		return ""
	}

	var b strings.Builder
	if eval.IsCorrect {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite."))
		if eval.ErrorType != "" {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("  (" + eval.ErrorType + ")"))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(eval.Feedback))
	b.WriteString("\n")

	if eval.DetailedExplanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(eval.DetailedExplanation))
		b.WriteString("\n")
	}

	// Full correction only once the loop is over and the answer stayed
	// wrong.
	loopDone := s.state.Loop != nil && s.state.Loop.Done()
	if !eval.IsCorrect && loopDone && eval.StepByStepCorrection != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Worked solution"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(eval.StepByStepCorrection))
		b.WriteString("\n")
		for _, rec := range eval.Recommendations {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("• " + rec))
			b.WriteString("\n")
		}
	}

	if adv := s.state.LastAdvancement; adv != nil {
		b.WriteString("\n")
		switch {
		case adv.ObjectiveCompleted != "":
			b.WriteString(theme.Correct.Render("Objective complete! On to the next one."))
		case adv.LevelUp:
			b.WriteString(theme.Correct.Render(fmt.Sprintf("Level up! Now at level %d.", s.state.Profile.Level)))
		}
		b.WriteString("\n")
	}

	if c := s.state.LastCoaching; c != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Coach"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(c.Motivation))
		b.WriteString("\n")
		if c.Tip != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Tip: " + c.Tip))
			b.WriteString("\n")
		}
	}

	if s.state.OfferSimilar {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("Try a similar exercise? (y/n)"))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}

func (s *SessionScreen) renderMastery(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Correct.Render("Congratulations!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("You have mastered every objective in the program."))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Come back any time to keep your skills sharp."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}
