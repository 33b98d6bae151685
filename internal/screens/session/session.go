package session

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/router"
	"github.com/mathcoach-dev/mathcoach/internal/screen"
	"github.com/mathcoach-dev/mathcoach/internal/screens/summary"
	sess "github.com/mathcoach-dev/mathcoach/internal/session"
	"github.com/mathcoach-dev/mathcoach/internal/ui/components"
	"github.com/mathcoach-dev/mathcoach/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// filePrefix marks an answer that names a file to extract instead of
// typed text, e.g. "file:homework.pdf".
const filePrefix = "file:"

// SessionScreen drives one tutoring session.
type SessionScreen struct {
	deps    sess.Deps
	profile *profile.Profile
	state   *sess.State

	input       components.TextInput
	lastHint    string
	hintsDone   bool
	extractFail bool
	quitConfirm bool
	spinnerTick int
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// ConsumesEsc marks the screen as running its own quit confirmation, so
// the root model leaves Esc alone.
func (s *SessionScreen) ConsumesEsc() {}

// New creates a SessionScreen for the given student.
func New(deps sess.Deps, p *profile.Profile) *SessionScreen {
	return &SessionScreen{
		deps:    deps,
		profile: p,
		input:   components.NewTextInput("Type your answer, or file:<path>", 120),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.initSession(), s.input.Init())
}

func (s *SessionScreen) Title() string {
	return "Practice"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state == nil {
		return nil
	}
	switch s.state.Phase {
	case sess.PhaseObjective:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Quit"},
		}
	case sess.PhaseAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+H", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		}
	case sess.PhaseFeedback:
		if s.state.OfferSimilar {
			return []layout.KeyHint{
				{Key: "Y", Description: "Similar exercise"},
				{Key: "N", Description: "New exercise"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case sess.PhaseMastery:
		return []layout.KeyHint{
			{Key: "any key", Description: "Finish"},
		}
	}
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.state = msg.State
		return s, nil

	case exerciseReadyMsg:
		s.lastHint = ""
		s.hintsDone = false
		s.extractFail = false
		s.input.Reset()
		return s, s.input.Init()

	case attemptMsg:
		return s.handleAttempt(msg)

	case spinnerTickMsg:
		s.spinnerTick++
		if s.state != nil && (s.state.Phase == sess.PhaseGenerating || s.state.Phase == sess.PhaseEvaluating) {
			return s, spinnerCmd()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.answering() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) answering() bool {
	return s.state != nil && s.state.Phase == sess.PhaseAnswering && !s.quitConfirm
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, s.finish()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.state == nil {
		return s, nil
	}

	switch s.state.Phase {
	case sess.PhaseObjective:
		switch key {
		case "enter":
			return s, s.beginExercise()
		case "esc":
			s.quitConfirm = true
		}
		return s, nil

	case sess.PhaseAnswering:
		switch key {
		case "enter":
			answer := s.input.Value()
			if answer == "" {
				return s, nil
			}
			return s, s.submit(answer)
		case "ctrl+h":
			hint, ok := s.state.RequestHint()
			if ok {
				s.lastHint = hint
			} else {
				s.hintsDone = true
			}
			return s, nil
		case "esc":
			s.quitConfirm = true
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case sess.PhaseFeedback:
		if s.state.OfferSimilar {
			switch key {
			case "y", "Y":
				return s, s.beginSimilar()
			case "n", "N":
				return s, s.beginExercise()
			case "esc":
				s.quitConfirm = true
			}
			return s, nil
		}
		if key == "esc" {
			s.quitConfirm = true
			return s, nil
		}
		// Retry the same exercise or move on to the next one.
		if s.state.Loop != nil && !s.state.Loop.Done() {
			s.state.Phase = sess.PhaseAnswering
			s.input.Reset()
			return s, s.input.Init()
		}
		return s, s.beginExercise()

	case sess.PhaseMastery:
		return s, s.finish()
	}

	return s, nil
}

func (s *SessionScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		state, err := sess.New(context.Background(), s.profile, s.deps)
		return sessionReadyMsg{State: state, Err: err}
	}
}

func (s *SessionScreen) beginExercise() tea.Cmd {
	s.state.Phase = sess.PhaseGenerating
	return tea.Batch(
		func() tea.Msg {
			if err := s.state.BeginExercise(context.Background()); err != nil {
				return sessionReadyMsg{Err: err}
			}
			return exerciseReadyMsg{}
		},
		spinnerCmd(),
	)
}

func (s *SessionScreen) beginSimilar() tea.Cmd {
	s.state.Phase = sess.PhaseGenerating
	return tea.Batch(
		func() tea.Msg {
			s.state.BeginSimilarExercise(context.Background())
			return exerciseReadyMsg{}
		},
		spinnerCmd(),
	)
}

func (s *SessionScreen) submit(answer string) tea.Cmd {
	s.state.Phase = sess.PhaseEvaluating
	s.extractFail = false
	return tea.Batch(
		func() tea.Msg {
			if path, ok := strings.CutPrefix(answer, filePrefix); ok {
				res, extracted, err := s.state.SubmitFile(context.Background(), strings.TrimSpace(path))
				return attemptMsg{Result: res, Extracted: extracted, Err: err}
			}
			res, err := s.state.SubmitAnswer(context.Background(), answer)
			return attemptMsg{Result: res, Extracted: true, Err: err}
		},
		spinnerCmd(),
	)
}

func (s *SessionScreen) handleAttempt(msg attemptMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if !msg.Extracted {
		// Nothing usable in the file: re-prompt without consuming the
		// attempt.
		s.state.Phase = sess.PhaseAnswering
		s.extractFail = true
		s.input.Reset()
		return s, s.input.Init()
	}
	s.input.Reset()
	return s, nil
}

// finish ends the session and swaps in the summary screen.
func (s *SessionScreen) finish() tea.Cmd {
	if s.state != nil {
		s.state.End(context.Background())
	}
	sum := summary.New(s.state, s.profile)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
