package session

import (
	"github.com/mathcoach-dev/mathcoach/internal/catalog"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
)

// ObjectiveStatus is one row of a progress report.
type ObjectiveStatus struct {
	Key         string
	Description string
	LevelCount  int

	// Completed, Current, Locked are mutually exclusive.
	Completed bool
	Current   bool
	Locked    bool

	// CurrentLevel is set on the current objective only.
	CurrentLevel int
}

// Report summarizes a student's standing across the whole catalog.
type Report struct {
	StudentID  string
	Name       string
	Objectives []ObjectiveStatus
	Attempts   int
	Correct    int
	Accuracy   float64

	// AtFinalLevel is true when the student sits at the last level of the
	// last objective, the position from which mastery is earned.
	AtFinalLevel bool
}

// BuildReport computes the progress report for a profile against the
// catalog. Objectives before the current one (or in ObjectivesCompleted)
// count as completed; later ones are locked.
func BuildReport(cat *catalog.Catalog, p *profile.Profile) *Report {
	r := &Report{
		StudentID: p.StudentID,
		Name:      p.Name,
		Attempts:  len(p.LearningHistory),
		Correct:   p.CorrectCount(),
		Accuracy:  p.Accuracy(),
	}

	reachedCurrent := false
	for _, key := range cat.Keys() {
		obj, _ := cat.Objective(key)
		st := ObjectiveStatus{
			Key:         key,
			Description: obj.Description,
			LevelCount:  cat.LevelCount(key),
		}

		switch {
		case key == p.CurrentObjective:
			st.Current = true
			st.CurrentLevel = p.Level
			reachedCurrent = true
		case p.HasCompleted(key) || !reachedCurrent:
			st.Completed = true
		default:
			st.Locked = true
		}

		r.Objectives = append(r.Objectives, st)
	}

	if n := len(r.Objectives); n > 0 {
		last := r.Objectives[n-1]
		r.AtFinalLevel = last.Current && p.Level == last.LevelCount
	}
	return r
}
