// Package progression implements the student progression state machine:
// the bounded attempt loop for a single exercise, and level/objective
// advancement over the objective catalog.
package progression

import (
	"fmt"

	"github.com/mathcoach-dev/mathcoach/internal/catalog"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
)

// ErrObjectiveNotFound reports a profile objective missing from the catalog.
// Fatal for the session: progression cannot be defaulted.
type ErrObjectiveNotFound struct {
	Key string
}

func (e *ErrObjectiveNotFound) Error() string {
	return fmt.Sprintf("objective %q not found in catalog", e.Key)
}

// ErrLevelNotFound reports a profile level missing from its objective's
// level sequence. Fatal for the session.
type ErrLevelNotFound struct {
	Key   string
	Level int
}

func (e *ErrLevelNotFound) Error() string {
	return fmt.Sprintf("level %d not found for objective %q", e.Level, e.Key)
}

// Advancement describes what changed during a Completed transition.
type Advancement struct {
	// LevelUp is true when the level increased within the same objective.
	LevelUp bool

	// ObjectiveCompleted holds the objective key just completed, when the
	// transition crossed into a new objective.
	ObjectiveCompleted string

	// NextObjective is the new current objective after an objective
	// transition.
	NextObjective string

	// Mastery is true when the last level of the last objective has been
	// completed. The profile no longer advances; the caller decides what
	// to present.
	Mastery bool
}

// Engine computes progression transitions over a fixed catalog. It mutates
// the profile it is handed in place; the caller persists afterward.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an Engine bound to cat.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// InitObjective points a fresh profile at the first catalog objective.
// A profile keeps no objective when the catalog is empty.
func (e *Engine) InitObjective(p *profile.Profile) {
	if p.CurrentObjective != "" {
		return
	}
	if first, ok := e.catalog.FirstKey(); ok {
		p.CurrentObjective = first
		if p.Level == 0 {
			p.Level = 1
		}
	}
}

// Resolve returns the objective and level info the profile currently
// points at. It fails with ErrObjectiveNotFound / ErrLevelNotFound rather
// than defaulting, since a dangling pointer means the catalog and profile
// disagree.
func (e *Engine) Resolve(p *profile.Profile) (catalog.Objective, catalog.LevelInfo, error) {
	obj, ok := e.catalog.Objective(p.CurrentObjective)
	if !ok {
		return catalog.Objective{}, catalog.LevelInfo{}, &ErrObjectiveNotFound{Key: p.CurrentObjective}
	}
	info, ok := e.catalog.LevelInfo(p.CurrentObjective, p.Level)
	if !ok {
		return catalog.Objective{}, catalog.LevelInfo{}, &ErrLevelNotFound{Key: p.CurrentObjective, Level: p.Level}
	}
	return obj, info, nil
}

// Advance moves the profile forward after a completed exercise:
//
//   - below the objective's top level: level += 1
//   - at the top level with a following objective: record the completion,
//     move to the next objective at level 1
//   - at the top level of the last objective: terminal mastery state,
//     the profile is left unchanged and repeated calls stay idempotent
func (e *Engine) Advance(p *profile.Profile) (*Advancement, error) {
	maxLevel := e.catalog.LevelCount(p.CurrentObjective)
	if maxLevel == 0 {
		return nil, &ErrObjectiveNotFound{Key: p.CurrentObjective}
	}
	if p.Level < 1 || p.Level > maxLevel {
		return nil, &ErrLevelNotFound{Key: p.CurrentObjective, Level: p.Level}
	}

	if p.Level < maxLevel {
		p.Level++
		return &Advancement{LevelUp: true}, nil
	}

	next, ok := e.catalog.NextKey(p.CurrentObjective)
	if !ok {
		return &Advancement{Mastery: true}, nil
	}

	completed := p.CurrentObjective
	if !p.HasCompleted(completed) {
		p.ObjectivesCompleted = append(p.ObjectivesCompleted, completed)
	}
	p.CurrentObjective = next
	p.Level = 1

	return &Advancement{
		ObjectiveCompleted: completed,
		NextObjective:      next,
	}, nil
}

// AtMastery reports whether the profile sits at the last level of the last
// catalog objective.
func (e *Engine) AtMastery(p *profile.Profile) bool {
	maxLevel := e.catalog.LevelCount(p.CurrentObjective)
	if maxLevel == 0 || p.Level != maxLevel {
		return false
	}
	_, hasNext := e.catalog.NextKey(p.CurrentObjective)
	return !hasNext
}
