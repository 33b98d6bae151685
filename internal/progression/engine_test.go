package progression

import (
	"errors"
	"testing"

	"github.com/mathcoach-dev/mathcoach/internal/catalog"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
)

// testCatalog has algebra (3 levels) followed by geometry (2 levels).
const testCatalogDoc = `{
	"algebra": {
		"description": "Equations",
		"niveaux": {
			"1": {"name": "Linear", "objectives": ["solve"], "example_functions": ["3x+5=17"]},
			"2": {"name": "Systems", "objectives": ["solve"], "example_functions": ["x+y=7"]},
			"3": {"name": "Quadratics", "objectives": ["roots"], "example_functions": ["x^2-5x+6=0"]}
		}
	},
	"geometry": {
		"description": "Vectors",
		"niveaux": {
			"1": {"name": "Vectors", "objectives": ["compute"], "example_functions": ["A(1,2)"]},
			"2": {"name": "Scalar product", "objectives": ["dot"], "example_functions": ["u.v"]}
		}
	}
}`

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogDoc))
	if err != nil {
		t.Fatalf("catalog parse error: %v", err)
	}
	return NewEngine(cat)
}

func newProfile(objective string, level int) *profile.Profile {
	return &profile.Profile{
		StudentID:        "test",
		Level:            level,
		CurrentObjective: objective,
	}
}

func TestInitObjective_PointsAtFirstKey(t *testing.T) {
	e := testEngine(t)
	p := &profile.Profile{StudentID: "test"}

	e.InitObjective(p)

	if p.CurrentObjective != "algebra" {
		t.Errorf("CurrentObjective = %q, want algebra", p.CurrentObjective)
	}
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
}

func TestInitObjective_EmptyCatalog(t *testing.T) {
	e := NewEngine(catalog.Empty())
	p := &profile.Profile{StudentID: "test"}

	e.InitObjective(p)

	if p.CurrentObjective != "" {
		t.Errorf("CurrentObjective = %q, want empty", p.CurrentObjective)
	}
}

func TestAdvance_LevelUpWithinObjective(t *testing.T) {
	e := testEngine(t)
	p := newProfile("algebra", 1)

	adv, err := e.Advance(p)
	if err != nil {
		t.Fatalf("Advance() error: %v", err)
	}

	if !adv.LevelUp {
		t.Error("expected LevelUp")
	}
	if p.Level != 2 || p.CurrentObjective != "algebra" {
		t.Errorf("after advance: level=%d objective=%q, want 2/algebra", p.Level, p.CurrentObjective)
	}
	if len(p.ObjectivesCompleted) != 0 {
		t.Errorf("ObjectivesCompleted = %v, want empty", p.ObjectivesCompleted)
	}
}

func TestAdvance_CrossesIntoNextObjective(t *testing.T) {
	e := testEngine(t)
	p := newProfile("algebra", 3) // top level of algebra

	adv, err := e.Advance(p)
	if err != nil {
		t.Fatalf("Advance() error: %v", err)
	}

	if adv.ObjectiveCompleted != "algebra" || adv.NextObjective != "geometry" {
		t.Errorf("advancement = %+v", adv)
	}
	if p.CurrentObjective != "geometry" || p.Level != 1 {
		t.Errorf("after advance: level=%d objective=%q, want 1/geometry", p.Level, p.CurrentObjective)
	}
	if len(p.ObjectivesCompleted) != 1 || p.ObjectivesCompleted[0] != "algebra" {
		t.Errorf("ObjectivesCompleted = %v, want [algebra]", p.ObjectivesCompleted)
	}
}

func TestAdvance_MasteryIsIdempotent(t *testing.T) {
	e := testEngine(t)
	p := newProfile("geometry", 2) // last level of last objective
	p.ObjectivesCompleted = []string{"algebra"}

	for i := 0; i < 3; i++ {
		adv, err := e.Advance(p)
		if err != nil {
			t.Fatalf("Advance() #%d error: %v", i+1, err)
		}
		if !adv.Mastery {
			t.Fatalf("Advance() #%d: expected mastery", i+1)
		}
		if p.CurrentObjective != "geometry" || p.Level != 2 {
			t.Fatalf("Advance() #%d mutated profile: level=%d objective=%q", i+1, p.Level, p.CurrentObjective)
		}
		if len(p.ObjectivesCompleted) != 1 {
			t.Fatalf("Advance() #%d: ObjectivesCompleted = %v", i+1, p.ObjectivesCompleted)
		}
	}
}

func TestAdvance_NoDuplicateCompletedKeys(t *testing.T) {
	e := testEngine(t)
	p := newProfile("algebra", 3)
	p.ObjectivesCompleted = []string{"algebra"} // already recorded (e.g. after a reset)

	if _, err := e.Advance(p); err != nil {
		t.Fatalf("Advance() error: %v", err)
	}
	if len(p.ObjectivesCompleted) != 1 {
		t.Errorf("ObjectivesCompleted = %v, want exactly one algebra entry", p.ObjectivesCompleted)
	}
}

func TestAdvance_LevelBoundsInvariant(t *testing.T) {
	e := testEngine(t)
	p := newProfile("algebra", 1)

	// Drive the profile through every completed transition to mastery.
	for i := 0; i < 10; i++ {
		adv, err := e.Advance(p)
		if err != nil {
			t.Fatalf("Advance() error: %v", err)
		}
		maxLevel := e.Catalog().LevelCount(p.CurrentObjective)
		if p.Level < 1 || p.Level > maxLevel {
			t.Fatalf("level invariant violated: level=%d max=%d objective=%q", p.Level, maxLevel, p.CurrentObjective)
		}
		if adv.Mastery {
			return
		}
	}
	t.Fatal("never reached mastery")
}

func TestAdvance_UnknownObjective(t *testing.T) {
	e := testEngine(t)
	p := newProfile("calculus", 1)

	_, err := e.Advance(p)
	var notFound *ErrObjectiveNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("Advance() error = %v, want ErrObjectiveNotFound", err)
	}
	if notFound.Key != "calculus" {
		t.Errorf("Key = %q, want calculus", notFound.Key)
	}
}

func TestAdvance_LevelOutOfRange(t *testing.T) {
	e := testEngine(t)
	p := newProfile("algebra", 7)

	_, err := e.Advance(p)
	var notFound *ErrLevelNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("Advance() error = %v, want ErrLevelNotFound", err)
	}
}

func TestResolve(t *testing.T) {
	e := testEngine(t)

	obj, info, err := e.Resolve(newProfile("algebra", 2))
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if obj.Description != "Equations" {
		t.Errorf("Description = %q", obj.Description)
	}
	if info.Name != "Systems" {
		t.Errorf("level Name = %q, want Systems", info.Name)
	}

	if _, _, err := e.Resolve(newProfile("calculus", 1)); err == nil {
		t.Error("expected error for unknown objective")
	}
	if _, _, err := e.Resolve(newProfile("algebra", 9)); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestAtMastery(t *testing.T) {
	e := testEngine(t)

	if e.AtMastery(newProfile("algebra", 3)) {
		t.Error("algebra level 3 is not mastery: geometry follows")
	}
	if e.AtMastery(newProfile("geometry", 1)) {
		t.Error("geometry level 1 is not mastery")
	}
	if !e.AtMastery(newProfile("geometry", 2)) {
		t.Error("geometry level 2 should be mastery")
	}
}
