package session

import (
	"testing"

	"github.com/mathcoach-dev/mathcoach/internal/catalog"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(testCatalogJSON))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	return cat
}

func TestBuildReport_MidCatalog(t *testing.T) {
	cat := testCatalog(t)
	p := &profile.Profile{
		StudentID:           "s1",
		Name:                "Ada",
		CurrentObjective:    "geometry",
		Level:               1,
		ObjectivesCompleted: []string{"algebra"},
		LearningHistory: []profile.AttemptRecord{
			{Exercise: "3x + 5 = 17", Answer: "x = 4", Correct: true},
			{Exercise: "x^2 - 4 = 0", Answer: "x = 1", Correct: false},
		},
	}

	r := BuildReport(cat, p)
	if len(r.Objectives) != 2 {
		t.Fatalf("objective count = %d", len(r.Objectives))
	}

	algebra, geometry := r.Objectives[0], r.Objectives[1]
	if !algebra.Completed || algebra.Current || algebra.Locked {
		t.Errorf("algebra status = %+v", algebra)
	}
	if !geometry.Current || geometry.CurrentLevel != 1 {
		t.Errorf("geometry status = %+v", geometry)
	}
	if r.Attempts != 2 || r.Correct != 1 {
		t.Errorf("attempts/correct = %d/%d", r.Attempts, r.Correct)
	}
	if r.Accuracy != 0.5 {
		t.Errorf("accuracy = %v", r.Accuracy)
	}
	// Geometry has a single level, so the student is at the final position.
	if !r.AtFinalLevel {
		t.Error("expected AtFinalLevel")
	}
}

func TestBuildReport_FreshProfile(t *testing.T) {
	cat := testCatalog(t)
	p := &profile.Profile{StudentID: "s2", CurrentObjective: "algebra", Level: 1}

	r := BuildReport(cat, p)
	if !r.Objectives[0].Current {
		t.Errorf("algebra status = %+v", r.Objectives[0])
	}
	if !r.Objectives[1].Locked {
		t.Errorf("geometry status = %+v", r.Objectives[1])
	}
	if r.AtFinalLevel {
		t.Error("fresh profile reported at final level")
	}
	if r.Accuracy != 0 {
		t.Errorf("accuracy = %v", r.Accuracy)
	}
}

func TestBuildReport_LockedAfterCurrent(t *testing.T) {
	cat := testCatalog(t)
	p := &profile.Profile{StudentID: "s3", CurrentObjective: "algebra", Level: 2}

	r := BuildReport(cat, p)
	if r.Objectives[0].CurrentLevel != 2 {
		t.Errorf("current level = %d", r.Objectives[0].CurrentLevel)
	}
	if !r.Objectives[1].Locked {
		t.Errorf("geometry should be locked: %+v", r.Objectives[1])
	}
	// Still one objective to go.
	if r.AtFinalLevel {
		t.Error("unexpected AtFinalLevel")
	}
}
