package cmd

import (
	"testing"
	"time"

	"github.com/mathcoach-dev/mathcoach/internal/profile"
)

func TestReset_RewindsPositionKeepsHistory(t *testing.T) {
	dir := t.TempDir()
	profiles, err := profile.NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	p, err := profiles.Create("Ada")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	p.CurrentObjective = "geometry"
	p.Level = 2
	p.ObjectivesCompleted = []string{"algebra"}
	p.LearningHistory = []profile.AttemptRecord{
		{Exercise: "Solve 3x + 5 = 17", Answer: "x = 4", Correct: true, Timestamp: time.Now(), Attempt: 1},
	}
	if err := profiles.Save(p); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	rootCmd.SetArgs([]string{"reset", p.StudentID, "--profiles", dir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got, err := profiles.Load(p.StudentID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.CurrentObjective != "" || got.Level != 1 {
		t.Errorf("position not rewound: %s/%d", got.CurrentObjective, got.Level)
	}
	if len(got.LearningHistory) != 1 {
		t.Errorf("learning history must survive a reset, got %d records", len(got.LearningHistory))
	}
	if len(got.ObjectivesCompleted) != 1 || got.ObjectivesCompleted[0] != "algebra" {
		t.Errorf("completed objectives must survive a reset, got %v", got.ObjectivesCompleted)
	}
}
