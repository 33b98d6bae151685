package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mathcoach-dev/mathcoach/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <student-id>",
	Short: "Show a student's attempt statistics from the event log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		accuracy, err := repo.StudentAccuracy(ctx, studentID)
		if err != nil {
			return fmt.Errorf("query accuracy: %w", err)
		}
		byObjective, err := repo.AttemptsByObjective(ctx, studentID)
		if err != nil {
			return fmt.Errorf("query objectives: %w", err)
		}

		total := 0
		for _, o := range byObjective {
			total += o.Attempts
		}
		if total == 0 {
			fmt.Println("No attempts recorded for", studentID)
			return nil
		}

		fmt.Printf("Attempts: %d   Accuracy: %.0f%%\n\n", total, accuracy*100)

		fmt.Printf("%-24s  %8s  %8s  %9s\n", "Objective", "Attempts", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 56))
		for _, o := range byObjective {
			acc := 0.0
			if o.Attempts > 0 {
				acc = float64(o.Correct) / float64(o.Attempts)
			}
			fmt.Printf("%-24s  %8d  %8d  %8.0f%%\n",
				o.ObjectiveKey, o.Attempts, o.Correct, acc*100)
		}
		return nil
	},
}
