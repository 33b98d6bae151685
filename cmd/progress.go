package cmd

import (
	"fmt"
	"strings"

	"github.com/mathcoach-dev/mathcoach/internal/session"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress <student-id>",
	Short: "Show a student's progress through the objectives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := resolveProfileStore(cmd)
		if err != nil {
			return fmt.Errorf("open profile store: %w", err)
		}
		p, err := profiles.Load(args[0])
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		cat, err := resolveCatalog()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		r := session.BuildReport(cat, p)

		name := r.Name
		if name == "" {
			name = r.StudentID
		}
		fmt.Printf("Progress for %s\n", name)
		fmt.Println(strings.Repeat("─", 64))

		for _, obj := range r.Objectives {
			switch {
			case obj.Completed:
				fmt.Printf("  ✓ %-40s  done\n", obj.Description)
			case obj.Current:
				fmt.Printf("  ▸ %-40s  level %d/%d\n",
					obj.Description, obj.CurrentLevel, obj.LevelCount)
			default:
				fmt.Printf("  · %-40s  locked\n", obj.Description)
			}
		}

		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("Attempts: %d   Correct: %d   Accuracy: %.0f%%\n",
			r.Attempts, r.Correct, r.Accuracy*100)
		if r.AtFinalLevel {
			fmt.Println("At the final level — mastery is one exercise away.")
		}
		return nil
	},
}
