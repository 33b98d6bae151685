package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <student-id>",
	Short: "Reset a student's progression to the beginning",
	Long:  "Reset puts the student back at the first objective, level 1. The learning history is append-only and is kept, as is the rest of the profile.",
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

		// Position only: history and completed objectives are records of
		// what happened, not state to rewind.
		p.CurrentObjective = ""
		p.Level = 1

		if err := profiles.Save(p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Reset %s to the start of the program.\n", args[0])
		return nil
	},
}
