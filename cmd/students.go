package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage student profiles",
}

var studentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List student profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := resolveProfileStore(cmd)
		if err != nil {
			return fmt.Errorf("open profile store: %w", err)
		}

		summaries, err := profiles.List()
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No student profiles yet. Run `mathcoach play` to create one.")
			return nil
		}

		fmt.Printf("%-18s  %-20s  %-16s  %-6s  %s\n",
			"ID", "Name", "Objective", "Level", "Last session")
		fmt.Println(strings.Repeat("─", 84))
		for _, s := range summaries {
			last := "never"
			if !s.LastSession.IsZero() {
				last = s.LastSession.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%-18s  %-20s  %-16s  %-6d  %s\n",
				s.StudentID, s.Name, s.CurrentObjective, s.Level, last)
		}
		return nil
	},
}

var studentsDeleteCmd = &cobra.Command{
	Use:   "delete <student-id>",
	Short: "Delete a student profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := resolveProfileStore(cmd)
		if err != nil {
			return fmt.Errorf("open profile store: %w", err)
		}
		if err := profiles.Delete(args[0]); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		fmt.Println("Deleted profile", args[0])
		return nil
	},
}

func init() {
	studentsCmd.AddCommand(studentsListCmd)
	studentsCmd.AddCommand(studentsDeleteCmd)
}
