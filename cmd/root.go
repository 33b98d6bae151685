package cmd

import (
	"github.com/mathcoach-dev/mathcoach/internal/catalog"
	"github.com/mathcoach-dev/mathcoach/internal/config"
	"github.com/mathcoach-dev/mathcoach/internal/profile"
	"github.com/mathcoach-dev/mathcoach/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathcoach",
	Short: "AI math coach in the terminal",
	Long:  "MathCoach — terminal tutor that generates math exercises, evaluates answers, and walks students through a progression of learning objectives.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHCOACH_DB env var)")
	rootCmd.PersistentFlags().String("profiles", "", "Path to profile directory (overrides MATHCOACH_PROFILES env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(studentsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MATHCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveProfileStore opens the profile store using --profiles flag,
// then MATHCOACH_PROFILES, then the default directory next to the DB.
func resolveProfileStore(cmd *cobra.Command) (*profile.Store, error) {
	if p, _ := cmd.Flags().GetString("profiles"); p != "" {
		return profile.NewStore(p)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.ProfileDir != "" {
		return profile.NewStore(cfg.ProfileDir)
	}
	dir, err := store.DefaultProfileDir()
	if err != nil {
		return nil, err
	}
	return profile.NewStore(dir)
}

// resolveCatalog loads the objective catalog from MATHCOACH_CATALOG when
// set, falling back to the embedded one.
func resolveCatalog() (*catalog.Catalog, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.CatalogPath != "" {
		return catalog.Load(cfg.CatalogPath)
	}
	return catalog.Default(), nil
}
