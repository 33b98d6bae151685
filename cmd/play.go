package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mathcoach-dev/mathcoach/internal/app"
	"github.com/mathcoach-dev/mathcoach/internal/coaching"
	"github.com/mathcoach-dev/mathcoach/internal/config"
	"github.com/mathcoach-dev/mathcoach/internal/evaluation"
	"github.com/mathcoach-dev/mathcoach/internal/exercise"
	"github.com/mathcoach-dev/mathcoach/internal/extract"
	"github.com/mathcoach-dev/mathcoach/internal/llm"
	"github.com/mathcoach-dev/mathcoach/internal/memory"
	"github.com/mathcoach-dev/mathcoach/internal/progression"
	"github.com/mathcoach-dev/mathcoach/internal/session"
	"github.com/mathcoach-dev/mathcoach/internal/store"
	"github.com/mathcoach-dev/mathcoach/internal/telemetry"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp wires every collaborator and starts the TUI. Also backs the bare
// `mathcoach` invocation.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	profiles, err := resolveProfileStore(cmd)
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}

	cat, err := resolveCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	deps := session.Deps{
		Profiles:  profiles,
		Engine:    progression.NewEngine(cat),
		Extractor: extract.New(),
		EventRepo: st.EventRepo(),
		Telemetry: telemetry.NewFromEnv(),
	}
	defer deps.Telemetry.Close()

	// LLM provider is optional — every service falls back to offline
	// behavior without one.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Exercises and feedback will use built-in fallbacks.")
	}
	deps.Exercises = exercise.NewService(provider, exercise.DefaultConfig())
	deps.Evaluator = evaluation.NewService(provider, evaluation.DefaultConfig())
	deps.Coach = coaching.NewService(provider, coaching.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.MemoryEnabled {
		mem, err := memory.New(ctx, memory.Config{
			Host:   cfg.MemoryHost,
			Scheme: cfg.MemoryScheme,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: session memory unavailable:", err)
		} else {
			deps.Memory = mem
		}
	}

	return app.Run(app.Options{Deps: deps})
}
