package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jobdeck/jobdeck/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobdeck",
	Short: "Job board client for candidates and employers",
	Long: `Jobdeck is a CLI client for the job board. Candidates browse and search
postings, save jobs, submit applications and track their progress. Employers
manage postings and review incoming applications.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application := app.GetAppFromContext(cmd.Context()); application != nil {
			application.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// requireApp pulls the initialized container out of the command context.
func requireApp(cmd *cobra.Command) (*app.App, error) {
	application := app.GetAppFromContext(cmd.Context())
	if application == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return application, nil
}
