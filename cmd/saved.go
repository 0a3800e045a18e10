package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved jobs",
	Long:  "Bookmark postings to revisit later. Only candidate accounts can save jobs.",
}

var listSavedCmd = &cobra.Command{
	Use:   "list",
	Short: "List your saved jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("list saved jobs", models.RoleCandidate); err != nil {
			return err
		}

		if err := application.SavedJobs.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load saved jobs: %w", err)
		}

		jobs := application.SavedJobs.Jobs()
		if len(jobs) == 0 {
			cmd.Println("No saved jobs. Save one with 'jobdeck saved add JOB-ID'")
			return nil
		}

		cmd.Println(titleStyle.Render("Saved Jobs"))
		for i, job := range jobs {
			cmd.Printf("\n%s %s\n", labelStyle.Render(fmt.Sprintf("%d.", i+1)), job.Title)
			cmd.Printf("   %s %s\n", labelStyle.Render("Company:"), job.CompanyName)
			if job.Location != "" {
				cmd.Printf("   %s %s\n", labelStyle.Render("Location:"), job.Location)
			}
			cmd.Printf("   %s %s\n", labelStyle.Render("ID:"), job.JobID)
			cmd.Printf("   %s %s\n", labelStyle.Render("Posted:"), humanize.Time(job.CreatedAt))
		}
		return nil
	},
}

var addSavedCmd = &cobra.Command{
	Use:   "add <job-id>",
	Short: "Save a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("save a job", models.RoleCandidate); err != nil {
			return err
		}

		if application.SavedJobs.IsSavedSync(args[0]) {
			cmd.Println("Job is already saved.")
			return nil
		}

		if _, err := application.SavedJobs.Save(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}
		cmd.Printf("✓ Saved job %s\n", args[0])
		return nil
	},
}

var removeSavedCmd = &cobra.Command{
	Use:   "remove <job-id>",
	Short: "Remove a saved job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("remove a saved job", models.RoleCandidate); err != nil {
			return err
		}

		if err := application.SavedJobs.Unsave(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to remove saved job: %w", err)
		}
		cmd.Printf("✓ Removed saved job %s\n", args[0])
		return nil
	},
}

var isSavedCmd = &cobra.Command{
	Use:   "check <job-id>",
	Short: "Check whether a job is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("check a saved job", models.RoleCandidate); err != nil {
			return err
		}

		saved, err := application.SavedJobs.IsSaved(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to check saved job: %w", err)
		}
		if saved {
			cmd.Println("★ Saved")
		} else {
			cmd.Println("Not saved")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(savedCmd)
	savedCmd.AddCommand(listSavedCmd)
	savedCmd.AddCommand(addSavedCmd)
	savedCmd.AddCommand(removeSavedCmd)
	savedCmd.AddCommand(isSavedCmd)
}
