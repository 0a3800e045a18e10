package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your dashboard",
	Long:  "Application statistics for candidates, posting and applicant statistics for employers",
	Example: `  jobdeck dashboard
  jobdeck dashboard --from 2026-08-01 --to 2026-08-29`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireAuth("view dashboard"); err != nil {
			return err
		}

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		if application.Session.HasRole(models.RoleEmployer) {
			stats, err := application.API.EmployerDashboard(cmd.Context(), from, to)
			if err != nil {
				return fmt.Errorf("failed to load dashboard: %w", err)
			}
			renderEmployerDashboard(cmd, stats)
			return nil
		}

		var start, end *time.Time
		if from != "" {
			t, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fmt.Errorf("invalid --from date, want YYYY-MM-DD: %w", err)
			}
			start = &t
		}
		if to != "" {
			t, err := time.Parse("2006-01-02", to)
			if err != nil {
				return fmt.Errorf("invalid --to date, want YYYY-MM-DD: %w", err)
			}
			end = &t
		}

		stats, err := application.API.CandidateDashboard(cmd.Context(), start, end)
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}
		renderCandidateDashboard(cmd, stats)
		return nil
	},
}

var myApplicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List your submitted applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("list applications", models.RoleCandidate); err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")
		if size <= 0 {
			size = application.Config.DefaultPageSize
		}

		resp, err := application.API.MyApplications(cmd.Context(), page, size)
		if err != nil {
			return fmt.Errorf("failed to load applications: %w", err)
		}
		if len(resp.Content) == 0 {
			cmd.Println("No applications yet.")
			return nil
		}

		cmd.Println(titleStyle.Render("My Applications"))
		for _, a := range resp.Content {
			cmd.Printf("\n%s %s at %s\n", labelStyle.Render(fmt.Sprintf("#%d", a.ID)), a.JobName, a.CompanyName)
			cmd.Printf("   %s %s\n", labelStyle.Render("Status:"), a.Status)
			cmd.Printf("   %s %s\n", labelStyle.Render("Applied:"), humanize.Time(a.CreatedAt))
		}
		cmd.Printf("\n%s page %d of %d, %d total\n",
			labelStyle.Render("Showing:"), resp.Number+1, resp.TotalPages, resp.TotalElements)
		return nil
	},
}

func renderCandidateDashboard(cmd *cobra.Command, stats *models.CandidateDashboardStats) {
	cmd.Println(titleStyle.Render("Candidate Dashboard"))
	cmd.Printf("%s %d\n", labelStyle.Render("Total applications:"), stats.TotalApplications)

	if len(stats.ApplicationsByStatus) > 0 {
		cmd.Println(labelStyle.Render("\nBy status:"))
		for _, status := range statusOrder {
			if count, ok := stats.ApplicationsByStatus[status]; ok {
				cmd.Printf("  %-13s %d\n", status, count)
			}
		}
	}

	if len(stats.RecentApplications) > 0 {
		cmd.Println(labelStyle.Render("\nRecent applications:"))
		for _, a := range stats.RecentApplications {
			cmd.Printf("  %s at %s (%s, %s)\n", a.JobTitle, a.CompanyName, a.Status, humanize.Time(a.AppliedAt))
		}
	}

	renderTrend(cmd, stats.ApplicationTrendByDate)
}

func renderEmployerDashboard(cmd *cobra.Command, stats *models.EmployerDashboardStats) {
	cmd.Println(titleStyle.Render("Employer Dashboard"))
	cmd.Printf("%s %d open, %d closed, %d total\n",
		labelStyle.Render("Jobs:"), stats.OpenJobs, stats.ClosedJobs, stats.TotalJobs)
	cmd.Printf("%s %d total, %d new, %d shortlisted, %d rejected\n",
		labelStyle.Render("Applications:"), stats.TotalApplications, stats.NewApplications,
		stats.ShortlistedApplications, stats.RejectedApplications)

	if len(stats.ApplicationStatusDistribution) > 0 {
		cmd.Println(labelStyle.Render("\nBy status:"))
		for _, status := range statusOrder {
			if count, ok := stats.ApplicationStatusDistribution[status]; ok {
				cmd.Printf("  %-13s %d\n", status, count)
			}
		}
	}

	if len(stats.TopJobs) > 0 {
		cmd.Println(labelStyle.Render("\nTop jobs:"))
		for _, j := range stats.TopJobs {
			cmd.Printf("  %s (%d applications)\n", j.Title, j.ApplicationCount)
		}
	}

	renderTrend(cmd, stats.ApplicationTrend)
}

var statusOrder = []string{
	models.StatusApplied,
	models.StatusUnderReview,
	models.StatusShortlisted,
	models.StatusRejected,
	models.StatusHired,
}

// renderTrend prints the per-day application counts in date order.
func renderTrend(cmd *cobra.Command, trend map[string]int) {
	if len(trend) == 0 {
		return
	}
	dates := make([]string, 0, len(trend))
	for d := range trend {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	cmd.Println(labelStyle.Render("\nApplications per day:"))
	for _, d := range dates {
		cmd.Printf("  %s  %d\n", d, trend[d])
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(myApplicationsCmd)

	dashboardCmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	dashboardCmd.Flags().String("to", "", "End date (YYYY-MM-DD)")
	myApplicationsCmd.Flags().Int("page", 0, "Page number (zero-based)")
	myApplicationsCmd.Flags().Int("size", 0, "Page size")
}
