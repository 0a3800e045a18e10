package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jobdeck/jobdeck/internal/database"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Local browsing and application history",
	Long:  "History is stored only on this machine, in ~/.jobdeck/jobdeck.db",
}

var viewedCmd = &cobra.Command{
	Use:   "viewed",
	Short: "List recently viewed jobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		views, err := database.GetRecentViews(limit)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(views) == 0 {
			cmd.Println("No viewed jobs yet.")
			return nil
		}

		cmd.Println(titleStyle.Render("Recently Viewed"))
		for _, v := range views {
			cmd.Printf("%s %s at %s", labelStyle.Render(v.JobID), v.Title, v.Company)
			if v.Location != "" {
				cmd.Printf(" (%s)", v.Location)
			}
			cmd.Printf(", %s\n", humanize.Time(v.ViewedAt))
		}
		return nil
	},
}

var appliedCmd = &cobra.Command{
	Use:   "applied",
	Short: "List locally recorded submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := database.GetApplicationLog()
		if err != nil {
			return fmt.Errorf("failed to load application log: %w", err)
		}
		if len(records) == 0 {
			cmd.Println("No applications recorded on this machine.")
			return nil
		}

		cmd.Println(titleStyle.Render("Application Log"))
		for _, r := range records {
			cmd.Printf("%s %s at %s, %s\n",
				labelStyle.Render(r.JobID), r.Title, r.Company, humanize.Time(r.SubmittedAt))
		}
		return nil
	},
}

var clearHistoryCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the viewed-jobs history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.ClearViews(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		cmd.Println("✓ History cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(viewedCmd)
	historyCmd.AddCommand(appliedCmd)
	historyCmd.AddCommand(clearHistoryCmd)

	viewedCmd.Flags().Int("limit", 20, "Maximum entries to show")
}
