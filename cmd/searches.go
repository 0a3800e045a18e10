package cmd

import (
	"fmt"

	"github.com/jobdeck/jobdeck/internal/database"
	"github.com/spf13/cobra"
)

var searchesCmd = &cobra.Command{
	Use:   "searches",
	Short: "Manage saved searches",
	Long:  "List and delete searches saved with 'jobdeck search --save-as'",
}

var listSearchesCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		searches, err := database.GetSavedSearches()
		if err != nil {
			return fmt.Errorf("failed to list saved searches: %w", err)
		}
		if len(searches) == 0 {
			cmd.Println("No saved searches. Save one with 'jobdeck search --title ... --save-as NAME'")
			return nil
		}

		cmd.Println(titleStyle.Render("Saved Searches"))
		for _, s := range searches {
			cmd.Printf("%s %s\n", labelStyle.Render(s.Name+":"), valueStyle.Render(s.Query))
		}
		return nil
	},
}

var forgetSearchCmd = &cobra.Command{
	Use:   "forget <name>",
	Short: "Delete a saved search",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.DeleteSavedSearch(args[0]); err != nil {
			return fmt.Errorf("failed to delete saved search: %w", err)
		}
		cmd.Printf("✓ Deleted saved search %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchesCmd)
	searchesCmd.AddCommand(listSearchesCmd)
	searchesCmd.AddCommand(forgetSearchCmd)
}
