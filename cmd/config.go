package cmd

import (
	"fmt"

	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		fmt.Printf("%s %s\n", labelStyle.Render("API Base URL:"), config.AppConfig.APIBaseURL)
		fmt.Printf("%s %ds\n", labelStyle.Render("Request Timeout:"), config.AppConfig.RequestTimeoutSeconds)
		fmt.Printf("%s %d\n", labelStyle.Render("Default Page Size:"), config.AppConfig.DefaultPageSize)
		fmt.Printf("%s %dms\n", labelStyle.Render("Search Debounce:"), config.AppConfig.DebounceMillis)
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  jobdeck config set --key api_base_url --value https://jobs.example.com
  jobdeck config set --key default_page_size --value 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			return fmt.Errorf("both --key and --value are required")
		}

		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}

		cmd.Printf("✓ Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
