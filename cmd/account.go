package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage account credentials",
	Long:  "Change the email address or password of the signed-in account",
}

var updateEmailCmd = &cobra.Command{
	Use:   "update-email <new-email>",
	Short: "Change your account email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireAuth("update email"); err != nil {
			return err
		}

		password, err := promptPassword(cmd, "Current password: ")
		if err != nil {
			return err
		}

		msg, err := application.API.UpdateEmail(cmd.Context(), models.EmailUpdateRequest{
			NewEmail:        args[0],
			CurrentPassword: password,
		})
		if err != nil {
			return fmt.Errorf("failed to update email: %w", err)
		}

		if msg != "" {
			cmd.Println(msg)
		}
		cmd.Printf("✓ Email updated to %s\n", args[0])
		return nil
	},
}

var updatePasswordCmd = &cobra.Command{
	Use:   "update-password",
	Short: "Change your account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireAuth("update password"); err != nil {
			return err
		}

		current, err := promptPassword(cmd, "Current password: ")
		if err != nil {
			return err
		}
		next, err := promptPassword(cmd, "New password: ")
		if err != nil {
			return err
		}

		msg, err := application.API.UpdatePassword(cmd.Context(), models.PasswordUpdateRequest{
			CurrentPassword: current,
			NewPassword:     next,
		})
		if err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}

		if msg != "" {
			cmd.Println(msg)
		}
		cmd.Println("✓ Password updated")
		return nil
	},
}

func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Print(labelStyle.Render(prompt))
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(updateEmailCmd)
	accountCmd.AddCommand(updatePasswordCmd)
}
