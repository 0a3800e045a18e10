package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jobdeck/jobdeck/internal/api"
	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the job board",
	Example: `  jobdeck login --email you@example.com
  jobdeck login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		acceptTerms, _ := cmd.Flags().GetBool("accept-terms")

		reader := bufio.NewReader(os.Stdin)
		if email == "" {
			fmt.Print(labelStyle.Render("Email: "))
			email, _ = reader.ReadString('\n')
			email = strings.TrimSpace(email)
		}
		if password == "" {
			fmt.Print(labelStyle.Render("Password: "))
			password, _ = reader.ReadString('\n')
			password = strings.TrimSpace(password)
		}

		creds := models.LoginRequest{
			Email:         email,
			Password:      password,
			TermsAccepted: acceptTerms,
		}

		resp, err := application.API.Login(cmd.Context(), creds)
		if errors.Is(err, api.ErrTermsAcceptanceRequired) {
			cmd.Println("The terms and conditions have been updated; you must accept them to sign in.")
			fmt.Print(labelStyle.Render("Accept the updated terms? [y/N]: "))
			answer, _ := reader.ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				cmd.Println("Sign-in cancelled.")
				return nil
			}
			creds.TermsAccepted = true
			resp, err = application.API.Login(cmd.Context(), creds)
		}
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		cmd.Printf("✓ Signed in as %s (%s)\n", resp.User.Email, resp.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		// Purely local; the server holds no session state to revoke.
		application.API.Logout()
		cmd.Println("✓ Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		user := application.Session.Current()
		if user == nil {
			cmd.Println("Not signed in. Use 'jobdeck login'.")
			return nil
		}

		cmd.Println(titleStyle.Render("Signed In"))
		cmd.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(user.Email))
		cmd.Printf("%s %s\n", labelStyle.Render("Role:"), valueStyle.Render(user.Role))
		if user.FirstName != "" || user.LastName != "" {
			cmd.Printf("%s %s\n", labelStyle.Render("Name:"),
				valueStyle.Render(strings.TrimSpace(user.FirstName+" "+user.LastName)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password (prompted when omitted)")
	loginCmd.Flags().Bool("accept-terms", false, "Accept updated terms and conditions if prompted")
}
