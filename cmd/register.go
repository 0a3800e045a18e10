package cmd

import (
	"errors"
	"fmt"

	"github.com/jobdeck/jobdeck/internal/api"
	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
}

var registerCandidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Register a candidate account",
	Example: `  jobdeck register candidate --first-name Ada --last-name Lovelace \
    --email ada@example.com --password secret --accept-terms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		reg := models.CandidateRegistration{}
		reg.FirstName, _ = cmd.Flags().GetString("first-name")
		reg.LastName, _ = cmd.Flags().GetString("last-name")
		reg.Email, _ = cmd.Flags().GetString("email")
		reg.Password, _ = cmd.Flags().GetString("password")
		reg.Phone, _ = cmd.Flags().GetString("phone")
		reg.AcceptedTerms, _ = cmd.Flags().GetBool("accept-terms")

		if !reg.AcceptedTerms {
			return fmt.Errorf("you must pass --accept-terms to register")
		}

		resp, err := application.API.RegisterCandidate(cmd.Context(), reg)
		if err != nil {
			return registrationError(err)
		}
		cmd.Printf("✓ Registered and signed in as %s\n", resp.User.Email)
		return nil
	},
}

var registerEmployerCmd = &cobra.Command{
	Use:   "employer",
	Short: "Register an employer account",
	Example: `  jobdeck register employer --first-name Grace --last-name Hopper \
    --email grace@acme.test --password secret --company-name "Acme Inc" --accept-terms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		reg := models.EmployerRegistration{}
		reg.FirstName, _ = cmd.Flags().GetString("first-name")
		reg.LastName, _ = cmd.Flags().GetString("last-name")
		reg.Email, _ = cmd.Flags().GetString("email")
		reg.Password, _ = cmd.Flags().GetString("password")
		reg.CompanyName, _ = cmd.Flags().GetString("company-name")
		reg.AcceptedTerms, _ = cmd.Flags().GetBool("accept-terms")

		if !reg.AcceptedTerms {
			return fmt.Errorf("you must pass --accept-terms to register")
		}

		resp, err := application.API.RegisterEmployer(cmd.Context(), reg)
		if err != nil {
			return registrationError(err)
		}
		cmd.Printf("✓ Registered and signed in as %s\n", resp.User.Email)
		return nil
	},
}

// registrationError surfaces server-side field validation in a readable form.
func registrationError(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.IsValidation() {
		msg := "registration rejected:"
		for field, detail := range apiErr.FieldErrors {
			msg += fmt.Sprintf("\n  %s: %s", field, detail)
		}
		return errors.New(msg)
	}
	return fmt.Errorf("registration failed: %w", err)
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.AddCommand(registerCandidateCmd)
	registerCmd.AddCommand(registerEmployerCmd)

	for _, c := range []*cobra.Command{registerCandidateCmd, registerEmployerCmd} {
		c.Flags().String("first-name", "", "First name")
		c.Flags().String("last-name", "", "Last name")
		c.Flags().String("email", "", "Email address")
		c.Flags().String("password", "", "Password")
		c.Flags().Bool("accept-terms", false, "Accept the terms and conditions")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	registerCandidateCmd.Flags().String("phone", "", "Phone number")
	registerEmployerCmd.Flags().String("company-name", "", "Company name")
	_ = registerEmployerCmd.MarkFlagRequired("company-name")
}
