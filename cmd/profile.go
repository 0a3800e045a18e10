package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jobdeck/jobdeck/internal/api"
	"github.com/jobdeck/jobdeck/internal/app"
	"github.com/jobdeck/jobdeck/internal/search"
	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long:  "View and update the profile for the signed-in account",
}

var showProfileCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireAuth("view profile"); err != nil {
			return err
		}

		if application.Session.HasRole(models.RoleEmployer) {
			profile, err := application.API.EmployerProfile(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch profile: %w", err)
			}
			renderEmployerProfile(cmd, profile)
			return nil
		}

		profile, err := application.API.CandidateProfile(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %w", err)
		}
		renderCandidateProfile(cmd, profile)
		return nil
	},
}

var updateProfileCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	Example: `  jobdeck profile update --first-name Ada --headline "Backend Engineer"
  jobdeck profile update --skill Go --skill PostgreSQL
  jobdeck profile update --company-name "Acme Inc" --company-website https://acme.test`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireAuth("update profile"); err != nil {
			return err
		}

		if application.Session.HasRole(models.RoleEmployer) {
			return updateEmployerProfile(cmd, application)
		}
		return updateCandidateProfile(cmd, application)
	},
}

var uploadResumeCmd = &cobra.Command{
	Use:   "upload-resume <file>",
	Short: "Upload a resume to your profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("upload a resume", models.RoleCandidate); err != nil {
			return err
		}

		if _, err := api.ValidateUpload(args[0]); err != nil {
			return err
		}

		profile, err := application.API.UploadResume(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to upload resume: %w", err)
		}
		cmd.Printf("✓ Resume uploaded: %s\n", profile.ResumeFileName)
		return nil
	},
}

func updateCandidateProfile(cmd *cobra.Command, application *app.App) error {
	current, err := application.API.CandidateProfile(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	update := models.CandidateProfileUpdate{
		FirstName:       current.FirstName,
		LastName:        current.LastName,
		Phone:           current.Phone,
		Headline:        current.Headline,
		Summary:         current.Summary,
		ExperienceYears: current.ExperienceYears,
	}
	for _, s := range current.Skills {
		update.Skills = append(update.Skills, s.Name)
	}

	if v, _ := cmd.Flags().GetString("first-name"); v != "" {
		update.FirstName = v
	}
	if v, _ := cmd.Flags().GetString("last-name"); v != "" {
		update.LastName = v
	}
	if v, _ := cmd.Flags().GetString("phone"); v != "" {
		update.Phone = v
	}
	if v, _ := cmd.Flags().GetString("headline"); v != "" {
		update.Headline = v
	}
	if v, _ := cmd.Flags().GetString("summary"); v != "" {
		update.Summary = v
	}
	if v, _ := cmd.Flags().GetInt("experience-years"); cmd.Flags().Changed("experience-years") {
		update.ExperienceYears = v
	}
	if skills, _ := cmd.Flags().GetStringArray("skill"); len(skills) > 0 {
		update.Skills = search.NormalizeSkills(skills)
	}

	updated, err := application.API.UpdateCandidateProfile(cmd.Context(), update)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	cmd.Println("✓ Profile updated")
	renderCandidateProfile(cmd, updated)
	return nil
}

func updateEmployerProfile(cmd *cobra.Command, application *app.App) error {
	current, err := application.API.EmployerProfile(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	update := models.EmployerProfileUpdate{
		FirstName:          current.FirstName,
		LastName:           current.LastName,
		CompanyName:        current.CompanyName,
		CompanyDescription: current.CompanyDescription,
		CompanyWebsite:     current.CompanyWebsite,
	}

	if v, _ := cmd.Flags().GetString("first-name"); v != "" {
		update.FirstName = v
	}
	if v, _ := cmd.Flags().GetString("last-name"); v != "" {
		update.LastName = v
	}
	if v, _ := cmd.Flags().GetString("company-name"); v != "" {
		update.CompanyName = v
	}
	if v, _ := cmd.Flags().GetString("company-description"); v != "" {
		update.CompanyDescription = v
	}
	if v, _ := cmd.Flags().GetString("company-website"); v != "" {
		update.CompanyWebsite = v
	}

	updated, err := application.API.UpdateEmployerProfile(cmd.Context(), update)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	cmd.Println("✓ Profile updated")
	renderEmployerProfile(cmd, updated)
	return nil
}

func renderCandidateProfile(cmd *cobra.Command, p *models.CandidateProfile) {
	cmd.Println(titleStyle.Render("Candidate Profile"))
	cmd.Printf("%s %s %s\n", labelStyle.Render("Name:"), p.FirstName, p.LastName)
	cmd.Printf("%s %s\n", labelStyle.Render("Email:"), p.Email)
	if p.Phone != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Phone:"), p.Phone)
	}
	if p.Headline != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Headline:"), p.Headline)
	}
	if p.ExperienceYears > 0 {
		cmd.Printf("%s %d years\n", labelStyle.Render("Experience:"), p.ExperienceYears)
	}
	if len(p.Skills) > 0 {
		names := make([]string, len(p.Skills))
		for i, s := range p.Skills {
			names[i] = s.Name
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Skills:"), strings.Join(names, ", "))
	}
	if p.ResumeFileName != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Resume:"), p.ResumeFileName)
	}
	if p.Summary != "" {
		cmd.Println(labelStyle.Render("\nSummary:"))
		cmd.Println(p.Summary)
	}
}

func renderEmployerProfile(cmd *cobra.Command, p *models.EmployerProfile) {
	cmd.Println(titleStyle.Render("Employer Profile"))
	cmd.Printf("%s %s %s\n", labelStyle.Render("Name:"), p.FirstName, p.LastName)
	cmd.Printf("%s %s\n", labelStyle.Render("Email:"), p.Email)
	cmd.Printf("%s %s\n", labelStyle.Render("Company:"), p.CompanyName)
	if p.CompanyWebsite != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Website:"), p.CompanyWebsite)
	}
	if p.CompanyDescription != "" {
		cmd.Println(labelStyle.Render("\nAbout:"))
		cmd.Println(p.CompanyDescription)
	}
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(updateProfileCmd)
	profileCmd.AddCommand(uploadResumeCmd)

	updateProfileCmd.Flags().String("first-name", "", "First name")
	updateProfileCmd.Flags().String("last-name", "", "Last name")
	updateProfileCmd.Flags().String("phone", "", "Phone number (candidate)")
	updateProfileCmd.Flags().String("headline", "", "Profile headline (candidate)")
	updateProfileCmd.Flags().String("summary", "", "Profile summary (candidate)")
	updateProfileCmd.Flags().Int("experience-years", 0, "Years of experience (candidate)")
	updateProfileCmd.Flags().StringArray("skill", nil, "Skill (candidate, repeatable, replaces the list)")
	updateProfileCmd.Flags().String("company-name", "", "Company name (employer)")
	updateProfileCmd.Flags().String("company-description", "", "Company description (employer)")
	updateProfileCmd.Flags().String("company-website", "", "Company website (employer)")
}
