package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jobdeck/jobdeck/internal/search"
	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var employerCmd = &cobra.Command{
	Use:   "employer",
	Short: "Employer tools",
	Long:  "Manage your postings and review incoming applications",
}

var myJobsCmd = &cobra.Command{
	Use:   "my-jobs",
	Short: "List your postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("list postings", models.RoleEmployer); err != nil {
			return err
		}

		jobs, err := application.API.MyJobs(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load postings: %w", err)
		}
		if len(jobs) == 0 {
			cmd.Println("No postings yet. Create one with 'jobdeck employer create-job'.")
			return nil
		}

		cmd.Println(titleStyle.Render("My Postings"))
		for _, job := range jobs {
			cmd.Printf("\n%s %s\n", labelStyle.Render(job.JobID), job.Title)
			cmd.Printf("   %s %s\n", labelStyle.Render("Status:"), job.Status)
			if job.Location != "" {
				cmd.Printf("   %s %s\n", labelStyle.Render("Location:"), job.Location)
			}
			cmd.Printf("   %s %s\n", labelStyle.Render("Posted:"), humanize.Time(job.CreatedAt))
		}
		return nil
	},
}

var applicantsCmd = &cobra.Command{
	Use:   "applicants <job-id>",
	Short: "List applications for one of your postings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("list applicants", models.RoleEmployer); err != nil {
			return err
		}

		apps, err := application.API.ApplicationsForJob(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load applications: %w", err)
		}
		if len(apps) == 0 {
			cmd.Println("No applications for this posting yet.")
			return nil
		}

		cmd.Println(titleStyle.Render("Applications"))
		for _, a := range apps {
			cmd.Printf("\n%s %s\n", labelStyle.Render(fmt.Sprintf("#%d", a.ID)), a.CandidateName)
			cmd.Printf("   %s %s\n", labelStyle.Render("Status:"), a.Status)
			cmd.Printf("   %s %s\n", labelStyle.Render("Applied:"), humanize.Time(a.CreatedAt))
			if a.ResumeFileName != "" {
				cmd.Printf("   %s %s (%s)\n", labelStyle.Render("Resume:"), a.ResumeFileName, a.ResumeFileID)
			}
			if a.CoverLetterFileName != "" {
				cmd.Printf("   %s %s (%s)\n", labelStyle.Render("Cover letter:"), a.CoverLetterFileName, a.CoverLetterFileID)
			}
			for _, ans := range a.DisclosureAnswers {
				cmd.Printf("   %s %s: %s\n", labelStyle.Render("Q:"), ans.QuestionText, ans.AnswerText)
			}
		}
		return nil
	},
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status <application-id> <status>",
	Short: "Update an application's status",
	Long: `Move an application through the review pipeline. Valid statuses:
APPLIED, UNDER_REVIEW, SHORTLISTED, REJECTED, HIRED.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("update application status", models.RoleEmployer); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid application ID: must be a number")
		}
		status := strings.ToUpper(args[1])
		if !validStatus(status) {
			return fmt.Errorf("invalid status %q, want one of %s", args[1], strings.Join(statusOrder, ", "))
		}

		if err := application.API.UpdateApplicationStatus(cmd.Context(), id, status); err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		cmd.Printf("✓ Application #%d is now %s\n", id, status)
		return nil
	},
}

var jobStatusCmd = &cobra.Command{
	Use:   "job-status <job-id> <status>",
	Short: "Open or close one of your postings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("update posting status", models.RoleEmployer); err != nil {
			return err
		}

		status := strings.ToUpper(args[1])
		if err := application.API.UpdateJobStatus(cmd.Context(), args[0], status); err != nil {
			return fmt.Errorf("failed to update posting status: %w", err)
		}
		cmd.Printf("✓ Posting %s is now %s\n", args[0], status)
		return nil
	},
}

var createJobCmd = &cobra.Command{
	Use:   "create-job",
	Short: "Create a posting",
	Example: `  jobdeck employer create-job --title "Go Developer" --location Remote \
    --type FULL_TIME --description "..." --skill Go --skill SQL`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("create a posting", models.RoleEmployer); err != nil {
			return err
		}

		create := models.JobCreate{}
		create.Title, _ = cmd.Flags().GetString("title")
		create.Location, _ = cmd.Flags().GetString("location")
		create.JobType, _ = cmd.Flags().GetString("type")
		create.ExperienceLevel, _ = cmd.Flags().GetString("experience")
		create.Description, _ = cmd.Flags().GetString("description")
		create.Requirements, _ = cmd.Flags().GetString("requirements")
		create.Responsibilities, _ = cmd.Flags().GetString("responsibilities")
		create.SalaryRange, _ = cmd.Flags().GetString("salary")
		create.ApplicationDeadline, _ = cmd.Flags().GetString("deadline")

		// Skills are normalized once here, at the form boundary
		skills, _ := cmd.Flags().GetStringArray("skill")
		create.Skills = search.NormalizeSkills(skills)

		questions, _ := cmd.Flags().GetStringArray("question")
		for _, q := range questions {
			q = strings.TrimSpace(q)
			if q == "" {
				continue
			}
			required := strings.HasSuffix(q, "!")
			create.DisclosureQuestions = append(create.DisclosureQuestions, models.DisclosureQuestion{
				QuestionText: strings.TrimSuffix(q, "!"),
				QuestionType: "TEXT",
				IsRequired:   required,
			})
		}

		job, err := application.API.CreateJob(cmd.Context(), create)
		if err != nil {
			return fmt.Errorf("failed to create posting: %w", err)
		}
		cmd.Printf("✓ Posting created: %s (%s)\n", job.Title, job.JobID)
		return nil
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download <file-id> <output-path>",
	Short: "Download an applicant's resume or cover letter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("download a file", models.RoleEmployer); err != nil {
			return err
		}

		data, err := application.API.DownloadFile(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to download file: %w", err)
		}
		if err := os.WriteFile(args[1], data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		cmd.Printf("✓ Wrote %s (%s)\n", args[1], humanize.Bytes(uint64(len(data))))
		return nil
	},
}

func validStatus(status string) bool {
	for _, s := range statusOrder {
		if s == status {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(employerCmd)
	employerCmd.AddCommand(myJobsCmd)
	employerCmd.AddCommand(applicantsCmd)
	employerCmd.AddCommand(setStatusCmd)
	employerCmd.AddCommand(jobStatusCmd)
	employerCmd.AddCommand(createJobCmd)
	employerCmd.AddCommand(downloadCmd)

	createJobCmd.Flags().String("title", "", "Job title")
	createJobCmd.Flags().String("location", "", "Location")
	createJobCmd.Flags().String("type", "", "Job type (e.g. FULL_TIME)")
	createJobCmd.Flags().String("experience", "", "Experience level")
	createJobCmd.Flags().String("description", "", "Description")
	createJobCmd.Flags().String("requirements", "", "Requirements")
	createJobCmd.Flags().String("responsibilities", "", "Responsibilities")
	createJobCmd.Flags().String("salary", "", "Salary range")
	createJobCmd.Flags().String("deadline", "", "Application deadline (YYYY-MM-DD)")
	createJobCmd.Flags().StringArray("skill", nil, "Required skill (repeatable)")
	createJobCmd.Flags().StringArray("question", nil, "Disclosure question, suffix with ! to require (repeatable)")
	_ = createJobCmd.MarkFlagRequired("title")
	_ = createJobCmd.MarkFlagRequired("location")
	_ = createJobCmd.MarkFlagRequired("type")
	_ = createJobCmd.MarkFlagRequired("description")
}
