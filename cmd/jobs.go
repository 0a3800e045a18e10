package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jobdeck/jobdeck/internal/database"
	"github.com/jobdeck/jobdeck/internal/listing"
	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse job postings",
	Long:  "List and view job postings from the job board",
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	Example: `  jobdeck jobs list
  jobdeck jobs list --page 2 --size 20
  jobdeck jobs list --sort company_asc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		size, _ := cmd.Flags().GetInt("size")
		sort, _ := cmd.Flags().GetString("sort")
		if size <= 0 {
			size = application.Config.DefaultPageSize
		}

		coord := listing.NewCoordinator(application.API, size)
		if sort != "" && sort != listing.SortNewest {
			coord.SetSort(sort)
		}
		if page > 0 {
			err = coord.PageChange(cmd.Context(), page*size, size)
		} else {
			err = coord.Load(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to load jobs: %w", err)
		}

		renderJobPage(cmd, coord)
		return nil
	},
}

var showJobCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show details of a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		job, err := application.API.GetJob(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch job: %w", err)
		}

		// Remember locally that this posting was viewed
		_ = database.RecordJobView(&database.JobView{
			JobID:    job.JobID,
			Title:    job.Title,
			Company:  job.CompanyName,
			Location: job.Location,
		})

		renderJobDetail(cmd, job)

		if application.SavedJobs.IsSavedSync(job.JobID) {
			cmd.Printf("\n%s\n", valueStyle.Render("★ You have saved this job."))
		}
		if applied, _ := database.HasApplied(job.JobID); applied {
			cmd.Println(valueStyle.Render("✓ You have applied to this job."))
		}
		return nil
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions <job-id>",
	Short: "Show the disclosure questions for a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		dq, err := application.API.DisclosureQuestions(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch disclosure questions: %w", err)
		}

		cmd.Println(titleStyle.Render(dq.JobTitle))
		if len(dq.DisclosureQuestions) == 0 {
			cmd.Println("This job has no disclosure questions.")
			return nil
		}
		for i, q := range dq.DisclosureQuestions {
			required := ""
			if q.IsRequired {
				required = " (required)"
			}
			cmd.Printf("%s %s%s\n", labelStyle.Render(fmt.Sprintf("%d.", i+1)), q.QuestionText, required)
			if q.QuestionType == "MULTIPLE_CHOICE" && len(q.Options) > 0 {
				cmd.Printf("   %s %s\n", labelStyle.Render("Options:"), strings.Join(q.Options, ", "))
			}
		}
		return nil
	},
}

// renderJobPage prints one page of jobs with paging context.
func renderJobPage(cmd *cobra.Command, coord *listing.Coordinator) {
	jobs := coord.Jobs()
	if len(jobs) == 0 {
		cmd.Println("No jobs found.")
		return
	}

	cmd.Println(titleStyle.Render("Job Postings"))
	for i, job := range jobs {
		cmd.Printf("\n%s %s\n", labelStyle.Render(fmt.Sprintf("%d.", i+1)), job.Title)
		cmd.Printf("   %s %s %s\n", labelStyle.Render("Company:"), job.CompanyName, logoMarker(job))
		if job.Location != "" {
			cmd.Printf("   %s %s\n", labelStyle.Render("Location:"), job.Location)
		}
		if job.JobType != "" {
			cmd.Printf("   %s %s\n", labelStyle.Render("Type:"), job.JobType)
		}
		cmd.Printf("   %s %s\n", labelStyle.Render("ID:"), job.JobID)
		cmd.Printf("   %s %s\n", labelStyle.Render("Posted:"), humanize.Time(job.CreatedAt))
	}
	cmd.Printf("\n%s page %d, %d total\n", labelStyle.Render("Showing:"), coord.Page()+1, coord.Total())
}

// renderJobDetail prints a full posting.
func renderJobDetail(cmd *cobra.Command, job *models.Job) {
	cmd.Println(titleStyle.Render(job.Title))
	cmd.Printf("%s %s %s\n", labelStyle.Render("Company:"), job.CompanyName, logoMarker(*job))
	if job.Location != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Location:"), job.Location)
	}
	if job.JobType != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Type:"), job.JobType)
	}
	if job.ExperienceLevel != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Experience:"), job.ExperienceLevel)
	}
	if job.SalaryRange != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Salary:"), job.SalaryRange)
	}
	if len(job.Skills) > 0 {
		names := make([]string, len(job.Skills))
		for i, s := range job.Skills {
			names[i] = s.Name
		}
		cmd.Printf("%s %s\n", labelStyle.Render("Skills:"), strings.Join(names, ", "))
	}
	if job.ApplicationDeadline != "" {
		cmd.Printf("%s %s\n", labelStyle.Render("Deadline:"), job.ApplicationDeadline)
	}
	cmd.Printf("%s %s\n", labelStyle.Render("Posted:"), humanize.Time(job.CreatedAt))

	if job.Description != "" {
		cmd.Println(labelStyle.Render("\nDescription:"))
		cmd.Println(job.Description)
	}
	if job.Requirements != "" {
		cmd.Println(labelStyle.Render("\nRequirements:"))
		cmd.Println(job.Requirements)
	}
	if job.Responsibilities != "" {
		cmd.Println(labelStyle.Render("\nResponsibilities:"))
		cmd.Println(job.Responsibilities)
	}
}

// logoMarker shows company initials when the posting has no usable logo.
func logoMarker(job models.Job) string {
	if listing.HasCustomLogo(job) {
		return ""
	}
	initials := listing.CompanyInitials(job.CompanyName)
	if initials == "" {
		return ""
	}
	return valueStyle.Render("[" + initials + "]")
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(listJobsCmd)
	jobsCmd.AddCommand(showJobCmd)
	jobsCmd.AddCommand(questionsCmd)

	listJobsCmd.Flags().Int("page", 0, "Page number (zero-based)")
	listJobsCmd.Flags().Int("size", 0, "Page size")
	listJobsCmd.Flags().String("sort", "", "Sort order: newest, oldest, company_asc, company_desc")
}
