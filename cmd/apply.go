package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jobdeck/jobdeck/internal/api"
	"github.com/jobdeck/jobdeck/internal/database"
	"github.com/jobdeck/jobdeck/pkg/models"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a job",
	Long: `Submit an application for a posting. The job's disclosure questions are
asked interactively unless answered with --answer flags. A resume is attached
from --resume, or the one on your profile is reused with --use-profile-resume.`,
	Example: `  jobdeck apply JOB-123 --resume ~/cv.pdf
  jobdeck apply JOB-123 --use-profile-resume --cover-letter ~/letter.pdf
  jobdeck apply JOB-123 --resume ~/cv.pdf --answer "1=Yes" --answer "2=No"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}
		if err := application.RequireRole("apply to a job", models.RoleCandidate); err != nil {
			return err
		}

		jobID := args[0]
		resumePath, _ := cmd.Flags().GetString("resume")
		coverPath, _ := cmd.Flags().GetString("cover-letter")
		useProfileResume, _ := cmd.Flags().GetBool("use-profile-resume")
		disclosures, _ := cmd.Flags().GetString("disclosures")
		answerFlags, _ := cmd.Flags().GetStringArray("answer")

		if resumePath == "" && !useProfileResume {
			return fmt.Errorf("either --resume or --use-profile-resume is required")
		}
		if resumePath != "" {
			if _, err := api.ValidateUpload(resumePath); err != nil {
				return fmt.Errorf("resume: %w", err)
			}
		}
		if coverPath != "" {
			if _, err := api.ValidateUpload(coverPath); err != nil {
				return fmt.Errorf("cover letter: %w", err)
			}
		}

		job, err := application.API.GetJob(cmd.Context(), jobID)
		if err != nil {
			return fmt.Errorf("failed to fetch job: %w", err)
		}

		answers, err := collectAnswers(cmd, job.DisclosureQuestions, answerFlags)
		if err != nil {
			return err
		}

		submission := models.ApplicationSubmission{
			JobID:                job.ID,
			UseExistingResume:    useProfileResume,
			VoluntaryDisclosures: disclosures,
			DisclosureAnswers:    answers,
		}

		result, err := application.API.Apply(cmd.Context(), jobID, submission, resumePath, coverPath)
		if err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) && apiErr.IsValidation() {
				cmd.PrintErrln("The application was rejected:")
				for field, msg := range apiErr.FieldErrors {
					cmd.PrintErrf("  %s: %s\n", field, msg)
				}
			}
			return fmt.Errorf("failed to submit application: %w", err)
		}

		// Keep a local record for the history command
		_ = database.LogApplication(&database.ApplicationRecord{
			JobID:   jobID,
			Title:   job.Title,
			Company: job.CompanyName,
		})

		cmd.Printf("✓ Applied to %s at %s (application #%d, status %s)\n",
			job.Title, job.CompanyName, result.ID, result.Status)
		return nil
	},
}

// collectAnswers resolves disclosure answers from --answer flags, prompting
// for anything required that the flags did not cover. Flag format is
// "questionID=answer".
func collectAnswers(cmd *cobra.Command, questions []models.DisclosureQuestion, flags []string) ([]models.DisclosureAnswer, error) {
	given := map[int]string{}
	for _, raw := range flags {
		idPart, answer, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --answer %q, want ID=answer", raw)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idPart))
		if err != nil {
			return nil, fmt.Errorf("invalid question ID in --answer %q", raw)
		}
		given[id] = strings.TrimSpace(answer)
	}

	reader := bufio.NewReader(os.Stdin)
	var answers []models.DisclosureAnswer
	for _, q := range questions {
		answer, ok := given[q.ID]
		if !ok {
			if !q.IsRequired {
				continue
			}
			cmd.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("Question %d:", q.ID)), q.QuestionText)
			if len(q.Options) > 0 {
				cmd.Printf("  Options: %s\n", strings.Join(q.Options, ", "))
			}
			fmt.Print(labelStyle.Render("Answer: "))
			line, _ := reader.ReadString('\n')
			answer = strings.TrimSpace(line)
		}
		if answer == "" && q.IsRequired {
			return nil, fmt.Errorf("question %d (%s) requires an answer", q.ID, q.QuestionText)
		}
		answers = append(answers, models.DisclosureAnswer{
			QuestionID:   q.ID,
			QuestionText: q.QuestionText,
			AnswerText:   answer,
		})
	}
	return answers, nil
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().String("resume", "", "Resume file to attach (PDF, DOC, DOCX or TXT)")
	applyCmd.Flags().String("cover-letter", "", "Cover letter file to attach")
	applyCmd.Flags().Bool("use-profile-resume", false, "Reuse the resume stored on your profile")
	applyCmd.Flags().String("disclosures", "", "Voluntary disclosures text")
	applyCmd.Flags().StringArray("answer", nil, "Disclosure answer as ID=answer (repeatable)")
}
