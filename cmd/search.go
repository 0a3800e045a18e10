package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jobdeck/jobdeck/internal/database"
	"github.com/jobdeck/jobdeck/internal/listing"
	"github.com/jobdeck/jobdeck/internal/search"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job postings",
	Long:  "Search postings by title, location, company, type, experience level and skills",
	Example: `  jobdeck search --title "software engineer" --location Remote
  jobdeck search --skill Go --skill PostgreSQL
  jobdeck search --link "title=Senior&location=NYC&page=1"
  jobdeck search --title Go --save-as go-jobs
  jobdeck search --use go-jobs
  jobdeck search --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := requireApp(cmd)
		if err != nil {
			return err
		}

		interactive, _ := cmd.Flags().GetBool("interactive")
		if interactive {
			return runInteractiveSearch(cmd)
		}

		criteria, err := criteriaFromFlags(cmd)
		if err != nil {
			return err
		}

		saveAs, _ := cmd.Flags().GetString("save-as")
		if saveAs != "" {
			if err := database.SaveSearch(saveAs, criteria.QueryString()); err != nil {
				return fmt.Errorf("failed to save search: %w", err)
			}
			cmd.Printf("✓ Saved search %q\n", saveAs)
		}

		size := criteria.Size
		if size <= 0 {
			size = application.Config.DefaultPageSize
		}
		coord := listing.NewCoordinator(application.API, size)
		if err := coord.OnSearch(cmd.Context(), criteria); err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		renderJobPage(cmd, coord)
		if criteria.HasFilters() {
			cmd.Printf("\n%s %s\n", labelStyle.Render("Share link:"), criteria.QueryString())
		}
		return nil
	},
}

// criteriaFromFlags builds search criteria from the flag set, a deep link or
// a saved search. Flags layer on top of whatever the link or saved search
// provided.
func criteriaFromFlags(cmd *cobra.Command) (search.Criteria, error) {
	criteria := search.Default()

	if use, _ := cmd.Flags().GetString("use"); use != "" {
		saved, err := database.GetSavedSearch(use)
		if err != nil {
			return criteria, fmt.Errorf("failed to load saved search: %w", err)
		}
		if saved == nil {
			return criteria, fmt.Errorf("no saved search named %q", use)
		}
		criteria, err = search.ParseQueryString(saved.Query)
		if err != nil {
			return criteria, fmt.Errorf("saved search %q is corrupt: %w", use, err)
		}
	}

	if link, _ := cmd.Flags().GetString("link"); link != "" {
		parsed, err := search.ParseQueryString(link)
		if err != nil {
			return criteria, fmt.Errorf("invalid search link: %w", err)
		}
		criteria = parsed
	}

	if v, _ := cmd.Flags().GetString("title"); v != "" {
		criteria.JobTitle = strings.TrimSpace(v)
	}
	if v, _ := cmd.Flags().GetString("location"); v != "" {
		criteria.Location = strings.TrimSpace(v)
	}
	if v, _ := cmd.Flags().GetString("company"); v != "" {
		criteria.CompanyName = strings.TrimSpace(v)
	}
	if v, _ := cmd.Flags().GetString("type"); v != "" {
		criteria.JobType = v
	}
	if v, _ := cmd.Flags().GetString("experience"); v != "" {
		criteria.ExperienceLevel = v
	}
	if skills, _ := cmd.Flags().GetStringArray("skill"); len(skills) > 0 {
		for _, s := range search.NormalizeSkills(skills) {
			criteria.AddSkill(s)
		}
	}
	if page, _ := cmd.Flags().GetInt("page"); page > 0 {
		criteria.Page = page
	}
	if size, _ := cmd.Flags().GetInt("size"); size > 0 {
		criteria.Size = size
	}
	return criteria, nil
}

// runInteractiveSearch reads filter edits line by line and re-runs the
// search as the input settles, the way the search form behaves on the web.
func runInteractiveSearch(cmd *cobra.Command) error {
	application, err := requireApp(cmd)
	if err != nil {
		return err
	}

	coord := listing.NewCoordinator(application.API, application.Config.DefaultPageSize)
	quiet := time.Duration(application.Config.DebounceMillis) * time.Millisecond

	sync := search.NewSynchronizer(quiet, func(c search.Criteria) {
		if err := coord.OnSearch(cmd.Context(), c); err != nil {
			cmd.PrintErrf("search failed: %v\n", err)
			return
		}
		renderJobPage(cmd, coord)
	})
	defer sync.Close()

	cmd.Println(titleStyle.Render("Interactive Search"))
	cmd.Println("Commands: title X, location X, company X, type X, exp X,")
	cmd.Println("          +skill X, -skill X, clear, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(labelStyle.Render("> "))
		if !scanner.Scan() {
			break
		}
		field, value, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch field {
		case "quit", "exit", "q":
			return nil
		case "title":
			sync.SetTitle(value)
		case "location":
			sync.SetLocation(value)
		case "company":
			sync.SetCompanyName(value)
		case "type":
			sync.SetJobType(value)
		case "exp":
			sync.SetExperienceLevel(value)
		case "+skill":
			sync.AddSkill(value)
		case "-skill":
			sync.RemoveSkill(value)
		case "clear":
			sync.Clear()
		case "":
			sync.Flush()
		default:
			cmd.Printf("unknown command %q\n", field)
		}
	}
	return scanner.Err()
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("title", "", "Job title filter")
	searchCmd.Flags().String("location", "", "Location filter")
	searchCmd.Flags().String("company", "", "Company name filter")
	searchCmd.Flags().String("type", "", "Job type filter (e.g. FULL_TIME)")
	searchCmd.Flags().String("experience", "", "Experience level filter")
	searchCmd.Flags().StringArray("skill", nil, "Skill filter (repeatable)")
	searchCmd.Flags().Int("page", 0, "Page number (zero-based)")
	searchCmd.Flags().Int("size", 0, "Page size")
	searchCmd.Flags().String("link", "", "Load filters from a shared search link")
	searchCmd.Flags().String("use", "", "Load filters from a saved search")
	searchCmd.Flags().String("save-as", "", "Save these filters under a name")
	searchCmd.Flags().Bool("interactive", false, "Edit filters interactively")
}
