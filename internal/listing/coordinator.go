// Package listing decides, for a given page/sort instruction, whether to hit
// the unfiltered listing endpoint or the search endpoint, and normalizes the
// page response into view state.
package listing

import (
	"context"
	"sync"

	"github.com/jobdeck/jobdeck/internal/search"
	"github.com/jobdeck/jobdeck/pkg/models"
)

// JobLister is the slice of the API client the coordinator drives.
type JobLister interface {
	ListJobs(ctx context.Context, page, size int) (*models.PageResponse[models.Job], error)
	SearchJobs(ctx context.Context, criteria search.Criteria) (*models.PageResponse[models.Job], error)
}

// Sort options offered to the user, mapped onto backend sort parameters.
const (
	SortNewest      = "newest"
	SortOldest      = "oldest"
	SortCompanyAsc  = "company_asc"
	SortCompanyDesc = "company_desc"
)

// Coordinator owns the transient listing view state: current page window,
// sort selection, search mode, and the normalized jobs of the last response.
type Coordinator struct {
	lister JobLister

	mu         sync.Mutex
	searchMode bool
	criteria   search.Criteria
	first      int
	rows       int
	sort       string

	jobs  []models.Job
	total int
}

// NewCoordinator starts in the unfiltered all-jobs mode.
func NewCoordinator(lister JobLister, rows int) *Coordinator {
	if rows <= 0 {
		rows = search.DefaultSize
	}
	return &Coordinator{
		lister:   lister,
		rows:     rows,
		sort:     SortNewest,
		criteria: search.Default(),
	}
}

// Load fetches the first page in the current mode.
func (c *Coordinator) Load(ctx context.Context) error {
	c.mu.Lock()
	c.first = 0
	c.mu.Unlock()
	return c.refresh(ctx)
}

// OnSearch consumes criteria emitted by the synchronizer. Criteria with any
// filter set switch the coordinator into search mode; default criteria fall
// back to the unfiltered listing. The page carried by the criteria is kept,
// so deep links land on the right page.
func (c *Coordinator) OnSearch(ctx context.Context, criteria search.Criteria) error {
	c.mu.Lock()
	c.criteria = criteria
	c.searchMode = criteria.HasFilters()
	if criteria.Size > 0 {
		c.rows = criteria.Size
	}
	c.first = criteria.Page * c.rows
	c.mu.Unlock()
	return c.refresh(ctx)
}

// PageChange re-issues the current request for a new page window. The page
// index is zero-based, derived from first/rows.
func (c *Coordinator) PageChange(ctx context.Context, first, rows int) error {
	c.mu.Lock()
	if rows > 0 {
		c.rows = rows
	}
	if first < 0 {
		first = 0
	}
	c.first = first
	c.mu.Unlock()
	return c.refresh(ctx)
}

// SetSort records a new sort option without fetching, resetting to page 0.
// Sorting while idle forces search mode so the sort can be expressed to the
// backend. Callers that need an immediate refresh use SortChange.
func (c *Coordinator) SetSort(sort string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sort = sort
	c.first = 0
	if !c.searchMode {
		c.criteria = search.Default()
		c.criteria.Size = c.rows
		c.searchMode = true
	}
}

// SortChange applies a new sort option and refreshes the current window.
func (c *Coordinator) SortChange(ctx context.Context, sort string) error {
	c.SetSort(sort)
	return c.refresh(ctx)
}

// Clear leaves search mode and reloads the unfiltered listing.
func (c *Coordinator) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.searchMode = false
	c.criteria = search.Default()
	c.first = 0
	c.mu.Unlock()
	return c.refresh(ctx)
}

// MarkLogoFailed clears the derived logo field for one job so rendering
// falls back to initials without re-fetching.
func (c *Coordinator) MarkLogoFailed(jobID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.jobs {
		if c.jobs[i].JobID == jobID {
			c.jobs[i].LogoDataURL = ""
			return
		}
	}
}

// Jobs returns the normalized jobs of the last response.
func (c *Coordinator) Jobs() []models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Job(nil), c.jobs...)
}

// Total returns the total element count reported by the last response.
func (c *Coordinator) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Page returns the zero-based page index of the current window.
func (c *Coordinator) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageLocked()
}

// InSearchMode reports whether requests go to the search endpoint.
func (c *Coordinator) InSearchMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchMode
}

func (c *Coordinator) pageLocked() int {
	if c.rows <= 0 {
		return 0
	}
	return c.first / c.rows
}

// refresh issues the appropriate request and normalizes the response.
func (c *Coordinator) refresh(ctx context.Context) error {
	c.mu.Lock()
	searchMode := c.searchMode
	page := c.pageLocked()
	rows := c.rows
	criteria := c.criteria
	criteria.Skills = append([]string(nil), c.criteria.Skills...)
	c.mu.Unlock()

	var resp *models.PageResponse[models.Job]
	var err error
	if searchMode {
		criteria.Page = page
		criteria.Size = rows
		criteria.SortBy, criteria.SortDirection = sortParameters(c.Sort())
		resp, err = c.lister.SearchJobs(ctx, criteria)
	} else {
		resp, err = c.lister.ListJobs(ctx, page, rows)
	}
	if err != nil {
		return err
	}

	jobs := make([]models.Job, len(resp.Content))
	for i, job := range resp.Content {
		job.LogoDataURL = CompanyLogoURL(job)
		jobs[i] = job
	}

	c.mu.Lock()
	c.jobs = jobs
	c.total = resp.TotalElements
	c.mu.Unlock()
	return nil
}

// Sort returns the active sort option.
func (c *Coordinator) Sort() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sort
}

// sortParameters maps a sort option to backend sortBy/sortDirection.
func sortParameters(sort string) (string, string) {
	switch sort {
	case SortOldest:
		return "createdAt", "ASC"
	case SortCompanyAsc:
		return "companyName", "ASC"
	case SortCompanyDesc:
		return "companyName", "DESC"
	default:
		return "createdAt", "DESC"
	}
}
