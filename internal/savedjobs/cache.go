// Package savedjobs maintains the client-local mirror of which jobs the
// current candidate has bookmarked: a set of job-id strings plus the
// last-fetched job list. The server remains the source of truth; the cache
// exists so the UI can answer "is this saved?" without a round trip.
package savedjobs

import (
	"context"
	"sync"

	"github.com/jobdeck/jobdeck/internal/session"
	"github.com/jobdeck/jobdeck/pkg/models"
)

// Backend is the slice of the API client the cache talks to.
type Backend interface {
	SaveJob(ctx context.Context, jobID string) (*models.SavedJob, error)
	UnsaveJob(ctx context.Context, jobID string) (string, error)
	SavedJobs(ctx context.Context) ([]models.Job, error)
	IsJobSaved(ctx context.Context, jobID string) (bool, error)
}

// Cache is shared process-wide and mutated only by its own methods.
// Every operation is an inert no-op unless the session role is CANDIDATE;
// the server independently enforces authorization.
type Cache struct {
	backend Backend
	session *session.Store

	mu   sync.RWMutex
	ids  map[string]struct{}
	jobs []models.Job
}

// NewCache builds the cache and, when the current role qualifies, performs
// the initial load. A failed initial load leaves the cache empty; the next
// Refresh repopulates it.
func NewCache(ctx context.Context, backend Backend, sess *session.Store) *Cache {
	c := &Cache{
		backend: backend,
		session: sess,
		ids:     map[string]struct{}{},
	}
	if c.candidate() {
		_ = c.Refresh(ctx)
	}
	return c
}

func (c *Cache) candidate() bool {
	return c.session.HasRole(models.RoleCandidate)
}

// Save bookmarks a job. On success the id is added to the cached set and
// the full list is reloaded (reload rather than merge, to pick up
// server-computed fields). The id is applied before the reload confirms;
// a failed reload does not roll it back.
func (c *Cache) Save(ctx context.Context, jobID string) (*models.SavedJob, error) {
	if !c.candidate() {
		return nil, nil
	}

	saved, err := c.backend.SaveJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.ids[jobID] = struct{}{}
	c.mu.Unlock()

	_ = c.Refresh(ctx)
	return saved, nil
}

// Unsave removes a bookmark. On success the id leaves the set and the
// cached list is filtered locally; removal needs no fresh server data.
func (c *Cache) Unsave(ctx context.Context, jobID string) error {
	if !c.candidate() {
		return nil
	}

	if _, err := c.backend.UnsaveJob(ctx, jobID); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.ids, jobID)
	filtered := c.jobs[:0]
	for _, job := range c.jobs {
		if job.JobID != jobID {
			filtered = append(filtered, job)
		}
	}
	c.jobs = filtered
	c.mu.Unlock()
	return nil
}

// IsSavedSync answers from the cached id set without touching the network.
// May be stale until the next reload.
func (c *Cache) IsSavedSync(jobID string) bool {
	if !c.candidate() {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ids[jobID]
	return ok
}

// IsSaved asks the server directly.
func (c *Cache) IsSaved(ctx context.Context, jobID string) (bool, error) {
	if !c.candidate() {
		return false, nil
	}
	return c.backend.IsJobSaved(ctx, jobID)
}

// Refresh replaces the cached list and id set with the server's state.
func (c *Cache) Refresh(ctx context.Context) error {
	if !c.candidate() {
		return nil
	}

	jobs, err := c.backend.SavedJobs(ctx)
	if err != nil {
		return err
	}

	ids := make(map[string]struct{}, len(jobs))
	for _, job := range jobs {
		ids[job.JobID] = struct{}{}
	}

	c.mu.Lock()
	c.ids = ids
	c.jobs = jobs
	c.mu.Unlock()
	return nil
}

// Jobs returns a snapshot of the last-fetched saved-job list.
func (c *Cache) Jobs() []models.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Job(nil), c.jobs...)
}
