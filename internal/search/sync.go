package search

import (
	"strings"
	"sync"
	"time"
)

// Synchronizer owns the criteria object and its query-string mirror. Free
// text goes through per-field debouncers; dropdown and skill edits apply
// synchronously. Every settled change resets the page to 0, rewrites the
// query string, and emits the full criteria to the consumer. The consumer
// alone handles the eventual HTTP failure; nothing here touches the network.
type Synchronizer struct {
	emit func(Criteria)

	title    *Debouncer
	location *Debouncer
	company  *Debouncer

	mu       sync.Mutex
	criteria Criteria
	query    string
}

// NewSynchronizer builds a synchronizer with the given quiet period for
// free-text fields. The emit callback runs off the caller's goroutine when
// triggered by a debounce settle.
func NewSynchronizer(quiet time.Duration, emit func(Criteria)) *Synchronizer {
	s := &Synchronizer{
		emit:     emit,
		criteria: Default(),
	}
	s.title = NewDebouncer(quiet, func(v string) { s.applyText(&s.criteria.JobTitle, v) })
	s.location = NewDebouncer(quiet, func(v string) { s.applyText(&s.criteria.Location, v) })
	s.company = NewDebouncer(quiet, func(v string) { s.applyText(&s.criteria.CompanyName, v) })
	return s
}

// SetTitle pushes a raw title edit into the debounce stream.
func (s *Synchronizer) SetTitle(raw string) { s.title.Push(strings.TrimSpace(raw)) }

// SetLocation pushes a raw location edit into the debounce stream.
func (s *Synchronizer) SetLocation(raw string) { s.location.Push(strings.TrimSpace(raw)) }

// SetCompanyName pushes a raw company-name edit into the debounce stream.
func (s *Synchronizer) SetCompanyName(raw string) { s.company.Push(strings.TrimSpace(raw)) }

// SetJobType applies a job-type selection immediately.
func (s *Synchronizer) SetJobType(value string) {
	s.mu.Lock()
	if s.criteria.JobType == value {
		s.mu.Unlock()
		return
	}
	s.criteria.JobType = value
	c := s.changedLocked()
	s.mu.Unlock()
	s.emit(c)
}

// SetExperienceLevel applies an experience-level selection immediately.
func (s *Synchronizer) SetExperienceLevel(value string) {
	s.mu.Lock()
	if s.criteria.ExperienceLevel == value {
		s.mu.Unlock()
		return
	}
	s.criteria.ExperienceLevel = value
	c := s.changedLocked()
	s.mu.Unlock()
	s.emit(c)
}

// AddSkill applies immediately. Duplicates differing only in case are
// rejected.
func (s *Synchronizer) AddSkill(skill string) {
	s.mu.Lock()
	if !s.criteria.AddSkill(skill) {
		s.mu.Unlock()
		return
	}
	c := s.changedLocked()
	s.mu.Unlock()
	s.emit(c)
}

// RemoveSkill applies immediately.
func (s *Synchronizer) RemoveSkill(skill string) {
	s.mu.Lock()
	if !s.criteria.RemoveSkill(skill) {
		s.mu.Unlock()
		return
	}
	c := s.changedLocked()
	s.mu.Unlock()
	s.emit(c)
}

// LoadQuery seeds the criteria from a deep-link query string. When the link
// carries parameters the criteria are emitted immediately so the listing
// loads pre-filtered; an empty link leaves the synchronizer idle.
func (s *Synchronizer) LoadQuery(raw string) error {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	if raw == "" {
		return nil
	}
	parsed, err := ParseQueryString(raw)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.criteria = parsed
	s.query = parsed.QueryString()
	c := s.snapshotLocked()
	s.mu.Unlock()
	s.emit(c)
	return nil
}

// Clear resets criteria to defaults, strips the query string, and emits the
// default criteria so the consumer falls back to an unfiltered listing.
func (s *Synchronizer) Clear() {
	s.mu.Lock()
	s.criteria = Default()
	s.query = ""
	c := s.snapshotLocked()
	s.mu.Unlock()
	s.emit(c)
}

// Criteria returns a snapshot of the current criteria.
func (s *Synchronizer) Criteria() Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// QueryString returns the current deep-link mirror.
func (s *Synchronizer) QueryString() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Flush forces any pending free-text edits to settle now.
func (s *Synchronizer) Flush() {
	s.title.Flush()
	s.location.Flush()
	s.company.Flush()
}

// Close stops the debounce streams. Pending edits are discarded.
func (s *Synchronizer) Close() {
	s.title.Stop()
	s.location.Stop()
	s.company.Stop()
}

// applyText lands a settled debounced value on its criteria field.
func (s *Synchronizer) applyText(field *string, value string) {
	s.mu.Lock()
	if *field == value {
		s.mu.Unlock()
		return
	}
	*field = value
	c := s.changedLocked()
	s.mu.Unlock()
	s.emit(c)
}

func (s *Synchronizer) changedLocked() Criteria {
	s.criteria.Page = 0
	s.query = s.criteria.QueryString()
	return s.snapshotLocked()
}

func (s *Synchronizer) snapshotLocked() Criteria {
	c := s.criteria
	c.Skills = append([]string(nil), s.criteria.Skills...)
	return c
}
