// Package search keeps three views of the active filter state consistent:
// the in-memory criteria object, the shareable deep-link query string, and
// the outbound search request. Free-text edits are debounced; everything
// else applies synchronously.
package search

import (
	"net/url"
	"strconv"
	"strings"
)

// Criteria defaults. Absence from the query string means "use default".
const (
	DefaultPage          = 0
	DefaultSize          = 10
	DefaultSortBy        = "createdAt"
	DefaultSortDirection = "DESC"
)

// Criteria is the structured representation of active search filters. It is
// transient: reconstructed from a query string on load and serialized back
// on every change. Equality is structural.
type Criteria struct {
	CompanyName     string   `json:"companyName,omitempty"`
	JobTitle        string   `json:"jobTitle,omitempty"`
	Location        string   `json:"location,omitempty"`
	JobType         string   `json:"jobType,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Page            int      `json:"page"`
	Size            int      `json:"size"`
	SortBy          string   `json:"sortBy,omitempty"`
	SortDirection   string   `json:"sortDirection,omitempty"`
}

// Default returns criteria with every filter empty and paging/sort defaults.
func Default() Criteria {
	return Criteria{
		Page:          DefaultPage,
		Size:          DefaultSize,
		SortBy:        DefaultSortBy,
		SortDirection: DefaultSortDirection,
	}
}

// HasFilters reports whether any filter field is set. Paging and sort alone
// do not make criteria non-empty.
func (c Criteria) HasFilters() bool {
	return c.CompanyName != "" || c.JobTitle != "" || c.Location != "" ||
		c.JobType != "" || c.ExperienceLevel != "" || len(c.Skills) > 0
}

// Equal reports structural equality.
func (c Criteria) Equal(other Criteria) bool {
	if c.CompanyName != other.CompanyName || c.JobTitle != other.JobTitle ||
		c.Location != other.Location || c.JobType != other.JobType ||
		c.ExperienceLevel != other.ExperienceLevel ||
		c.Page != other.Page || c.Size != other.Size ||
		c.SortBy != other.SortBy || c.SortDirection != other.SortDirection {
		return false
	}
	if len(c.Skills) != len(other.Skills) {
		return false
	}
	for i := range c.Skills {
		if c.Skills[i] != other.Skills[i] {
			return false
		}
	}
	return true
}

// AddSkill appends a skill unless an equal skill (case-insensitive) is
// already present. The first-seen casing wins.
func (c *Criteria) AddSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}
	for _, existing := range c.Skills {
		if strings.EqualFold(existing, skill) {
			return false
		}
	}
	c.Skills = append(c.Skills, skill)
	return true
}

// RemoveSkill removes a skill by case-insensitive match.
func (c *Criteria) RemoveSkill(skill string) bool {
	for i, existing := range c.Skills {
		if strings.EqualFold(existing, strings.TrimSpace(skill)) {
			c.Skills = append(c.Skills[:i], c.Skills[i+1:]...)
			return true
		}
	}
	return false
}

// NormalizeSkills collapses a raw skill list to the canonical form: trimmed,
// empties dropped, case-insensitively deduplicated, order preserved.
func NormalizeSkills(raw []string) []string {
	var out []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		dup := false
		for _, seen := range out {
			if strings.EqualFold(seen, s) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// Values serializes only the non-default, non-empty fields. All-defaults
// criteria yield an empty set, so the query string is the "default" marker.
func (c Criteria) Values() url.Values {
	q := url.Values{}
	if c.JobTitle != "" {
		q.Set("title", c.JobTitle)
	}
	if c.Location != "" {
		q.Set("location", c.Location)
	}
	if c.CompanyName != "" {
		q.Set("company", c.CompanyName)
	}
	if c.JobType != "" {
		q.Set("jobType", c.JobType)
	}
	if c.ExperienceLevel != "" {
		q.Set("experience", c.ExperienceLevel)
	}
	for _, skill := range c.Skills {
		q.Add("skills", skill)
	}
	if c.Page > DefaultPage {
		q.Set("page", strconv.Itoa(c.Page))
	}
	if c.Size > 0 && c.Size != DefaultSize {
		q.Set("size", strconv.Itoa(c.Size))
	}
	if c.SortBy != "" && c.SortBy != DefaultSortBy {
		q.Set("sortBy", c.SortBy)
	}
	if c.SortDirection != "" && c.SortDirection != DefaultSortDirection {
		q.Set("sortDirection", c.SortDirection)
	}
	return q
}

// QueryString is the encoded deep-link form of the criteria.
func (c Criteria) QueryString() string {
	return c.Values().Encode()
}

// Parse reconstructs criteria from query parameters, applying defaults for
// anything absent or unparseable.
func Parse(q url.Values) Criteria {
	c := Default()
	c.JobTitle = q.Get("title")
	c.Location = q.Get("location")
	c.CompanyName = q.Get("company")
	c.JobType = q.Get("jobType")
	c.ExperienceLevel = q.Get("experience")
	c.Skills = NormalizeSkills(q["skills"])

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page >= 0 {
		c.Page = page
	}
	if size, err := strconv.Atoi(q.Get("size")); err == nil && size > 0 {
		c.Size = size
	}
	if sortBy := q.Get("sortBy"); sortBy != "" {
		c.SortBy = sortBy
	}
	if dir := q.Get("sortDirection"); dir == "ASC" || dir == "DESC" {
		c.SortDirection = dir
	}
	return c
}

// ParseQueryString parses an encoded deep link, e.g.
// "title=Senior&location=NYC&page=1". A leading "?" is tolerated.
func ParseQueryString(raw string) (Criteria, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	q, err := url.ParseQuery(raw)
	if err != nil {
		return Default(), err
	}
	return Parse(q), nil
}
