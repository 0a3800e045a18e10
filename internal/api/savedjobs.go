package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobdeck/jobdeck/pkg/models"
)

// SaveJob bookmarks a job for the current candidate.
func (c *Client) SaveJob(ctx context.Context, jobID string) (*models.SavedJob, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/saved-jobs/"+url.PathEscape(jobID), nil, struct{}{})
	if err != nil {
		return nil, err
	}
	var saved models.SavedJob
	if err := c.doJSON(req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// UnsaveJob removes a bookmark. The server responds with plain text.
func (c *Client) UnsaveJob(ctx context.Context, jobID string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/saved-jobs/"+url.PathEscape(jobID), nil, nil)
	if err != nil {
		return "", err
	}
	return c.doText(req)
}

// SavedJobs fetches the candidate's full saved-job list.
func (c *Client) SavedJobs(ctx context.Context) ([]models.Job, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/saved-jobs", nil, nil)
	if err != nil {
		return nil, err
	}
	var jobs []models.Job
	if err := c.doJSON(req, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// IsJobSaved asks the server whether one job is bookmarked.
func (c *Client) IsJobSaved(ctx context.Context, jobID string) (bool, error) {
	path := "/api/saved-jobs/" + url.PathEscape(jobID) + "/is-saved"
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return false, err
	}
	body, err := c.do(req)
	if err != nil {
		return false, err
	}
	saved, err := strconv.ParseBool(string(body))
	if err != nil {
		return false, nil
	}
	return saved, nil
}
