package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobdeck/jobdeck/pkg/models"
)

// EmployerProfile fetches the current employer's profile.
func (c *Client) EmployerProfile(ctx context.Context) (*models.EmployerProfile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/employer/my-profile", nil, nil)
	if err != nil {
		return nil, err
	}
	var profile models.EmployerProfile
	if err := c.doJSON(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateEmployerProfile writes profile changes.
func (c *Client) UpdateEmployerProfile(ctx context.Context, update models.EmployerProfileUpdate) (*models.EmployerProfile, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/api/employer/profile-update", nil, update)
	if err != nil {
		return nil, err
	}
	var profile models.EmployerProfile
	if err := c.doJSON(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// EmployerDashboard fetches dashboard statistics, optionally date-bounded.
func (c *Client) EmployerDashboard(ctx context.Context, startDate, endDate string) (*models.EmployerDashboardStats, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/employer/dashboard", q, nil)
	if err != nil {
		return nil, err
	}
	var stats models.EmployerDashboardStats
	if err := c.doJSON(req, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MyJobs lists postings owned by the current employer.
func (c *Client) MyJobs(ctx context.Context) ([]models.Job, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/employer/my-jobs", nil, nil)
	if err != nil {
		return nil, err
	}
	var jobs []models.Job
	if err := c.doJSON(req, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ApplicationsForJob lists applications received for one posting.
func (c *Client) ApplicationsForJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/employer/applications/"+url.PathEscape(jobID), nil, nil)
	if err != nil {
		return nil, err
	}
	var apps []models.JobApplication
	if err := c.doJSON(req, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application to a new status. The status
// travels as a query parameter, not a body.
func (c *Client) UpdateApplicationStatus(ctx context.Context, applicationID int, status string) error {
	q := url.Values{}
	q.Set("status", status)
	path := "/api/employer/application/" + strconv.Itoa(applicationID) + "/status"

	req, err := c.newJSONRequest(ctx, http.MethodPatch, path, q, struct{}{})
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

// UpdateJobStatus opens or closes a posting.
func (c *Client) UpdateJobStatus(ctx context.Context, jobID, status string) error {
	q := url.Values{}
	q.Set("status", status)
	path := "/api/employer/jobId/" + url.PathEscape(jobID) + "/status"

	req, err := c.newJSONRequest(ctx, http.MethodPatch, path, q, struct{}{})
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}

// DownloadFile fetches a stored file (resume, cover letter) as raw bytes.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/files/"+url.PathEscape(fileID), nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")
	return c.do(req)
}
