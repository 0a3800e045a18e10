package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jobdeck/jobdeck/pkg/models"
)

// CandidateProfile fetches the current candidate's profile.
func (c *Client) CandidateProfile(ctx context.Context) (*models.CandidateProfile, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/candidate/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	var profile models.CandidateProfile
	if err := c.doJSON(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateCandidateProfile writes profile changes.
func (c *Client) UpdateCandidateProfile(ctx context.Context, update models.CandidateProfileUpdate) (*models.CandidateProfile, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/api/candidate/profile-update", nil, update)
	if err != nil {
		return nil, err
	}
	var profile models.CandidateProfile
	if err := c.doJSON(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UploadResume replaces the candidate's stored resume.
func (c *Client) UploadResume(ctx context.Context, path string) (*models.CandidateProfile, error) {
	contentType, err := ValidateUpload(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path)))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/candidate/resume", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var profile models.CandidateProfile
	if err := c.doJSON(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CandidateDashboard fetches dashboard statistics, optionally bounded by a
// date range (dates travel as YYYY-MM-DD).
func (c *Client) CandidateDashboard(ctx context.Context, start, end *time.Time) (*models.CandidateDashboardStats, error) {
	q := url.Values{}
	if start != nil {
		q.Set("startDate", start.Format("2006-01-02"))
	}
	if end != nil {
		q.Set("endDate", end.Format("2006-01-02"))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/candidate/dashboard", q, nil)
	if err != nil {
		return nil, err
	}
	var stats models.CandidateDashboardStats
	if err := c.doJSON(req, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// MyApplications fetches the candidate's applications, paged.
func (c *Client) MyApplications(ctx context.Context, page, size int) (*models.PageResponse[models.JobApplication], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	req, err := c.newRequest(ctx, http.MethodGet, "/api/candidate/my-applications", q, nil)
	if err != nil {
		return nil, err
	}
	var resp models.PageResponse[models.JobApplication]
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
