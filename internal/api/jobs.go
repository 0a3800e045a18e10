package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jobdeck/jobdeck/internal/search"
	"github.com/jobdeck/jobdeck/pkg/models"
)

// ListJobs fetches the unfiltered paged listing.
func (c *Client) ListJobs(ctx context.Context, page, size int) (*models.PageResponse[models.Job], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	req, err := c.newRequest(ctx, http.MethodGet, "/api/jobs/jobs", q, nil)
	if err != nil {
		return nil, err
	}
	var resp models.PageResponse[models.Job]
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchJobs runs a filtered search with the given criteria.
func (c *Client) SearchJobs(ctx context.Context, criteria search.Criteria) (*models.PageResponse[models.Job], error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/jobs/search", nil, criteria)
	if err != nil {
		return nil, err
	}
	var resp models.PageResponse[models.Job]
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetJob fetches one posting by its public job id.
func (c *Client) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/jobs/jobId/"+url.PathEscape(jobID), nil, nil)
	if err != nil {
		return nil, err
	}
	var job models.Job
	if err := c.doJSON(req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DisclosureQuestions fetches the employer-defined questions for a job.
func (c *Client) DisclosureQuestions(ctx context.Context, jobID string) (*models.JobDisclosureQuestions, error) {
	path := "/api/jobs/" + url.PathEscape(jobID) + "/disclosure-questions"
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	var dto models.JobDisclosureQuestions
	if err := c.doJSON(req, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// Apply submits a job application as multipart form data: an applicationData
// JSON part plus optional resume and cover-letter file parts. Files are
// validated client-side before the request is attempted. The submission is
// all-or-nothing; a failure anywhere reports the whole application failed.
func (c *Client) Apply(ctx context.Context, jobID string, submission models.ApplicationSubmission, resumePath, coverLetterPath string) (*models.JobApplication, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	payload, err := json.Marshal(submission)
	if err != nil {
		return nil, fmt.Errorf("failed to encode application data: %w", err)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="applicationData"`)
	header.Set("Content-Type", "application/json")
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build application part: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return nil, fmt.Errorf("failed to write application part: %w", err)
	}

	if resumePath != "" {
		if err := attachFile(w, "resumeFile", resumePath); err != nil {
			return nil, err
		}
	}
	if coverLetterPath != "" {
		if err := attachFile(w, "coverLetterFile", coverLetterPath); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/jobs/apply/"+url.PathEscape(jobID), nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var application models.JobApplication
	if err := c.doJSON(req, &application); err != nil {
		return nil, err
	}
	return &application, nil
}

// CreateJob posts a new job on behalf of the current employer.
func (c *Client) CreateJob(ctx context.Context, job models.JobCreate) (*models.Job, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/jobs/create-job", nil, job)
	if err != nil {
		return nil, err
	}
	var created models.Job
	if err := c.doJSON(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// attachFile validates a local file and streams it into a multipart part
// with its real MIME type.
func attachFile(w *multipart.Writer, field, path string) error {
	contentType, err := ValidateUpload(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to build %s part: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}
