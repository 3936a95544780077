package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

func (c *Client) ListJobs(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id string) (model.Job, error) {
	var job model.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+id, nil, nil, &job); err != nil {
		return model.Job{}, err
	}
	return job, nil
}

func (c *Client) CreateJob(ctx context.Context, req model.CreateJobRequest) (model.Job, error) {
	var job model.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", nil, req, &job); err != nil {
		return model.Job{}, err
	}
	return job, nil
}

func (c *Client) UpdateJob(ctx context.Context, id string, patch model.JobPatch) (model.Job, error) {
	var job model.Job
	if err := c.do(ctx, http.MethodPut, "/api/jobs/"+id, nil, patch, &job); err != nil {
		return model.Job{}, err
	}
	return job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/jobs/"+id, nil, nil, nil)
}

// ReorderJobs submits the full desired id order and returns the jobs as the
// server now has them.
func (c *Client) ReorderJobs(ctx context.Context, jobIDs []string) ([]model.Job, error) {
	var resp model.ReorderJobsResponse
	req := model.ReorderJobsRequest{JobIDs: jobIDs}
	if err := c.do(ctx, http.MethodPatch, "/api/jobs/reorder", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

func (c *Client) ArchiveJob(ctx context.Context, id string) (model.Job, error) {
	var job model.Job
	if err := c.do(ctx, http.MethodPatch, "/api/jobs/"+id+"/archive", nil, nil, &job); err != nil {
		return model.Job{}, err
	}
	return job, nil
}

func (c *Client) UnarchiveJob(ctx context.Context, id string) (model.Job, error) {
	var job model.Job
	if err := c.do(ctx, http.MethodPatch, "/api/jobs/"+id+"/unarchive", nil, nil, &job); err != nil {
		return model.Job{}, err
	}
	return job, nil
}

// ValidateSlug checks slug uniqueness; excludeID exempts the job being edited.
func (c *Client) ValidateSlug(ctx context.Context, slug, excludeID string) (bool, error) {
	q := url.Values{"slug": {slug}}
	if excludeID != "" {
		q.Set("excludeId", excludeID)
	}
	var v model.SlugValidation
	if err := c.do(ctx, http.MethodGet, "/api/jobs/validate-slug", q, nil, &v); err != nil {
		return false, err
	}
	return v.IsValid, nil
}

func (c *Client) ListApplications(ctx context.Context, jobID string) ([]model.Application, error) {
	var apps []model.Application
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+jobID+"/applications", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) SubmitApplication(ctx context.Context, req model.SubmitApplicationRequest) (model.Application, error) {
	var app model.Application
	if err := c.do(ctx, http.MethodPost, "/api/applications", nil, req, &app); err != nil {
		return model.Application{}, err
	}
	return app, nil
}
