package apiclient

import (
	"context"
	"net/http"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

func (c *Client) ListAssessments(ctx context.Context) ([]model.Assessment, error) {
	var assessments []model.Assessment
	if err := c.do(ctx, http.MethodGet, "/api/assessments", nil, nil, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (c *Client) GetAssessment(ctx context.Context, id string) (model.Assessment, error) {
	var a model.Assessment
	if err := c.do(ctx, http.MethodGet, "/api/assessments/"+id, nil, nil, &a); err != nil {
		return model.Assessment{}, err
	}
	return a, nil
}

func (c *Client) GetAssessmentByJob(ctx context.Context, jobID string) (model.Assessment, error) {
	var a model.Assessment
	if err := c.do(ctx, http.MethodGet, "/api/assessments/job/"+jobID, nil, nil, &a); err != nil {
		return model.Assessment{}, err
	}
	return a, nil
}

func (c *Client) CreateAssessment(ctx context.Context, req model.CreateAssessmentRequest) (model.Assessment, error) {
	var a model.Assessment
	if err := c.do(ctx, http.MethodPost, "/api/assessments", nil, req, &a); err != nil {
		return model.Assessment{}, err
	}
	return a, nil
}

func (c *Client) UpdateAssessment(ctx context.Context, id string, patch model.AssessmentPatch) (model.Assessment, error) {
	var a model.Assessment
	if err := c.do(ctx, http.MethodPut, "/api/assessments/"+id, nil, patch, &a); err != nil {
		return model.Assessment{}, err
	}
	return a, nil
}

func (c *Client) DeleteAssessment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/assessments/"+id, nil, nil, nil)
}
