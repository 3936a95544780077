package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vivo1806/Talent-Flow/pkg/model"
)

// CandidateQuery selects a page of candidates. Zero values fall back to the
// server defaults (page 1, limit 50, status all).
type CandidateQuery struct {
	Search string
	Status string
	Page   int
	Limit  int
}

func (c *Client) ListCandidates(ctx context.Context, query CandidateQuery) (model.CandidatePage, error) {
	q := url.Values{}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.Status != "" {
		q.Set("status", query.Status)
	}
	if query.Page > 0 {
		q.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}

	var page model.CandidatePage
	if err := c.do(ctx, http.MethodGet, "/api/candidates", q, nil, &page); err != nil {
		return model.CandidatePage{}, err
	}
	return page, nil
}

func (c *Client) GetCandidate(ctx context.Context, id string) (model.Candidate, error) {
	var cand model.Candidate
	if err := c.do(ctx, http.MethodGet, "/api/candidates/"+id, nil, nil, &cand); err != nil {
		return model.Candidate{}, err
	}
	return cand, nil
}

func (c *Client) UpdateCandidateStatus(ctx context.Context, id string, status model.CandidateStatus) (model.Candidate, error) {
	var cand model.Candidate
	req := model.UpdateCandidateStatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPatch, "/api/candidates/"+id+"/status", nil, req, &cand); err != nil {
		return model.Candidate{}, err
	}
	return cand, nil
}

func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/candidates/"+id, nil, nil, nil)
}

func (c *Client) AddCandidateNote(ctx context.Context, id string, note model.Note) (model.Note, error) {
	var created model.Note
	if err := c.do(ctx, http.MethodPost, "/api/candidates/"+id+"/notes", nil, note, &created); err != nil {
		return model.Note{}, err
	}
	return created, nil
}

func (c *Client) CandidateHistory(ctx context.Context, id string) ([]model.StatusChange, error) {
	var history []model.StatusChange
	if err := c.do(ctx, http.MethodGet, "/api/candidates/"+id+"/history", nil, nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}
