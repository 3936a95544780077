package model

import "time"

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// Job is a posting. Order defines the display position among all jobs and is
// normalized to the index sequence on every reorder. Slug is unique across
// non-deleted jobs.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         JobType   `json:"type"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	PostedAt     time.Time `json:"postedAt"`
	Status       JobStatus `json:"status"`
	Order        int       `json:"order"`
	Archived     bool      `json:"archived"`
	Slug         string    `json:"slug,omitempty"`
}

// CreateJobRequest carries the client-supplied fields of a new posting. The
// server assigns id, postedAt, status and order.
type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Location     string   `json:"location"`
	Type         JobType  `json:"type" binding:"required,oneof=full-time part-time contract"`
	Salary       string   `json:"salary"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Slug         string   `json:"slug"`
}

// JobPatch is a partial update; nil fields are left untouched.
type JobPatch struct {
	Title        *string    `json:"title,omitempty"`
	Company      *string    `json:"company,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Type         *JobType   `json:"type,omitempty"`
	Salary       *string    `json:"salary,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Requirements *[]string  `json:"requirements,omitempty"`
	Status       *JobStatus `json:"status,omitempty"`
	Order        *int       `json:"order,omitempty"`
	Archived     *bool      `json:"archived,omitempty"`
	Slug         *string    `json:"slug,omitempty"`
}

type ReorderJobsRequest struct {
	JobIDs []string `json:"jobIds" binding:"required,min=1"`
}

type ReorderJobsResponse struct {
	Success bool  `json:"success"`
	Jobs    []Job `json:"jobs"`
}

type SlugValidation struct {
	IsValid bool `json:"isValid"`
}
