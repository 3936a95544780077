package sim

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/internal/store"
	"github.com/vivo1806/Talent-Flow/pkg/model"
	"github.com/vivo1806/Talent-Flow/pkg/response"
)

// ListJobs returns all jobs ordered by display position
func (s *Simulator) ListJobs(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch jobs") {
		return
	}

	jobs, err := s.store.ListJobs(c.Request.Context())
	if err != nil {
		s.log.Error("list_jobs: query failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch jobs")
		return
	}

	response.OK(c, jobs)
}

// GetJob returns a single job by id
func (s *Simulator) GetJob(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch job details") {
		return
	}

	job, err := s.store.GetJob(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(c, "Job not found")
		return
	}
	if err != nil {
		s.log.Error("get_job: query failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to fetch job details")
		return
	}

	response.OK(c, job)
}

// CreateJob assigns a new id, postedAt=now, status=open and the next display
// position, then persists the job
func (s *Simulator) CreateJob(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to create job") {
		return
	}

	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	maxOrder, err := s.store.MaxJobOrder(ctx)
	if err != nil {
		s.log.Error("create_job: max order failed", zap.Error(err))
		response.InternalError(c, "Failed to create job")
		return
	}

	job := model.Job{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Salary:       req.Salary,
		Description:  req.Description,
		Requirements: req.Requirements,
		PostedAt:     time.Now(),
		Status:       model.JobStatusOpen,
		Order:        maxOrder + 1,
		Slug:         req.Slug,
	}

	if err := s.store.CreateJob(ctx, job); err != nil {
		s.log.Error("create_job: insert failed", zap.Error(err))
		response.InternalError(c, "Failed to create job")
		return
	}

	s.log.Info("create_job: job created", zap.String("id", job.ID), zap.String("title", job.Title))
	response.Created(c, job)
}

// UpdateJob applies a partial patch by id
func (s *Simulator) UpdateJob(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to update job") {
		return
	}

	var patch model.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	job, err := s.store.UpdateJob(c.Request.Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(c, "Job not found")
		return
	}
	if err != nil {
		s.log.Error("update_job: update failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to update job")
		return
	}

	response.OK(c, job)
}

// DeleteJob removes a job by id
func (s *Simulator) DeleteJob(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to delete job") {
		return
	}

	if err := s.store.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		s.log.Error("delete_job: delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to delete job")
		return
	}

	response.Success(c, nil)
}

// ReorderJobs sets each job's display position to its index in the supplied
// id list; the batch is applied in one transaction
func (s *Simulator) ReorderJobs(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to reorder jobs") {
		return
	}

	var req model.ReorderJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	if err := s.store.ReorderJobs(ctx, req.JobIDs); err != nil {
		s.log.Error("reorder_jobs: batch failed", zap.Error(err))
		response.InternalError(c, "Failed to reorder jobs")
		return
	}

	jobs, err := s.store.ListJobs(ctx)
	if err != nil {
		s.log.Error("reorder_jobs: list failed", zap.Error(err))
		response.InternalError(c, "Failed to reorder jobs")
		return
	}

	response.Success(c, gin.H{"jobs": jobs})
}

// ArchiveJob sets the archived flag
func (s *Simulator) ArchiveJob(c *gin.Context) {
	s.setArchived(c, true, "Network error: Failed to archive job")
}

// UnarchiveJob clears the archived flag
func (s *Simulator) UnarchiveJob(c *gin.Context) {
	s.setArchived(c, false, "Network error: Failed to unarchive job")
}

func (s *Simulator) setArchived(c *gin.Context, archived bool, failMessage string) {
	if s.intercept(c, failMessage) {
		return
	}

	job, err := s.store.UpdateJob(c.Request.Context(), c.Param("id"), model.JobPatch{Archived: &archived})
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(c, "Job not found")
		return
	}
	if err != nil {
		s.log.Error("archive_job: update failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c, failMessage)
		return
	}

	response.OK(c, job)
}

// ValidateSlug reports whether a slug is free, optionally excluding one job
// id (the record being edited). This endpoint skips latency and failure
// injection so inline form validation stays snappy.
func (s *Simulator) ValidateSlug(c *gin.Context) {
	slug := c.Query("slug")
	excludeID := c.Query("excludeId")

	if slug == "" {
		response.OK(c, model.SlugValidation{IsValid: false})
		return
	}

	existing, err := s.store.FindJobBySlug(c.Request.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		response.OK(c, model.SlugValidation{IsValid: true})
		return
	}
	if err != nil {
		s.log.Error("validate_slug: query failed", zap.String("slug", slug), zap.Error(err))
		response.InternalError(c, "Failed to validate slug")
		return
	}

	if excludeID != "" && existing.ID == excludeID {
		response.OK(c, model.SlugValidation{IsValid: true})
		return
	}

	response.OK(c, model.SlugValidation{IsValid: false})
}
