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

// ListAssessments returns all assessments
func (s *Simulator) ListAssessments(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch assessments") {
		return
	}

	assessments, err := s.store.ListAssessments(c.Request.Context())
	if err != nil {
		s.log.Error("list_assessments: query failed", zap.Error(err))
		response.InternalError(c, "Failed to fetch assessments")
		return
	}

	response.OK(c, assessments)
}

// GetAssessment returns a single assessment by id
func (s *Simulator) GetAssessment(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch assessment") {
		return
	}

	a, err := s.store.GetAssessment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		s.log.Error("get_assessment: query failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to fetch assessment")
		return
	}

	response.OK(c, a)
}

// GetAssessmentByJob returns the assessment linked to a job
func (s *Simulator) GetAssessmentByJob(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch assessment") {
		return
	}

	a, err := s.store.GetAssessmentByJob(c.Request.Context(), c.Param("jobId"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(c, "Assessment not found for this job")
		return
	}
	if err != nil {
		s.log.Error("get_assessment_by_job: query failed", zap.String("jobId", c.Param("jobId")), zap.Error(err))
		response.InternalError(c, "Failed to fetch assessment")
		return
	}

	response.OK(c, a)
}

// CreateAssessment persists a new assessment. Each job can have at most one;
// a second create for the same job is rejected.
func (s *Simulator) CreateAssessment(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to create assessment") {
		return
	}

	var req model.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	if _, err := s.store.GetAssessmentByJob(ctx, req.JobID); err == nil {
		response.BadRequest(c, "Assessment already exists for this job")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		s.log.Error("create_assessment: conflict check failed", zap.String("jobId", req.JobID), zap.Error(err))
		response.InternalError(c, "Failed to create assessment")
		return
	}

	now := time.Now()
	a := model.Assessment{
		ID:           uuid.New().String(),
		JobID:        req.JobID,
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		PassingScore: req.PassingScore,
		Questions:    req.Questions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateAssessment(ctx, a); err != nil {
		s.log.Error("create_assessment: insert failed", zap.Error(err))
		response.InternalError(c, "Failed to create assessment")
		return
	}

	s.log.Info("create_assessment: assessment created", zap.String("id", a.ID), zap.String("jobId", a.JobID))
	response.Created(c, a)
}

// UpdateAssessment merges a partial patch and refreshes updatedAt
func (s *Simulator) UpdateAssessment(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to update assessment") {
		return
	}

	var patch model.AssessmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	a, err := s.store.UpdateAssessment(c.Request.Context(), c.Param("id"), patch, time.Now())
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(c, "Assessment not found")
		return
	}
	if err != nil {
		s.log.Error("update_assessment: update failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to update assessment")
		return
	}

	response.OK(c, a)
}

// DeleteAssessment removes an assessment by id
func (s *Simulator) DeleteAssessment(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to delete assessment") {
		return
	}

	if err := s.store.DeleteAssessment(c.Request.Context(), c.Param("id")); err != nil {
		s.log.Error("delete_assessment: delete failed", zap.String("id", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to delete assessment")
		return
	}

	response.Success(c, nil)
}
