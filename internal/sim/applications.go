package sim

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vivo1806/Talent-Flow/pkg/model"
	"github.com/vivo1806/Talent-Flow/pkg/response"
)

// ListApplications returns all applications submitted for a job
func (s *Simulator) ListApplications(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch applications") {
		return
	}

	apps, err := s.store.ListApplicationsByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.log.Error("list_applications: query failed", zap.String("jobId", c.Param("id")), zap.Error(err))
		response.InternalError(c, "Failed to fetch applications")
		return
	}

	response.OK(c, apps)
}

// SubmitApplication records a new application with status=pending
func (s *Simulator) SubmitApplication(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to submit application") {
		return
	}

	var req model.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	app := model.Application{
		ID:            uuid.New().String(),
		JobID:         req.JobID,
		CandidateName: req.CandidateName,
		Email:         req.Email,
		Phone:         req.Phone,
		Resume:        req.Resume,
		CoverLetter:   req.CoverLetter,
		Status:        model.ApplicationStatusPending,
		AppliedAt:     time.Now(),
	}

	if err := s.store.CreateApplication(c.Request.Context(), app); err != nil {
		s.log.Error("submit_application: insert failed", zap.Error(err))
		response.InternalError(c, "Failed to submit application")
		return
	}

	s.log.Info("submit_application: application received", zap.String("id", app.ID), zap.String("jobId", app.JobID))
	response.Created(c, app)
}
