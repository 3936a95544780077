package sim

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Routes builds the HTTP-shaped endpoint surface of the simulated backend.
func (s *Simulator) Routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Sugar().Debugw("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		jobs := api.Group("/jobs")
		{
			jobs.GET("", s.ListJobs)
			jobs.POST("", s.CreateJob)
			jobs.GET("/validate-slug", s.ValidateSlug)
			jobs.PATCH("/reorder", s.ReorderJobs)
			jobs.GET("/:id", s.GetJob)
			jobs.PUT("/:id", s.UpdateJob)
			jobs.DELETE("/:id", s.DeleteJob)
			jobs.PATCH("/:id/archive", s.ArchiveJob)
			jobs.PATCH("/:id/unarchive", s.UnarchiveJob)
			jobs.GET("/:id/applications", s.ListApplications)
		}

		api.POST("/applications", s.SubmitApplication)

		candidates := api.Group("/candidates")
		{
			candidates.GET("", s.ListCandidates)
			candidates.GET("/:id", s.GetCandidate)
			candidates.DELETE("/:id", s.DeleteCandidate)
			candidates.PATCH("/:id/status", s.UpdateCandidateStatus)
			candidates.POST("/:id/notes", s.AddCandidateNote)
			candidates.GET("/:id/history", s.CandidateHistory)
		}

		assessments := api.Group("/assessments")
		{
			assessments.GET("", s.ListAssessments)
			assessments.POST("", s.CreateAssessment)
			assessments.GET("/job/:jobId", s.GetAssessmentByJob)
			assessments.GET("/:id", s.GetAssessment)
			assessments.PUT("/:id", s.UpdateAssessment)
			assessments.DELETE("/:id", s.DeleteAssessment)
		}
	}

	return r
}
