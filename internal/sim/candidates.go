package sim

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vivo1806/Talent-Flow/pkg/model"
	"github.com/vivo1806/Talent-Flow/pkg/response"
)

const defaultCandidateLimit = 50

// ListCandidates serves the paginated candidate list. Search is a
// case-insensitive substring match on name or email; status filters exactly
// unless "all".
func (s *Simulator) ListCandidates(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch candidates") {
		return
	}

	search := c.Query("search")
	status := c.DefaultQuery("status", "all")
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", defaultCandidateLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultCandidateLimit
	}

	s.mu.Lock()
	filtered := make([]model.Candidate, 0, len(s.candidates))
	searchLower := strings.ToLower(search)
	for _, cand := range s.candidates {
		if search != "" &&
			!strings.Contains(strings.ToLower(cand.Name), searchLower) &&
			!strings.Contains(strings.ToLower(cand.Email), searchLower) {
			continue
		}
		if status != "all" && string(cand.Status) != status {
			continue
		}
		filtered = append(filtered, cand)
	}
	s.mu.Unlock()

	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	response.OK(c, model.CandidatePage{
		Data: filtered[start:end],
		Pagination: model.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	})
}

// GetCandidate returns a single candidate by id
func (s *Simulator) GetCandidate(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch candidate") {
		return
	}

	s.mu.Lock()
	idx := s.candidateIndex(c.Param("id"))
	var cand model.Candidate
	if idx >= 0 {
		cand = s.candidates[idx]
	}
	s.mu.Unlock()

	if idx < 0 {
		response.NotFound(c, "Candidate not found")
		return
	}
	response.OK(c, cand)
}

// UpdateCandidateStatus writes the new status and, when it differs from the
// current one, appends a StatusChange to the candidate's history.
func (s *Simulator) UpdateCandidateStatus(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to update candidate status") {
		return
	}

	var req model.UpdateCandidateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id := c.Param("id")

	s.mu.Lock()
	idx := s.candidateIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		response.NotFound(c, "Candidate not found")
		return
	}

	oldStatus := s.candidates[idx].Status
	s.candidates[idx].Status = req.Status
	if oldStatus != req.Status {
		s.appendStatusChange(id, oldStatus, req.Status)
	}
	cand := s.candidates[idx]
	s.mu.Unlock()

	response.OK(c, cand)
}

// DeleteCandidate removes a candidate from the in-memory collection only;
// the fixture is rebuilt on restart.
func (s *Simulator) DeleteCandidate(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to delete candidate") {
		return
	}

	id := c.Param("id")

	s.mu.Lock()
	idx := s.candidateIndex(id)
	if idx >= 0 {
		s.candidates = append(s.candidates[:idx], s.candidates[idx+1:]...)
	}
	s.mu.Unlock()

	if idx < 0 {
		response.NotFound(c, "Candidate not found")
		return
	}
	response.Success(c, nil)
}

// AddCandidateNote appends a note to the candidate's note list
func (s *Simulator) AddCandidateNote(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to add note") {
		return
	}

	var note model.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	id := c.Param("id")

	s.mu.Lock()
	idx := s.candidateIndex(id)
	if idx >= 0 {
		s.candidates[idx].Notes = append(s.candidates[idx].Notes, note)
	}
	s.mu.Unlock()

	if idx < 0 {
		response.NotFound(c, "Candidate not found")
		return
	}
	response.Created(c, note)
}

// CandidateHistory returns the accumulated status changes, empty if none
func (s *Simulator) CandidateHistory(c *gin.Context) {
	if s.intercept(c, "Network error: Failed to fetch status history") {
		return
	}

	s.mu.Lock()
	history := append([]model.StatusChange(nil), s.history[c.Param("id")]...)
	s.mu.Unlock()

	if history == nil {
		history = make([]model.StatusChange, 0)
	}
	response.OK(c, history)
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
